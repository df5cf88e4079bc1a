package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/thinkube/installer-shell/common"
)

// windowRegistry maps well-known labels to GTK windows. Only the GTK main
// thread touches it.
type windowRegistry struct {
	windows map[string]*gtkWindow
}

func newWindowRegistry() *windowRegistry {
	return &windowRegistry{windows: make(map[string]*gtkWindow)}
}

func (r *windowRegistry) register(label string, w *gtk.Window) {
	r.windows[label] = &gtkWindow{window: w}
}

// Window implements common.WindowRegistry.
func (r *windowRegistry) Window(label string) (common.Window, bool) {
	w, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

// gtkWindow adapts a GTK window to common.Window. GTK owns the window.
type gtkWindow struct {
	window *gtk.Window
}

func (w *gtkWindow) Show() error {
	w.window.SetVisible(true)
	if !w.window.Visible() {
		return fmt.Errorf("window %q did not become visible", w.window.Title())
	}
	return nil
}

// Center has no GTK4 call of its own: placement of new toplevels belongs to
// the compositor, which centers them against the active monitor. The check
// here is that a display exists to place the window on.
func (w *gtkWindow) Center() error {
	if gdk.DisplayGetDefault() == nil {
		return fmt.Errorf("no display to center window %q on", w.window.Title())
	}
	return nil
}

func (w *gtkWindow) Focus() error {
	w.window.Present()
	return nil
}

// OpenInspector turns on the GTK interactive debugger.
func (w *gtkWindow) OpenInspector() {
	gtk.WindowSetInteractiveDebugging(true)
}
