// Package shell configures the main window once the UI framework has
// finished bootstrapping.
package shell

import (
	"fmt"

	"github.com/thinkube/installer-shell/common"
)

// Initializer runs the one-time window setup sequence.
type Initializer struct {
	Mode    common.BuildMode
	Windows common.WindowRegistry
	// Sink is attached in development builds only. It may be nil in
	// production.
	Sink   common.LogSink
	Logger common.Logger
}

// Run performs the setup steps in a fixed order:
//
//  1. attach the diagnostic log sink (development only)
//  2. look up the main window; if it is missing, warn and stop
//  3. show, center and focus it
//  4. open the inspector (development only)
//
// A missing window is not an error. Everything else returned aborts startup.
func (in *Initializer) Run() error {
	in.Logger.Info("Shell setup starting...")

	if in.Mode.IsDevelopment() {
		if err := in.attachSink(); err != nil {
			return err
		}
	}

	window, ok := in.Windows.Window(common.MainWindowLabel)
	if !ok {
		in.Logger.Warn("Main window %q not found, continuing without it", common.MainWindowLabel)
		in.Logger.Info("Shell setup complete")
		return nil
	}

	in.Logger.Info("Main window found, showing it...")
	if err := Present(window); err != nil {
		return err
	}

	if in.Mode.IsDevelopment() {
		in.Logger.Info("Opening inspector...")
		window.OpenInspector()
	}

	in.Logger.Info("Shell setup complete")
	return nil
}

func (in *Initializer) attachSink() error {
	if in.Sink == nil {
		return fmt.Errorf("%w: no sink configured", common.ErrLogSinkAttach)
	}
	if err := in.Sink.Attach(common.LevelInfo); err != nil {
		return fmt.Errorf("%w: %w", common.ErrLogSinkAttach, err)
	}
	return nil
}

// Present shows, centers and focuses w, in that order. Centering a hidden
// window is unreliable on some platforms; focusing before centering would
// highlight the old position.
func Present(w common.Window) error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"show", w.Show},
		{"center", w.Center},
		{"focus", w.Focus},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("%w: %s: %w", common.ErrWindowOperation, step.name, err)
		}
	}
	return nil
}
