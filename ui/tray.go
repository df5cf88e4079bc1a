package ui

import (
	"fmt"

	"fyne.io/systray"
	"github.com/thinkube/installer-shell/common"
)

// TrayIndicator manages the system tray icon and menu.
// The tray only reopens the window and quits; it never touches the backend.
type TrayIndicator struct {
	app        *Application
	statusItem *systray.MenuItem
	flagsItem  *systray.MenuItem
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{app: app}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayIndicator) onReady() {
	systray.SetIcon(GenerateModeIcon(t.app.mode.IsDevelopment()))
	systray.SetTitle(common.AppName)
	systray.SetTooltip(fmt.Sprintf("%s (%s)", common.AppName, t.app.mode))

	t.statusItem = systray.AddMenuItem(fmt.Sprintf("%s build", t.app.mode), "Build mode")
	t.statusItem.Disable()

	t.flagsItem = systray.AddMenuItem("", "Runtime flags")
	t.flagsItem.Disable()
	t.refreshFlags()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Show Installer", "Show main window")
	go func() {
		for range showItem.ClickedCh {
			t.refreshFlags()
			t.app.showWindow()
		}
	}()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			t.app.Quit()
			systray.Quit()
		}
	}()
}

func (t *TrayIndicator) onExit() {
	common.LogDebug("Tray indicator stopped")
}

// refreshFlags shows the current flags in the disabled status line.
func (t *TrayIndicator) refreshFlags() {
	flags, err := t.app.commands.ConfigFlags()
	if err != nil {
		t.flagsItem.SetTitle("Flags unavailable")
		return
	}
	t.flagsItem.SetTitle(fmt.Sprintf("%s=%s  %s=%s",
		common.EnvSkipConfig, onOff(flags.SkipConfig),
		common.EnvCleanState, onOff(flags.CleanState)))
}
