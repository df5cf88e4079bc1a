package ui

import (
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/thinkube/installer-shell/bridge"
	"github.com/thinkube/installer-shell/common"
	"github.com/thinkube/installer-shell/config"
	"github.com/thinkube/installer-shell/shell"
)

// Application represents the main application
type Application struct {
	app      *gtk.Application
	mode     common.BuildMode
	version  string
	commands *bridge.Registry
	prefs    *config.Preferences
	windows  *windowRegistry
	window   *MainWindow
	tray     *TrayIndicator
	exporter *bridge.Exporter

	initialized bool
	exitCode    int
}

// NewApplication creates the GTK application and registers the command
// table. Nothing is shown until GTK emits activate.
func NewApplication(appID, version string, mode common.BuildMode) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	prefs, err := config.LoadPreferences()
	if err != nil {
		common.LogWarn("Using default preferences: %v", err)
		prefs = config.DefaultPreferences()
	}

	application := &Application{
		app:      app,
		mode:     mode,
		version:  version,
		commands: bridge.NewDefaultRegistry(),
		prefs:    prefs,
		windows:  newWindowRegistry(),
	}

	app.ConnectStartup(application.onStartup)
	app.ConnectActivate(application.onActivate)
	app.ConnectShutdown(application.onShutdown)

	return application
}

// Run runs the application and returns its exit code. A failed shell
// setup overrides GTK's own status.
func (a *Application) Run(args []string) int {
	code := a.app.Run(args)
	if a.exitCode != 0 {
		return a.exitCode
	}
	return code
}

// onStartup runs once per primary instance, before the first activate.
func (a *Application) onStartup() {
	a.ApplyTheme(a.prefs.Theme)
	a.setupAppIcon()
	LoadStyles()

	exporter, err := bridge.Export(a.commands)
	if err != nil {
		common.LogWarn("Command bridge not available on the session bus: %v", err)
		return
	}
	a.exporter = exporter
	common.LogDebug("Command bridge exported as %s", common.BusName)
}

// onActivate builds the main window and runs the shell setup sequence.
// GTK emits activate again when the launcher is started a second time;
// the setup sequence still runs only once.
func (a *Application) onActivate() {
	if a.initialized {
		a.showWindow()
		return
	}
	a.initialized = true

	a.window = NewMainWindow(a)
	a.windows.register(common.MainWindowLabel, &a.window.window.Window)

	initializer := &shell.Initializer{
		Mode:    a.mode,
		Windows: a.windows,
		Sink:    common.GetLogger(),
		Logger:  common.GetLogger(),
	}
	if err := initializer.Run(); err != nil {
		common.LogError("Shell setup failed: %v", err)
		a.exitCode = 1
		a.app.Quit()
		return
	}

	if a.prefs.ShowTray {
		a.tray = NewTrayIndicator(a)
		go a.tray.Run()
	}
}

// onShutdown releases the bus name before the process exits.
func (a *Application) onShutdown() {
	if err := a.exporter.Close(); err != nil {
		common.LogDebug("Closing command bridge: %v", err)
	}
}

// setupAppIcon sets up the application icon
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "icons"))
	}

	gtk.WindowSetDefaultIconName(common.ConfigDirName)
}

// ApplyTheme applies the specified theme to the application.
// Supported values: "auto" (system default), "light", "dark"
func (a *Application) ApplyTheme(theme string) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}

	switch theme {
	case common.ThemeLight:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", false)
	case common.ThemeDark:
		settings.SetObjectProperty("gtk-application-prefer-dark-theme", true)
	default:
		// "auto" leaves the system color scheme alone
	}
}

// Commands returns the command table shared with the UI content.
func (a *Application) Commands() *bridge.Registry {
	return a.commands
}

// showWindow re-presents the main window. Safe to call from any goroutine.
func (a *Application) showWindow() {
	glib.IdleAdd(func() {
		w, ok := a.windows.Window(common.MainWindowLabel)
		if !ok {
			common.LogWarn("Main window %q not found", common.MainWindowLabel)
			return
		}
		if err := shell.Present(w); err != nil {
			common.LogError("Presenting main window: %v", err)
		}
	})
}

// Quit closes the application
func (a *Application) Quit() {
	glib.IdleAdd(func() {
		a.app.Quit()
	})
}
