package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/thinkube/installer-shell/common"
)

// MainWindow is the primary window hosting the installer content.
// It is created hidden; the shell initializer presents it.
type MainWindow struct {
	app         *Application
	window      *gtk.ApplicationWindow
	headerBar   *gtk.HeaderBar
	skipLabel   *gtk.Label
	cleanLabel  *gtk.Label
	statusLabel *gtk.Label
}

// NewMainWindow creates the main window without showing it.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app: app,
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(app.prefs.WindowWidth, app.prefs.WindowHeight)
	mw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)
	mw.window.SetIconName(common.ConfigDirName)

	// With the tray enabled, closing the window keeps the launcher alive
	mw.window.SetHideOnClose(app.prefs.ShowTray)

	mw.createLayout()
	mw.refreshFlags()

	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	menuButton.SetMenuModel(mw.createMenu())
	mw.headerBar.PackEnd(menuButton)

	mw.window.SetTitlebar(mw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	content := gtk.NewBox(gtk.OrientationVertical, 12)
	content.SetVExpand(true)
	content.SetVAlign(gtk.AlignCenter)
	content.SetHAlign(gtk.AlignCenter)

	title := gtk.NewLabel(common.AppName)
	title.AddCSSClass("title-1")
	content.Append(title)

	mode := gtk.NewLabel(fmt.Sprintf("%s build", mw.app.mode))
	mode.AddCSSClass("dim-label")
	content.Append(mode)

	mw.skipLabel = gtk.NewLabel("")
	mw.skipLabel.AddCSSClass("flag-label")
	content.Append(mw.skipLabel)

	mw.cleanLabel = gtk.NewLabel("")
	mw.cleanLabel.AddCSSClass("flag-label")
	content.Append(mw.cleanLabel)

	mainBox.Append(content)

	mw.statusLabel = gtk.NewLabel("Ready")
	mw.statusLabel.SetXAlign(0)
	mw.statusLabel.AddCSSClass("status-bar")
	mainBox.Append(mw.statusLabel)

	mw.window.SetChild(mainBox)
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	settingsSection := gio.NewMenu()
	settingsSection.Append("Preferences", "app.preferences")
	settingsSection.Append("Reload Flags", "app.reload-flags")
	if mw.app.mode.IsDevelopment() {
		settingsSection.Append("Inspector", "app.inspector")
	}
	menu.AppendSection("", &settingsSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()

	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	preferencesAction := gio.NewSimpleAction("preferences", nil)
	preferencesAction.ConnectActivate(func(_ *glib.Variant) {
		NewPreferencesDialog(mw).Show()
	})
	mw.app.app.AddAction(preferencesAction)
	mw.app.app.SetAccelsForAction("app.preferences", []string{"<Control>comma"})

	reloadAction := gio.NewSimpleAction("reload-flags", nil)
	reloadAction.ConnectActivate(func(_ *glib.Variant) {
		mw.refreshFlags()
	})
	mw.app.app.AddAction(reloadAction)
	mw.app.app.SetAccelsForAction("app.reload-flags", []string{"F5"})

	if mw.app.mode.IsDevelopment() {
		inspectorAction := gio.NewSimpleAction("inspector", nil)
		inspectorAction.ConnectActivate(func(_ *glib.Variant) {
			if w, ok := mw.app.windows.Window(common.MainWindowLabel); ok {
				w.OpenInspector()
			}
		})
		mw.app.app.AddAction(inspectorAction)
		mw.app.app.SetAccelsForAction("app.inspector", []string{"<Control><Shift>i"})
	}

	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.app.Quit()
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// refreshFlags queries get_config_flags through the command table, the
// same path the installer content uses.
func (mw *MainWindow) refreshFlags() {
	flags, err := mw.app.commands.ConfigFlags()
	if err != nil {
		mw.SetStatus("Could not read flags: " + err.Error())
		return
	}

	mw.skipLabel.SetText(fmt.Sprintf("%s: %s", common.EnvSkipConfig, onOff(flags.SkipConfig)))
	mw.cleanLabel.SetText(fmt.Sprintf("%s: %s", common.EnvCleanState, onOff(flags.CleanState)))
	mw.SetStatus("Flags loaded")
}

// SetStatus updates the status text.
func (mw *MainWindow) SetStatus(text string) {
	if mw.statusLabel != nil {
		mw.statusLabel.SetText(text)
	}
}

func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetModal(true)

	about.SetProgramName(common.AppName)
	about.SetLogoIconName(common.ConfigDirName)
	about.SetVersion(mw.app.version)
	about.SetComments("Desktop launcher for the Thinkube installer.")
	about.SetWebsite("https://github.com/thinkube/thinkube")
	about.SetWebsiteLabel("GitHub Repository")
	about.SetCopyright("© 2025 Alejandro Martínez Corriá and the Thinkube contributors")
	about.SetLicense("Licensed under the Apache License, Version 2.0.\nSPDX-License-Identifier: Apache-2.0")

	about.Show()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
