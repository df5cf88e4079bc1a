package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/thinkube/installer-shell/common"
)

// PreferencesDialog edits the persisted launcher preferences.
type PreferencesDialog struct {
	window        *gtk.Window
	mainWindow    *MainWindow
	traySwitch    *gtk.Switch
	themeDropDown *gtk.DropDown
	themeIDs      []string
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(mainWindow *MainWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		mainWindow: mainWindow,
		themeIDs:   []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark},
	}

	pd.build()
	return pd
}

func (pd *PreferencesDialog) build() {
	prefs := pd.mainWindow.app.prefs

	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Preferences")
	pd.window.SetTransientFor(&pd.mainWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(420, 260)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 16)
	rootBox.SetMarginTop(24)
	rootBox.SetMarginBottom(20)
	rootBox.SetMarginStart(24)
	rootBox.SetMarginEnd(24)

	pd.traySwitch = gtk.NewSwitch()
	pd.traySwitch.SetActive(prefs.ShowTray)
	pd.traySwitch.SetVAlign(gtk.AlignCenter)
	rootBox.Append(pd.createSettingRow(
		"Tray Icon",
		"Keep the launcher in the system tray (applies on next start)",
		pd.traySwitch,
	))

	themeModel := gtk.NewStringList([]string{"System Default", "Light", "Dark"})
	pd.themeDropDown = gtk.NewDropDown(themeModel, nil)
	pd.themeDropDown.SetSelected(pd.findThemeIndex(prefs.Theme))
	pd.themeDropDown.SetVAlign(gtk.AlignCenter)
	rootBox.Append(pd.createSettingRow(
		"Theme",
		"Choose the visual appearance of the launcher",
		pd.themeDropDown,
	))

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		pd.savePreferences()
		pd.window.Close()
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)
	pd.window.SetChild(rootBox)
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// findThemeIndex returns the index of a theme ID, or 0 if not found.
func (pd *PreferencesDialog) findThemeIndex(themeID string) uint {
	for i, id := range pd.themeIDs {
		if id == themeID {
			return uint(i)
		}
	}
	return 0
}

func (pd *PreferencesDialog) savePreferences() {
	prefs := pd.mainWindow.app.prefs
	prefs.ShowTray = pd.traySwitch.Active()

	if idx := pd.themeDropDown.Selected(); int(idx) < len(pd.themeIDs) {
		prefs.Theme = pd.themeIDs[idx]
	}

	if err := prefs.Save(); err != nil {
		common.LogError("Saving preferences: %v", err)
		pd.mainWindow.SetStatus("Could not save preferences")
		return
	}

	pd.mainWindow.app.ApplyTheme(prefs.Theme)
	pd.mainWindow.SetStatus("Preferences saved")
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Present()
}
