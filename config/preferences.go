package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/thinkube/installer-shell/common"
	"gopkg.in/yaml.v3"
)

// Preferences are the launcher settings persisted between runs.
// They live in a YAML file in the user's config directory.
type Preferences struct {
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// ShowTray enables the system tray indicator.
	ShowTray bool `yaml:"show_tray"`
	// WindowWidth is the initial width of the main window.
	WindowWidth int `yaml:"window_width"`
	// WindowHeight is the initial height of the main window.
	WindowHeight int `yaml:"window_height"`
}

// DefaultPreferences returns the default preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Theme:        common.ThemeAuto,
		ShowTray:     true,
		WindowWidth:  common.DefaultWindowWidth,
		WindowHeight: common.DefaultWindowHeight,
	}
}

// LoadPreferences reads the preferences file.
// If the file doesn't exist, it creates one with default values.
func LoadPreferences() (*Preferences, error) {
	path, err := preferencesPath()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		prefs := DefaultPreferences()
		if err := prefs.Save(); err != nil {
			return prefs, err
		}
		return prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", common.ErrConfigLoad, path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	prefs := DefaultPreferences()
	if err := decoder.Decode(prefs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrConfigLoad, path, err)
	}

	prefs.normalize()
	return prefs, nil
}

// normalize replaces out-of-range values with usable ones.
func (p *Preferences) normalize() {
	switch p.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		p.Theme = common.ThemeAuto
	}
	if p.WindowWidth < common.MinWindowWidth {
		p.WindowWidth = common.MinWindowWidth
	}
	if p.WindowHeight < common.MinWindowHeight {
		p.WindowHeight = common.MinWindowHeight
	}
}

// Save writes the preferences file.
func (p *Preferences) Save() error {
	path, err := preferencesPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: serializing preferences: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", common.ErrConfigSave, path, err)
	}

	return nil
}

func preferencesPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.ConfigFileName), nil
}
