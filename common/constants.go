// Package common provides shared constants, types, and utilities
// used across the Thinkube Installer launcher.
package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "io.thinkube.Installer"
	// AppName is the display name of the application.
	AppName = "Thinkube Installer"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "thinkube-installer"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "thinkube-installer.log"
)

// Environment variables read by the configuration reader.
// Only their presence matters, never their value.
const (
	EnvSkipConfig = "SKIP_CONFIG"
	EnvCleanState = "CLEAN_STATE"
)

// Backend layout, relative to the launcher's working directory.
const (
	// BackendDirName is the directory that sits two levels above the
	// launcher's working directory.
	BackendDirName = "backend"
	// BackendVenvName is the virtual environment inside BackendDirName.
	BackendVenvName = "venv-test"
	// BackendEntryPoint is the script started inside the virtual environment.
	BackendEntryPoint = "main.py"
	// BackendGracePeriod is how long startup blocks after spawning the
	// backend. It is a fixed heuristic, not a readiness check.
	BackendGracePeriod = 3 * time.Second
)

// Window and command identifiers.
const (
	// MainWindowLabel is the well-known identifier of the primary window.
	MainWindowLabel = "main"
	// CommandGetConfigFlags is the command name the UI uses to read
	// the runtime flags.
	CommandGetConfigFlags = "get_config_flags"
)

// D-Bus names for the command bridge. The bus name differs from AppID,
// which GApplication already owns.
const (
	BusName      = "io.thinkube.Installer.Bridge"
	BusPath      = "/io/thinkube/Installer/Bridge"
	BusInterface = "io.thinkube.Installer.Commands"
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 800
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 600
	// MinWindowWidth is the minimum window width.
	MinWindowWidth = 480
	// MinWindowHeight is the minimum window height.
	MinWindowHeight = 360
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
