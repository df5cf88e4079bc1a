// Package ui provides the GTK4 shell that hosts the installer content.
//
// Startup goes through two GApplication signals:
//
//   - startup: theme, icon search path, CSS and the D-Bus command bridge
//   - activate: main window construction and the shell setup sequence
//     (see package shell), run once per process
//
// The main window is created hidden and registered under the label "main";
// the shell initializer looks it up there and presents it. The content area
// reads the runtime flags through the command table, as any UI client would.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. The tray and the D-Bus
// dispatcher run on their own goroutines and go through glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle and signal handlers
//   - window.go: Window registry and the common.Window adapter
//   - main_window.go: Main window layout and menu
//   - preferences.go: Preferences dialog
//   - tray.go: System tray indicator
//   - icons.go: Tray icon generation
//   - styles.go: CSS styling
package ui
