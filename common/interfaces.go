// Package common provides shared constants, types, and utilities
// used across the Thinkube Installer launcher.
package common

// Window is the subset of native window operations the shell initializer
// applies. Implementations borrow a window owned by the UI framework and
// never create or destroy it.
type Window interface {
	// Show makes the window visible.
	Show() error
	// Center moves the window to the middle of its display.
	Center() error
	// Focus gives the window input focus.
	Focus() error
	// OpenInspector opens the developer inspection panel for the window.
	OpenInspector()
}

// WindowRegistry looks windows up by their well-known label.
type WindowRegistry interface {
	// Window returns the window registered under label, if any.
	Window(label string) (Window, bool)
}

// LogSink is a diagnostic log destination that can be attached at runtime.
type LogSink interface {
	// Attach starts delivering messages at or above minLevel to the sink.
	Attach(minLevel LogLevel) error
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
