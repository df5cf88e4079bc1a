// Package common provides shared constants, types, and utilities
// used across the Thinkube Installer launcher.
package common

import "errors"

// Sentinel errors for launcher operations.
// These can be checked with errors.Is() for proper error handling.
// Every one of them aborts startup except ErrWindowNotFound, which the
// shell initializer only logs.
var (
	// Environment layout errors.
	ErrNoParentDir         = errors.New("working directory has no parent")
	ErrUnsupportedPlatform = errors.New("unsupported platform for backend launch")

	// Backend errors.
	ErrSpawnFailed = errors.New("failed to start backend")

	// Shell errors.
	ErrLogSinkAttach   = errors.New("failed to attach diagnostic log sink")
	ErrWindowNotFound  = errors.New("main window not found")
	ErrWindowOperation = errors.New("window operation failed")

	// Command bridge errors.
	ErrUnknownCommand = errors.New("unknown command")
	ErrBusUnavailable = errors.New("session bus unavailable")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Build mode errors.
	ErrInvalidBuildMode = errors.New("invalid build mode")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
