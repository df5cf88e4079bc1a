// Package common provides shared constants, types, and utilities
// used across the Thinkube Installer launcher.
//
// This package holds the cross-cutting pieces every other package leans on:
//
//   - Constants: application identity, backend layout, window and command names
//   - BuildMode: the development/production switch threaded through startup
//   - Errors: sentinel errors for the startup failure taxonomy
//   - Interfaces: Window, WindowRegistry and LogSink abstractions
//   - Logger: leveled logging to stdout with an attachable rotating file sink
//
// # Usage
//
//	common.LogInfo("Starting backend in %s", dir)
//
//	if errors.Is(err, common.ErrNoParentDir) {
//	    // Launcher is running from the filesystem root
//	}
package common
