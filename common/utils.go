// Package common provides shared constants, types, and utilities
// used across the Thinkube Installer launcher.
package common

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewSessionID returns an identifier for one launcher run.
// It tags log lines so that runs can be told apart in the shared log file.
func NewSessionID() string {
	return uuid.NewString()
}

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
