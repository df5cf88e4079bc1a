package common

import (
	"fmt"
	"strings"
)

// BuildMode selects between development and production behaviour.
// Development builds start the backend themselves and enable developer
// tooling; production builds assume the backend is bundled and self-starting.
type BuildMode int

const (
	BuildDevelopment BuildMode = iota
	BuildProduction
)

// String returns the canonical name of the build mode.
func (m BuildMode) String() string {
	switch m {
	case BuildDevelopment:
		return "development"
	case BuildProduction:
		return "production"
	default:
		return "unknown"
	}
}

// IsDevelopment reports whether developer tooling should be active.
func (m BuildMode) IsDevelopment() bool {
	return m == BuildDevelopment
}

// ParseBuildMode converts the value injected at link time into a BuildMode.
// An empty value is treated as development, matching a plain `go build`.
func ParseBuildMode(s string) (BuildMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", "development", "debug":
		return BuildDevelopment, nil
	case "prod", "production", "release":
		return BuildProduction, nil
	default:
		return BuildDevelopment, fmt.Errorf("%w: %q", ErrInvalidBuildMode, s)
	}
}
