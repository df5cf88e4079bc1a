// Package config provides the launcher's runtime flags and persisted
// preferences.
package config

import (
	"os"

	"github.com/thinkube/installer-shell/common"
)

// ConfigFlags are the runtime switches the installer UI reads at startup.
// They are derived from environment variable presence every time they are
// requested and never stored.
type ConfigFlags struct {
	// SkipConfig is set when SKIP_CONFIG is present in the environment.
	SkipConfig bool `json:"skip_config"`
	// CleanState is set when CLEAN_STATE is present in the environment.
	CleanState bool `json:"clean_state"`
}

// Flags reads SKIP_CONFIG and CLEAN_STATE from the process environment.
// Presence alone turns a flag on; an empty value still counts.
func Flags() ConfigFlags {
	return ConfigFlags{
		SkipConfig: isSet(common.EnvSkipConfig),
		CleanState: isSet(common.EnvCleanState),
	}
}

func isSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
