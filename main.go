// Package main provides the entry point for the Thinkube Installer launcher.
// The launcher starts the installer backend (development builds only),
// waits for it to come up and then opens the native installer window.
//
// Usage:
//
//	thinkube-installer [options]
//
// Build:
//
//	go build -ldflags "-X main.buildMode=production" .
//
// Production builds never spawn the backend and carry no developer tooling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/thinkube/installer-shell/backend"
	"github.com/thinkube/installer-shell/cli"
	"github.com/thinkube/installer-shell/common"
	"github.com/thinkube/installer-shell/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
	buildMode  = "development"
)

var (
	showVersion = pflag.Bool("version", false, "Show version and exit")
	verbose     = pflag.BoolP("verbose", "v", false, "Enable verbose logging")
	showHelp    = pflag.BoolP("help", "h", false, "Show help message")

	// Queries
	showFlags      = pflag.Bool("config-flags", false, "Show runtime flags and exit")
	showBackendDir = pflag.Bool("backend-dir", false, "Show the backend directory and launch command, then exit")
)

func main() {
	pflag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	mode, err := common.ParseBuildMode(buildMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Printf("%s v%s (%s)\n", common.AppName, appVersion, mode)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}
	session := common.NewSessionID()
	common.InitLogger(common.LogConfig{
		Level:       logLevel,
		Session:     session,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	})

	if *showFlags || *showBackendDir {
		os.Exit(runCLI())
	}

	common.LogInfo("Starting %s v%s (%s build, session %s)", common.AppName, appVersion, mode, session)

	// The backend must be up before the window exists; this blocks for the
	// grace period in development builds.
	if err := backend.NewSupervisor().Launch(mode); err != nil {
		common.LogError("Backend launch failed: %v", err)
		common.CloseLogger()
		os.Exit(1)
	}

	app := ui.NewApplication(common.AppID, appVersion, mode)
	// GTK parses its own options; ours are already consumed.
	exitCode := app.Run(append([]string{os.Args[0]}, pflag.Args()...))

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	common.CloseLogger()
	os.Exit(exitCode)
}

// runCLI answers a terminal query and returns the process exit code.
func runCLI() int {
	c := cli.New()

	var err error
	switch {
	case *showFlags:
		err = c.ConfigFlags()
	case *showBackendDir:
		err = c.BackendDir()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
