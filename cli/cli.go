// Package cli answers launcher queries from the terminal without starting
// the GUI or the backend.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/thinkube/installer-shell/backend"
	"github.com/thinkube/installer-shell/bridge"
	"github.com/thinkube/installer-shell/common"
	"golang.org/x/term"
)

// CLI represents the command-line interface.
type CLI struct {
	out      io.Writer
	json     bool
	getwd    func() (string, error)
	goos     string
	commands *bridge.Registry
}

// New creates a CLI writing to stdout. Output is a table on a terminal and
// JSON when stdout is redirected.
func New() *CLI {
	return &CLI{
		out:      os.Stdout,
		json:     !term.IsTerminal(int(os.Stdout.Fd())),
		getwd:    os.Getwd,
		goos:     runtime.GOOS,
		commands: bridge.NewDefaultRegistry(),
	}
}

// ConfigFlags prints the runtime flags as the UI would see them.
func (c *CLI) ConfigFlags() error {
	flags, err := c.commands.ConfigFlags()
	if err != nil {
		return err
	}

	if c.json {
		return c.writeJSON(flags)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIABLE\tSET")
	fmt.Fprintln(w, "--------\t---")
	fmt.Fprintf(w, "%s\t%s\n", common.EnvSkipConfig, yesNo(flags.SkipConfig))
	fmt.Fprintf(w, "%s\t%s\n", common.EnvCleanState, yesNo(flags.CleanState))
	return w.Flush()
}

// backendInfo is what BackendDir reports.
type backendInfo struct {
	WorkingDir string   `json:"working_dir"`
	BackendDir string   `json:"backend_dir"`
	Command    []string `json:"command"`
}

// BackendDir prints where a development launch would start the backend and
// the command it would run. Nothing is spawned.
func (c *CLI) BackendDir() error {
	cwd, err := c.getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	dir, err := backend.Dir(cwd)
	if err != nil {
		return err
	}

	inv, err := backend.CommandFor(c.goos, dir)
	if err != nil {
		return err
	}

	info := backendInfo{
		WorkingDir: cwd,
		BackendDir: dir,
		Command:    append([]string{inv.Name}, inv.Args...),
	}

	if c.json {
		return c.writeJSON(info)
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Working dir:\t%s\n", info.WorkingDir)
	fmt.Fprintf(w, "Backend dir:\t%s\n", info.BackendDir)
	fmt.Fprintf(w, "Command:\t%s\n", inv)
	return w.Flush()
}

func (c *CLI) writeJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// PrintHelp prints the help message.
func PrintHelp() {
	fmt.Printf(`%s - desktop launcher for the Thinkube installer

Usage:
  thinkube-installer [options]

GUI Mode (default):
  thinkube-installer              Start the backend (development builds) and open the window

Queries:
  thinkube-installer --config-flags   Show SKIP_CONFIG / CLEAN_STATE as the UI sees them
  thinkube-installer --backend-dir    Show the backend directory and launch command

Options:
  --verbose    Enable debug logging
  --version    Show version information
  --help       Show this help message

Environment:
  SKIP_CONFIG  Skip the configuration screens (presence is enough)
  CLEAN_STATE  Start from a clean installer state (presence is enough)
`, common.AppName)
}
