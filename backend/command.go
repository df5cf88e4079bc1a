package backend

import (
	"fmt"
	"strings"

	"github.com/thinkube/installer-shell/common"
)

// Invocation is a program and its arguments, ready to be spawned.
type Invocation struct {
	Name string
	Args []string
}

// String renders the invocation for logs.
func (inv Invocation) String() string {
	return strings.Join(append([]string{inv.Name}, inv.Args...), " ")
}

// unixLike lists the GOOS values that get a bash invocation.
var unixLike = map[string]bool{
	"linux":     true,
	"darwin":    true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"solaris":   true,
	"illumos":   true,
	"aix":       true,
}

// CommandFor builds the platform shell command that enters dir, activates
// the backend's virtual environment and runs its entry point. The Unix and
// Windows forms differ only in shell syntax.
func CommandFor(goos, dir string) (Invocation, error) {
	switch {
	case unixLike[goos]:
		script := fmt.Sprintf("cd %s && source %s/bin/activate && python %s",
			dir, common.BackendVenvName, common.BackendEntryPoint)
		return Invocation{Name: "bash", Args: []string{"-c", script}}, nil
	case goos == "windows":
		script := fmt.Sprintf(`cd %s && %s\Scripts\activate && python %s`,
			dir, common.BackendVenvName, common.BackendEntryPoint)
		return Invocation{Name: "cmd", Args: []string{"/C", script}}, nil
	default:
		return Invocation{}, fmt.Errorf("%w: %s", common.ErrUnsupportedPlatform, goos)
	}
}
