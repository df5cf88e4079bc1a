package backend

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/thinkube/installer-shell/common"
)

// Handle identifies a spawned backend. It carries no way to wait on or
// signal the process.
type Handle struct {
	PID int
}

// DetachedSpawner starts a process and lets go of it.
// Implementations must not wait on, monitor or terminate the process; its
// lifetime is independent of the launcher's.
type DetachedSpawner interface {
	SpawnDetached(inv Invocation) (Handle, error)
}

// ExecSpawner spawns processes with os/exec in their own process group.
// The child inherits the launcher's environment, stdout and stderr.
type ExecSpawner struct{}

// SpawnDetached implements DetachedSpawner.
func (ExecSpawner) SpawnDetached(inv Invocation) (Handle, error) {
	cmd := exec.Command(inv.Name, inv.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = detachedAttrs()

	if err := cmd.Start(); err != nil {
		return Handle{}, fmt.Errorf("%w: %s: %w", common.ErrSpawnFailed, inv.Name, err)
	}

	handle := Handle{PID: cmd.Process.Pid}
	// Drop our reference; nothing in the launcher ever waits for the backend.
	_ = cmd.Process.Release()
	return handle, nil
}
