package backend

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/thinkube/installer-shell/common"
)

// Supervisor starts the backend once during launcher startup.
// All fields have working defaults; tests replace them.
type Supervisor struct {
	// Getwd reports the launcher's working directory.
	Getwd func() (string, error)
	// GOOS selects the invocation strategy.
	GOOS string
	// Spawner starts the backend process.
	Spawner DetachedSpawner
	// Sleep blocks for the grace period.
	Sleep func(time.Duration)
	// Logger receives progress messages.
	Logger common.Logger
}

// NewSupervisor creates a supervisor wired to the real process environment.
func NewSupervisor() *Supervisor {
	return &Supervisor{
		Getwd:   os.Getwd,
		GOOS:    runtime.GOOS,
		Spawner: ExecSpawner{},
		Sleep:   time.Sleep,
		Logger:  common.GetLogger(),
	}
}

// Launch starts the backend when mode is development and does nothing in
// production, where the backend is bundled and starts itself.
func (s *Supervisor) Launch(mode common.BuildMode) error {
	if !mode.IsDevelopment() {
		s.Logger.Debug("Build mode is %s, backend is expected to be running already", mode)
		return nil
	}
	return s.Start()
}

// Start derives the backend directory, spawns the backend detached and
// blocks for common.BackendGracePeriod. The wait is a fixed delay and does
// not check whether the backend is actually listening.
//
// Every error returned is fatal to the launcher.
func (s *Supervisor) Start() error {
	s.Logger.Info("Starting backend...")

	cwd, err := s.Getwd()
	if err != nil {
		return fmt.Errorf("%w: resolving working directory: %w", common.ErrNoParentDir, err)
	}

	dir, err := Dir(cwd)
	if err != nil {
		return err
	}

	inv, err := CommandFor(s.GOOS, dir)
	if err != nil {
		return err
	}

	s.Logger.Debug("Backend command: %s", inv)
	handle, err := s.Spawner.SpawnDetached(inv)
	if err != nil {
		return err
	}
	s.Logger.Info("Backend started from %s (pid %d)", dir, handle.PID)

	// Give backend time to start
	s.Sleep(common.BackendGracePeriod)
	return nil
}
