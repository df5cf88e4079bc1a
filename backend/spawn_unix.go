//go:build unix

package backend

import "syscall"

// detachedAttrs puts the backend in its own process group so terminal
// signals aimed at the launcher do not reach it.
func detachedAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
