//go:build windows

package backend

import "syscall"

// detachedAttrs starts the backend in a new process group so console
// control events aimed at the launcher do not reach it.
func detachedAttrs() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
