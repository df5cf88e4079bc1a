//go:build !unix && !windows

package backend

import "syscall"

func detachedAttrs() *syscall.SysProcAttr {
	return nil
}
