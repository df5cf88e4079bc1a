package backend

import (
	"fmt"
	"path/filepath"

	"github.com/thinkube/installer-shell/common"
)

// Dir derives the backend directory from the launcher's working directory:
// two parent levels up, then into the backend directory.
// It fails when either ascent would have to go above the filesystem root.
func Dir(cwd string) (string, error) {
	if !filepath.IsAbs(cwd) {
		return "", fmt.Errorf("%w: %q is not an absolute path", common.ErrNoParentDir, cwd)
	}

	dir := filepath.Clean(cwd)
	for i := 0; i < 2; i++ {
		parent, ok := parentOf(dir)
		if !ok {
			return "", fmt.Errorf("%w: %s", common.ErrNoParentDir, dir)
		}
		dir = parent
	}

	return filepath.Join(dir, common.BackendDirName), nil
}

// parentOf returns the parent of an absolute, cleaned path.
// The root (or a volume root on Windows) has no parent.
func parentOf(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return "", false
	}
	return parent, true
}
