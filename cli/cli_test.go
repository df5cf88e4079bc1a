package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/thinkube/installer-shell/bridge"
	"github.com/thinkube/installer-shell/common"
)

func newTestCLI(buf *bytes.Buffer, jsonOut bool, cwd string) *CLI {
	return &CLI{
		out:      buf,
		json:     jsonOut,
		getwd:    func() (string, error) { return cwd, nil },
		goos:     "linux",
		commands: bridge.NewDefaultRegistry(),
	}
}

func TestConfigFlags_JSON(t *testing.T) {
	t.Setenv(common.EnvSkipConfig, "")
	t.Setenv(common.EnvCleanState, "")
	os.Unsetenv(common.EnvCleanState)

	var buf bytes.Buffer
	if err := newTestCLI(&buf, true, "/").ConfigFlags(); err != nil {
		t.Fatalf("ConfigFlags() error = %v", err)
	}

	var got map[string]bool
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if !got["skip_config"] || got["clean_state"] {
		t.Errorf("ConfigFlags() = %s", buf.String())
	}
}

func TestConfigFlags_Table(t *testing.T) {
	t.Setenv(common.EnvSkipConfig, "")
	os.Unsetenv(common.EnvSkipConfig)
	t.Setenv(common.EnvCleanState, "1")

	var buf bytes.Buffer
	if err := newTestCLI(&buf, false, "/").ConfigFlags(); err != nil {
		t.Fatalf("ConfigFlags() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "SKIP_CONFIG  no") || !strings.Contains(out, "CLEAN_STATE  yes") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestBackendDir_JSON(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX working directory")
	}

	var buf bytes.Buffer
	if err := newTestCLI(&buf, true, "/a/b/backend_frontend/src-tauri").BackendDir(); err != nil {
		t.Fatalf("BackendDir() error = %v", err)
	}

	var got backendInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.BackendDir != "/a/b/backend" {
		t.Errorf("BackendDir = %v, want /a/b/backend", got.BackendDir)
	}
	if len(got.Command) != 3 || got.Command[0] != "bash" {
		t.Errorf("Command = %v", got.Command)
	}
}

func TestBackendDir_ShallowDir(t *testing.T) {
	var buf bytes.Buffer
	err := newTestCLI(&buf, false, "/").BackendDir()
	if !errors.Is(err, common.ErrNoParentDir) {
		t.Errorf("BackendDir() error = %v, want ErrNoParentDir", err)
	}
}
