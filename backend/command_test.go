package backend

import (
	"errors"
	"strings"
	"testing"

	"github.com/thinkube/installer-shell/common"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		goos     string
		dir      string
		wantName string
		wantArgs []string
	}{
		{
			goos:     "linux",
			dir:      "/a/b/backend",
			wantName: "bash",
			wantArgs: []string{"-c", "cd /a/b/backend && source venv-test/bin/activate && python main.py"},
		},
		{
			goos:     "darwin",
			dir:      "/Users/dev/thinkube/installer/backend",
			wantName: "bash",
			wantArgs: []string{"-c", "cd /Users/dev/thinkube/installer/backend && source venv-test/bin/activate && python main.py"},
		},
		{
			goos:     "windows",
			dir:      `C:\src\installer\backend`,
			wantName: "cmd",
			wantArgs: []string{"/C", `cd C:\src\installer\backend && venv-test\Scripts\activate && python main.py`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := CommandFor(tt.goos, tt.dir)
			if err != nil {
				t.Fatalf("CommandFor() error = %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", got.Name, tt.wantName)
			}
			if strings.Join(got.Args, "\x00") != strings.Join(tt.wantArgs, "\x00") {
				t.Errorf("Args = %q, want %q", got.Args, tt.wantArgs)
			}
		})
	}
}

func TestCommandFor_UnsupportedPlatform(t *testing.T) {
	_, err := CommandFor("plan9", "/backend")
	if !errors.Is(err, common.ErrUnsupportedPlatform) {
		t.Errorf("CommandFor(plan9) error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestInvocation_String(t *testing.T) {
	inv := Invocation{Name: "bash", Args: []string{"-c", "echo hi"}}
	if got := inv.String(); got != "bash -c echo hi" {
		t.Errorf("String() = %q", got)
	}
}
