package bridge

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/thinkube/installer-shell/common"
	"github.com/thinkube/installer-shell/config"
)

func clearFlags(t *testing.T) {
	t.Helper()
	for _, name := range []string{common.EnvSkipConfig, common.EnvCleanState} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestDefaultRegistry_GetConfigFlags(t *testing.T) {
	clearFlags(t)
	t.Setenv(common.EnvCleanState, "")

	r := NewDefaultRegistry()
	flags, err := r.ConfigFlags()
	if err != nil {
		t.Fatalf("ConfigFlags() error = %v", err)
	}

	want := config.ConfigFlags{SkipConfig: false, CleanState: true}
	if flags != want {
		t.Errorf("ConfigFlags() = %+v, want %+v", flags, want)
	}
}

func TestRegistry_InvokeJSON(t *testing.T) {
	clearFlags(t)
	t.Setenv(common.EnvSkipConfig, "1")

	data, err := NewDefaultRegistry().InvokeJSON(common.CommandGetConfigFlags)
	if err != nil {
		t.Fatalf("InvokeJSON() error = %v", err)
	}

	var got map[string]bool
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	if !got["skip_config"] || got["clean_state"] {
		t.Errorf("InvokeJSON() = %s", data)
	}
}

func TestRegistry_UnknownCommand(t *testing.T) {
	_, err := NewDefaultRegistry().Invoke("open_pod_bay_doors")
	if !errors.Is(err, common.ErrUnknownCommand) {
		t.Errorf("Invoke() error = %v, want ErrUnknownCommand", err)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register("a", func() (any, error) { return nil, nil })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate name")
		}
	}()
	r.Register("a", func() (any, error) { return nil, nil })
}

func TestRegistry_Names(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register("about", func() (any, error) { return "x", nil })

	names := r.Names()
	if len(names) != 2 || names[0] != "about" || names[1] != common.CommandGetConfigFlags {
		t.Errorf("Names() = %v", names)
	}
}

func TestRegistry_ConfigFlagsWrongType(t *testing.T) {
	r := NewRegistry()
	r.Register(common.CommandGetConfigFlags, func() (any, error) { return "nope", nil })

	if _, err := r.ConfigFlags(); err == nil {
		t.Error("ConfigFlags() should reject a non-flags result")
	}
}
