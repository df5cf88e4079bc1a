package bridge

import (
	"testing"

	"github.com/thinkube/installer-shell/common"
)

func TestBusObject_GetConfigFlags(t *testing.T) {
	clearFlags(t)
	t.Setenv(common.EnvSkipConfig, "")

	skip, clean, dberr := busObject{registry: NewDefaultRegistry()}.GetConfigFlags()
	if dberr != nil {
		t.Fatalf("GetConfigFlags() error = %v", dberr)
	}
	if !skip || clean {
		t.Errorf("GetConfigFlags() = (%v, %v), want (true, false)", skip, clean)
	}
}

func TestBusObject_Invoke(t *testing.T) {
	clearFlags(t)

	obj := busObject{registry: NewDefaultRegistry()}

	got, dberr := obj.Invoke(common.CommandGetConfigFlags)
	if dberr != nil {
		t.Fatalf("Invoke() error = %v", dberr)
	}
	if got != `{"skip_config":false,"clean_state":false}` {
		t.Errorf("Invoke() = %s", got)
	}

	_, dberr = obj.Invoke("missing")
	if dberr == nil || dberr.Name != errUnknownCommand {
		t.Errorf("Invoke(missing) error = %v, want %s", dberr, errUnknownCommand)
	}
}

func TestExporter_CloseNil(t *testing.T) {
	var e *Exporter
	if err := e.Close(); err != nil {
		t.Errorf("Close() on nil exporter = %v", err)
	}
}
