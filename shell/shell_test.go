package shell

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thinkube/installer-shell/common"
)

// fakeWindow records every operation applied to it.
type fakeWindow struct {
	calls  *[]string
	failOn string
}

func (w *fakeWindow) record(op string) error {
	*w.calls = append(*w.calls, op)
	if op == w.failOn {
		return errors.New(op + " rejected by platform")
	}
	return nil
}

func (w *fakeWindow) Show() error    { return w.record("show") }
func (w *fakeWindow) Center() error  { return w.record("center") }
func (w *fakeWindow) Focus() error   { return w.record("focus") }
func (w *fakeWindow) OpenInspector() { _ = w.record("inspector") }

type fakeRegistry map[string]common.Window

func (r fakeRegistry) Window(label string) (common.Window, bool) {
	w, ok := r[label]
	return w, ok
}

type fakeSink struct {
	calls *[]string
	level common.LogLevel
	err   error
}

func (s *fakeSink) Attach(minLevel common.LogLevel) error {
	*s.calls = append(*s.calls, "sink")
	s.level = minLevel
	return s.err
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(msg string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(msg, args...))
}
func (l *recordingLogger) Error(string, ...interface{}) {}

func newInitializer(mode common.BuildMode, calls *[]string, withWindow bool) (*Initializer, *fakeSink, *recordingLogger) {
	registry := fakeRegistry{}
	if withWindow {
		registry[common.MainWindowLabel] = &fakeWindow{calls: calls}
	}
	sink := &fakeSink{calls: calls}
	logger := &recordingLogger{}
	return &Initializer{
		Mode:    mode,
		Windows: registry,
		Sink:    sink,
		Logger:  logger,
	}, sink, logger
}

func TestRun_DevelopmentOrder(t *testing.T) {
	var calls []string
	in, sink, _ := newInitializer(common.BuildDevelopment, &calls, true)

	if err := in.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "sink,show,center,focus,inspector"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("calls = %v, want %v", got, want)
	}
	if sink.level != common.LevelInfo {
		t.Errorf("sink level = %v, want %v", sink.level, common.LevelInfo)
	}
}

func TestRun_ProductionSkipsDeveloperTooling(t *testing.T) {
	var calls []string
	in, _, _ := newInitializer(common.BuildProduction, &calls, true)

	if err := in.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "show,center,focus"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestRun_ProductionToleratesNilSink(t *testing.T) {
	var calls []string
	in, _, _ := newInitializer(common.BuildProduction, &calls, true)
	in.Sink = nil

	if err := in.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRun_MissingWindowIsNotFatal(t *testing.T) {
	for _, mode := range []common.BuildMode{common.BuildDevelopment, common.BuildProduction} {
		t.Run(mode.String(), func(t *testing.T) {
			var calls []string
			in, _, logger := newInitializer(mode, &calls, false)

			if err := in.Run(); err != nil {
				t.Fatalf("Run() error = %v, want nil", err)
			}

			for _, c := range calls {
				if c != "sink" {
					t.Errorf("unexpected window call %q without a window", c)
				}
			}
			if len(logger.warnings) != 1 {
				t.Errorf("warnings = %v, want exactly one", logger.warnings)
			}
		})
	}
}

func TestRun_SinkFailureAbortsBeforeWindow(t *testing.T) {
	var calls []string
	in, sink, _ := newInitializer(common.BuildDevelopment, &calls, true)
	sink.err = errors.New("permission denied")

	err := in.Run()
	if !errors.Is(err, common.ErrLogSinkAttach) {
		t.Fatalf("Run() error = %v, want ErrLogSinkAttach", err)
	}
	if got := strings.Join(calls, ","); got != "sink" {
		t.Errorf("calls = %v, want only the sink attempt", got)
	}
}

func TestRun_DevelopmentRequiresSink(t *testing.T) {
	var calls []string
	in, _, _ := newInitializer(common.BuildDevelopment, &calls, true)
	in.Sink = nil

	if err := in.Run(); !errors.Is(err, common.ErrLogSinkAttach) {
		t.Errorf("Run() error = %v, want ErrLogSinkAttach", err)
	}
}

func TestRun_WindowOperationFailureIsFatal(t *testing.T) {
	tests := []struct {
		failOn string
		want   string
	}{
		{"show", "sink,show"},
		{"center", "sink,show,center"},
		{"focus", "sink,show,center,focus"},
	}

	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			var calls []string
			in, _, _ := newInitializer(common.BuildDevelopment, &calls, true)
			in.Windows = fakeRegistry{common.MainWindowLabel: &fakeWindow{calls: &calls, failOn: tt.failOn}}

			err := in.Run()
			if !errors.Is(err, common.ErrWindowOperation) {
				t.Fatalf("Run() error = %v, want ErrWindowOperation", err)
			}
			if !strings.Contains(err.Error(), tt.failOn) {
				t.Errorf("error %q should name the failed step", err)
			}
			if got := strings.Join(calls, ","); got != tt.want {
				t.Errorf("calls = %v, want %v", got, tt.want)
			}
		})
	}
}
