package session

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type transitionRecorder struct {
	mu  sync.Mutex
	seq []State
}

// listener records transitions.
func (r *transitionRecorder) listener(prev, next State) {
	r.mu.Lock()
	r.seq = append(r.seq, next)
	r.mu.Unlock()
}

func (r *transitionRecorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.seq...)
}

func TestFSM_StartBindStop(t *testing.T) {
	f := NewFSM(discardLogger)
	defer f.Close()
	rec := &transitionRecorder{}
	f.AddListener(rec.listener)

	f.EventStart()
	f.EventBound()
	f.Sync()
	if f.Current() != StatePreviewing {
		t.Fatalf("expected previewing, got %v", f.Current())
	}
	f.EventStop()
	f.Sync()
	if f.Current() != StateIdle {
		t.Fatalf("expected idle, got %v", f.Current())
	}
	want := []State{StateStarting, StatePreviewing, StateIdle}
	got := rec.states()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFSM_FailRecordsErrorAndAllowsRetry(t *testing.T) {
	f := NewFSM(discardLogger)
	defer f.Close()
	boom := errors.New("no back camera")

	f.EventStart()
	f.EventFail(boom)
	f.Sync()
	if f.Current() != StateFailed {
		t.Fatalf("expected failed, got %v", f.Current())
	}
	if !errors.Is(f.LastError(), boom) {
		t.Fatalf("expected last error %v, got %v", boom, f.LastError())
	}

	f.EventStart()
	f.EventBound()
	f.Sync()
	if f.Current() != StatePreviewing {
		t.Fatalf("expected retry to reach previewing, got %v", f.Current())
	}
	if f.LastError() != nil {
		t.Fatalf("successful bind should clear the error, got %v", f.LastError())
	}
}

func TestFSM_IgnoresOutOfOrderEvents(t *testing.T) {
	f := NewFSM(discardLogger)
	defer f.Close()

	f.EventBound() // not starting
	f.EventFail(errors.New("late"))
	f.Sync()
	if f.Current() != StateIdle {
		t.Fatalf("idle should ignore bound/fail, got %v", f.Current())
	}
	if f.LastError() != nil {
		t.Fatalf("ignored failure must not be recorded")
	}

	f.EventStart()
	f.EventBound()
	f.EventStart() // already previewing
	f.Sync()
	if f.Current() != StatePreviewing {
		t.Fatalf("start while previewing should be ignored, got %v", f.Current())
	}
}

func TestFSM_CloseIsIdempotentAndDropsEvents(t *testing.T) {
	f := NewFSM(discardLogger)
	f.Close()
	f.Close()
	f.EventStart()
	f.Sync()
	if f.Current() != StateIdle {
		t.Fatalf("events after close should be dropped, got %v", f.Current())
	}
}

func TestState_String(t *testing.T) {
	if StatePreviewing.String() != "previewing" || State(99).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
