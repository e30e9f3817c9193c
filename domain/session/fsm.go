package session

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// FSM serialises preview lifecycle events on its own goroutine.
type FSM struct {
	state     atomic.Int32
	logger    *slog.Logger
	events    chan interface{}
	listeners []Listener
	lastErr   atomic.Pointer[error]
	done      chan struct{}

	mu     sync.RWMutex // guards closed against sends on a closed queue
	closed bool
}

// NewFSM constructs the machine in StateIdle and starts the event loop.
func NewFSM(logger *slog.Logger) *FSM {
	f := &FSM{logger: logger, events: make(chan interface{}, 64), done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil && logger != nil {
				logger.Error("session fsm panic", "error", r, "stack", string(debug.Stack()))
			}
		}()
		f.loop()
	}()
	return f
}

// events
type (
	evtStart       struct{}
	evtBound       struct{}
	evtFail        struct{ err error }
	evtStop        struct{}
	evtAddListener struct{ l Listener }
	evtSync        struct{ ack chan struct{} }
)

func (f *FSM) loop() {
	for ev := range f.events {
		cur := f.Current()
		switch e := ev.(type) {
		case evtAddListener:
			f.listeners = append(f.listeners, e.l)
		case evtStart:
			if cur == StateIdle || cur == StateFailed {
				f.transition(StateStarting)
			}
		case evtBound:
			if cur == StateStarting {
				f.lastErr.Store(nil)
				f.transition(StatePreviewing)
			}
		case evtFail:
			if cur == StateStarting || cur == StatePreviewing {
				err := e.err
				f.lastErr.Store(&err)
				if f.logger != nil {
					f.logger.Error("preview session failed", "error", err, "state", cur.String())
				}
				f.transition(StateFailed)
			}
		case evtStop:
			f.transition(StateIdle)
		case evtSync:
			close(e.ack)
		}
	}
}

func (f *FSM) transition(next State) {
	prev := f.Current()
	if prev == next {
		return
	}
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		l(prev, next)
	}
}

// Public API implements contracts. Events sent after Close are dropped.
func (f *FSM) AddListener(l Listener) { f.send(evtAddListener{l: l}) }
func (f *FSM) Current() State         { return State(f.state.Load()) }
func (f *FSM) EventStart()            { f.send(evtStart{}) }
func (f *FSM) EventBound()            { f.send(evtBound{}) }
func (f *FSM) EventFail(err error)    { f.send(evtFail{err: err}) }
func (f *FSM) EventStop()             { f.send(evtStop{}) }

// LastError returns the error that caused the most recent failure, nil once
// a later session bound successfully.
func (f *FSM) LastError() error {
	if p := f.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Sync blocks until every event sent before it has been processed.
func (f *FSM) Sync() {
	ack := make(chan struct{})
	if !f.send(evtSync{ack: ack}) {
		return
	}
	select {
	case <-ack:
	case <-f.done:
	}
}

// Close stops the event loop. It is safe to call more than once.
func (f *FSM) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	close(f.events)
}

// send enqueues ev and reports whether the loop accepted it.
func (f *FSM) send(ev interface{}) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return false
	}
	f.events <- ev
	return true
}

// Ensure contract satisfaction
var _ Contract = (*FSM)(nil)
