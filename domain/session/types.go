package session

// State enumerates the preview session lifecycle.
type State int32

const (
	StateIdle State = iota
	StateStarting
	StatePreviewing
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StatePreviewing:
		return "previewing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Listener is called on each successful state transition, from the FSM goroutine.
type Listener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface{ Current() State }
type Control interface {
	EventStart()
	EventBound()
	EventFail(err error)
	EventStop()
}

// Contract aggregate for DI.
type Contract interface {
	StateSource
	Control
	LastError() error
	AddListener(Listener)
	Close()
}
