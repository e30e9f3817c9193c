package presenter

import (
	"sync"
	"time"

	"github.com/soocke/camfps-go/domain/session"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives session transitions from the FSM goroutine and
// reflects the most recent one on the next UI tick.
type StatePresenter struct {
	view    StateView
	mu      sync.Mutex // guards pending; OnState runs on the FSM goroutine
	pending []session.State
	latest  session.State
	shown   bool
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState is a session.Listener.
func (p *StatePresenter) OnState(prev, next session.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick processes queued states and updates the view with the most recent state.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if p.shown && last == p.latest {
		return
	}
	p.latest, p.shown = last, true
	p.view.SetStateLabel("State: " + last.String())
}
