package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters in order and invokes a scheduler
// callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Capture  *CapturePresenter
	State    *StatePresenter
	Status   *StatusPresenter
	FPS      *FPSPresenter
	Preview  *PreviewPresenter
	Schedule func()
}

func NewLoop(capture *CapturePresenter, state *StatePresenter, status *StatusPresenter, fps *FPSPresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Capture: capture, State: state, Status: status, FPS: fps, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Capture first so a failed session's rate is cleared before FPS reads it.
	l.Capture.Tick(now)
	l.State.Tick(now)
	l.Status.Tick(now)
	// FPS before preview so burned-in text uses this tick's rate.
	l.FPS.Tick(now)
	l.Preview.Tick(now)
	if l.Schedule != nil {
		l.Schedule()
	}
}
