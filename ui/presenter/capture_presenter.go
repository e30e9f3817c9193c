package presenter

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/soocke/camfps-go/domain/capture"
)

// PreviewSwitch is the enabled flag of the preview.
type PreviewSwitch interface {
	Enabled() bool
	SetEnabled(bool)
}

// LifecycleContract narrows what presenter needs from the capture layer.
type LifecycleContract interface {
	Start() error
	Stop()
}

// SessionControl exposes the preview lifecycle events of the session FSM.
type SessionControl interface {
	EventStart()
	EventBound()
	EventFail(err error)
	EventStop()
}

// ErrorSink receives the single user-visible error message.
type ErrorSink interface {
	SetError(msg string)
	Clear()
}

// RateReset forgets the displayed rate when a new session begins.
type RateReset interface{ Clear() }

// CaptureView updates UI elements affected by preview toggling.
type CaptureView interface {
	PreviewReset()
}

// CapturePresenter owns presentation logic for starting and stopping the preview.
type CapturePresenter struct {
	model   PreviewSwitch
	service LifecycleContract // narrowed from full capture.CaptureService
	fsm     SessionControl
	status  ErrorSink
	rate    RateReset
	view    CaptureView
	// failed is set on the delivery goroutine; the UI goroutine clears the
	// stale frame and rate on its next Tick.
	failed atomic.Bool
}

func NewCapturePresenter(model PreviewSwitch, service LifecycleContract, fsm SessionControl, status ErrorSink, rate RateReset, view CaptureView) *CapturePresenter {
	return &CapturePresenter{model: model, service: service, fsm: fsm, status: status, rate: rate, view: view}
}

func (c *CapturePresenter) ready() bool {
	return c != nil && c.model != nil && c.service != nil && c.fsm != nil && c.status != nil && c.view != nil
}

// Enable starts the capture service inside a new session. On failure the
// session fails and the error is shown; otherwise any previous error is cleared. Idempotent.
func (c *CapturePresenter) Enable() {
	if !c.ready() {
		return
	}
	if c.model.Enabled() { // already enabled
		return
	}
	c.clearFailure()
	c.fsm.EventStart()
	if err := c.service.Start(); err != nil {
		c.fsm.EventFail(err)
		c.status.SetError(describeStartError(err))
		return
	}
	if c.rate != nil {
		c.rate.Clear()
	}
	c.model.SetEnabled(true)
	c.fsm.EventBound()
	c.status.Clear()
}

// Disable stops the capture service and ends the session, resetting preview. Idempotent.
func (c *CapturePresenter) Disable() {
	if !c.ready() {
		return
	}
	if !c.model.Enabled() { // already disabled
		return
	}
	c.service.Stop()
	c.model.SetEnabled(false)
	c.view.PreviewReset()
	c.fsm.EventStop()
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *CapturePresenter) Toggle() {
	if !c.ready() {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}

// OnDeliveryFailure is the capture service failure hook. It runs on the
// delivery goroutine and only touches concurrency-safe state.
func (c *CapturePresenter) OnDeliveryFailure(err error) {
	if !c.ready() {
		return
	}
	c.model.SetEnabled(false)
	c.failed.Store(true)
	c.fsm.EventFail(err)
	c.status.SetError("Capture Failed: " + err.Error())
}

// Tick resets the preview and the shown rate after a delivery failure.
func (c *CapturePresenter) Tick(now time.Time) {
	if !c.ready() {
		return
	}
	c.clearFailure()
}

func (c *CapturePresenter) clearFailure() {
	if !c.failed.Swap(false) {
		return
	}
	c.view.PreviewReset()
	if c.rate != nil {
		c.rate.Clear()
	}
}

func describeStartError(err error) string {
	if errors.Is(err, capture.ErrNoSource) {
		return "No Frame Source Found on Device!"
	}
	return "Bind Failed: " + err.Error()
}
