package presenter

import (
	"errors"
	"testing"
	"time"

	"github.com/soocke/camfps-go/domain/capture"
)

type mockModel struct{ enabled bool }

func (m *mockModel) Enabled() bool     { return m.enabled }
func (m *mockModel) SetEnabled(b bool) { m.enabled = b }

type mockService struct {
	started, stopped int
	startErr         error
}

func (s *mockService) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started++
	return nil
}
func (s *mockService) Stop() { s.stopped++ }

type mockFSM struct {
	started, bound, stopped int
	failed                  []error
}

func (f *mockFSM) EventStart()         { f.started++ }
func (f *mockFSM) EventBound()         { f.bound++ }
func (f *mockFSM) EventFail(err error) { f.failed = append(f.failed, err) }
func (f *mockFSM) EventStop()          { f.stopped++ }

type mockStatus struct {
	msg     string
	cleared int
}

func (s *mockStatus) SetError(msg string) { s.msg = msg }
func (s *mockStatus) Clear()              { s.msg = ""; s.cleared++ }

type mockRate struct{ cleared int }

func (r *mockRate) Clear() { r.cleared++ }

type mockView struct{ reset int }

func (v *mockView) PreviewReset() { v.reset++ }

type captureFixture struct {
	m      *mockModel
	svc    *mockService
	fsm    *mockFSM
	status *mockStatus
	rate   *mockRate
	view   *mockView
	p      *CapturePresenter
}

func newCaptureFixture() *captureFixture {
	f := &captureFixture{m: &mockModel{}, svc: &mockService{}, fsm: &mockFSM{}, status: &mockStatus{}, rate: &mockRate{}, view: &mockView{}}
	f.p = NewCapturePresenter(f.m, f.svc, f.fsm, f.status, f.rate, f.view)
	return f
}

func TestCapturePresenter_EnableDisable_Idempotent(t *testing.T) {
	f := newCaptureFixture()
	f.status.msg = "stale"

	f.p.Enable()
	if !f.m.Enabled() || f.svc.started != 1 || f.fsm.started != 1 || f.fsm.bound != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d fsmStart=%d bound=%d", f.m.Enabled(), f.svc.started, f.fsm.started, f.fsm.bound)
	}
	if f.status.msg != "" || f.rate.cleared != 1 {
		t.Fatalf("enable should clear error and rate: msg=%q rateCleared=%d", f.status.msg, f.rate.cleared)
	}
	f.p.Enable()
	if f.svc.started != 1 || f.fsm.started != 1 {
		t.Fatalf("enable not idempotent: started=%d fsmStart=%d", f.svc.started, f.fsm.started)
	}

	f.p.Disable()
	if f.m.Enabled() || f.svc.stopped != 1 || f.fsm.stopped != 1 || f.view.reset != 1 {
		t.Fatalf("disable failed: enabled=%v stopped=%d fsmStop=%d reset=%d", f.m.Enabled(), f.svc.stopped, f.fsm.stopped, f.view.reset)
	}
	f.p.Disable()
	if f.svc.stopped != 1 || f.fsm.stopped != 1 || f.view.reset != 1 {
		t.Fatalf("disable not idempotent: stopped=%d fsmStop=%d reset=%d", f.svc.stopped, f.fsm.stopped, f.view.reset)
	}
}

func TestCapturePresenter_StartFailureShowsError(t *testing.T) {
	f := newCaptureFixture()
	f.svc.startErr = capture.ErrNoSource
	f.p.Enable()
	if f.m.Enabled() {
		t.Fatalf("failed start must leave preview disabled")
	}
	if len(f.fsm.failed) != 1 || f.fsm.bound != 0 {
		t.Fatalf("expected one fail event and no bind: failed=%v bound=%d", f.fsm.failed, f.fsm.bound)
	}
	if f.status.msg != "No Frame Source Found on Device!" {
		t.Fatalf("unexpected message %q", f.status.msg)
	}

	f.svc.startErr = errors.New("busy")
	f.p.Enable()
	if f.status.msg != "Bind Failed: busy" {
		t.Fatalf("unexpected message %q", f.status.msg)
	}
}

func TestCapturePresenter_Toggle(t *testing.T) {
	f := newCaptureFixture()
	f.p.Toggle() // enable path
	if !f.m.Enabled() || f.svc.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	f.p.Toggle() // disable path
	if f.m.Enabled() || f.svc.stopped != 1 || f.view.reset != 1 {
		t.Fatalf("toggle disable failed")
	}
}

func TestCapturePresenter_DeliveryFailure(t *testing.T) {
	f := newCaptureFixture()
	f.p.Enable()
	f.p.OnDeliveryFailure(errors.New("device lost"))
	if f.m.Enabled() {
		t.Fatalf("delivery failure should disable the preview")
	}
	if len(f.fsm.failed) != 1 || f.status.msg != "Capture Failed: device lost" {
		t.Fatalf("unexpected failure handling: failed=%v msg=%q", f.fsm.failed, f.status.msg)
	}
	// the next toggle starts a new session rather than stopping
	f.p.Toggle()
	if f.svc.started != 2 {
		t.Fatalf("expected restart after failure, started=%d", f.svc.started)
	}
}

func TestCapturePresenter_TickClearsAfterDeliveryFailure(t *testing.T) {
	f := newCaptureFixture()
	f.p.Enable()
	rateCleared := f.rate.cleared
	f.p.OnDeliveryFailure(errors.New("device lost"))
	if f.view.reset != 0 {
		t.Fatalf("failure hook must not touch the view")
	}
	f.p.Tick(time.Now())
	if f.view.reset != 1 || f.rate.cleared != rateCleared+1 {
		t.Fatalf("tick should reset preview and rate: reset=%d cleared=%d", f.view.reset, f.rate.cleared)
	}
	f.p.Tick(time.Now())
	if f.view.reset != 1 {
		t.Fatalf("reset should happen once per failure, got %d", f.view.reset)
	}
	if f.status.msg != "Capture Failed: device lost" {
		t.Fatalf("error must stay visible, got %q", f.status.msg)
	}
}

func TestCapturePresenter_EnableClearsPendingFailure(t *testing.T) {
	f := newCaptureFixture()
	f.p.Enable()
	f.p.OnDeliveryFailure(errors.New("device lost"))
	f.p.Enable()
	if f.view.reset != 1 {
		t.Fatalf("enable should reset the stale preview, got %d", f.view.reset)
	}
	f.p.Tick(time.Now())
	if f.view.reset != 1 {
		t.Fatalf("failure already handled by enable, got %d resets", f.view.reset)
	}
}

func TestCapturePresenter_NilSafe(t *testing.T) {
	var p *CapturePresenter
	p.Enable()
	p.Disable()
	p.Toggle()
	p.OnDeliveryFailure(errors.New("x"))
	p.Tick(time.Now())
}
