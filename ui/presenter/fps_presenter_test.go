package presenter

import (
	"testing"
	"time"

	"github.com/soocke/camfps-go/domain/framerate"
	"github.com/soocke/camfps-go/ui/model"
)

type mockFPSView struct{ texts []string }

func (v *mockFPSView) SetFPSText(s string) { v.texts = append(v.texts, s) }

func TestFPSPresenter_LoadingThenRate(t *testing.T) {
	mailbox := framerate.NewLatest()
	rate := model.NewRateModel()
	view := &mockFPSView{}
	p := NewFPSPresenter(mailbox, rate, view)
	now := time.Unix(0, 0)

	p.Tick(now)
	if len(view.texts) != 1 || view.texts[0] != "Loading..." {
		t.Fatalf("expected loading text first, got %v", view.texts)
	}
	p.Tick(now)
	if len(view.texts) != 1 {
		t.Fatalf("unchanged text should not be re-sent, got %v", view.texts)
	}

	mailbox.Publish(12)
	mailbox.Publish(30)
	p.Tick(now)
	if got := view.texts[len(view.texts)-1]; got != "FPS: 30" {
		t.Fatalf("expected newest rate, got %q", got)
	}
	if fps, _ := rate.Value(); fps != 30 {
		t.Fatalf("rate model not updated, got %d", fps)
	}
}

func TestFPSPresenter_DrivenByCounter(t *testing.T) {
	mailbox := framerate.NewLatest()
	counter := framerate.NewCounter(time.Second, mailbox.Publish)
	view := &mockFPSView{}
	p := NewFPSPresenter(mailbox, model.NewRateModel(), view)

	base := time.Unix(0, 0)
	for i := 0; i <= 30; i++ {
		counter.RecordFrame(base.Add(time.Duration(i) * time.Second / 30))
	}
	p.Tick(base)
	if got := view.texts[len(view.texts)-1]; got != "FPS: 31" {
		t.Fatalf("expected FPS: 31, got %q", got)
	}
}
