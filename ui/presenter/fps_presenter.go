package presenter

import (
	"time"

	"github.com/soocke/camfps-go/ui/model"
)

// RateSource is the display side of the rate hand-off.
type RateSource interface{ Updates() <-chan int }

// FPSView shows the rate text.
type FPSView interface{ SetFPSText(text string) }

// FPSPresenter moves published rates from the delivery goroutine's mailbox
// into the RateModel and the view. It runs on the UI tick only.
type FPSPresenter struct {
	src   RateSource
	rate  *model.RateModel
	view  FPSView
	shown string
}

func NewFPSPresenter(src RateSource, rate *model.RateModel, view FPSView) *FPSPresenter {
	return &FPSPresenter{src: src, rate: rate, view: view}
}

// Tick takes the pending rate, if any, without blocking and refreshes the label on change.
func (p *FPSPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.rate == nil || p.view == nil {
		return
	}
	select {
	case fps := <-p.src.Updates():
		p.rate.Set(fps)
	default:
	}
	if text := p.rate.Text(); text != p.shown {
		p.shown = text
		p.view.SetFPSText(text)
	}
}
