package presenter

import "time"

// StatusSource exposes the current error message and its revision.
type StatusSource interface{ Message() (msg string, rev uint64) }

// ErrorView shows the error line; an empty text hides it.
type ErrorView interface{ SetErrorText(text string) }

// StatusPresenter reflects StatusModel updates into the error label.
type StatusPresenter struct {
	src     StatusSource
	view    ErrorView
	lastRev uint64
}

func NewStatusPresenter(src StatusSource, view ErrorView) *StatusPresenter {
	return &StatusPresenter{src: src, view: view}
}

func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	msg, rev := p.src.Message()
	if rev == p.lastRev {
		return
	}
	p.lastRev = rev
	if msg == "" {
		p.view.SetErrorText("")
		return
	}
	p.view.SetErrorText("ERROR: " + msg)
}
