package presenter

import (
	"image"
	"time"

	"github.com/soocke/camfps-go/domain/capture"
	"github.com/soocke/camfps-go/ui/images"
	"github.com/soocke/camfps-go/ui/model"
)

// CaptureEnabledModel reports whether the preview is enabled.
type CaptureEnabledModel interface{ Enabled() bool }

// LatestFrameSource returns the freshest delivered frame.
type LatestFrameSource interface{ LatestFrame() capture.FrameSnapshot }

// PreviewView displays a preview frame.
type PreviewView interface{ UpdatePreview(img image.Image) }

// PreviewOptions configures scaling and the overlay variant.
type PreviewOptions struct {
	MaxW, MaxH int
	BurnIn     bool // draw the rate into the frame instead of relying on the label
	LabelScale int
}

// PreviewPresenter pushes each new frame to the view once.
type PreviewPresenter struct {
	enabled CaptureEnabledModel
	src     LatestFrameSource
	rate    *model.RateModel
	view    PreviewView
	opts    PreviewOptions
	lastAt  time.Time
	lastSeq uint64
}

func NewPreviewPresenter(enabled CaptureEnabledModel, src LatestFrameSource, rate *model.RateModel, view PreviewView, opts PreviewOptions) *PreviewPresenter {
	if opts.LabelScale < 1 {
		opts.LabelScale = 2
	}
	return &PreviewPresenter{enabled: enabled, src: src, rate: rate, view: view, opts: opts}
}

// Tick renders the latest frame when it differs from the last one shown.
func (p *PreviewPresenter) Tick(now time.Time) {
	if p == nil || p.enabled == nil || p.src == nil || p.view == nil {
		return
	}
	if !p.enabled.Enabled() {
		return
	}
	snap := p.src.LatestFrame()
	if snap.Image == nil {
		return
	}
	if snap.Sequence == p.lastSeq && snap.CapturedAt.Equal(p.lastAt) {
		return
	}
	p.lastSeq, p.lastAt = snap.Sequence, snap.CapturedAt

	var img image.Image = snap.Image
	if p.opts.MaxW > 0 && p.opts.MaxH > 0 {
		img = images.Fit(img, p.opts.MaxW, p.opts.MaxH)
	}
	if p.opts.BurnIn {
		img = images.DrawLabel(img, p.rate.Text(), p.opts.LabelScale)
	}
	p.view.UpdatePreview(img)
}
