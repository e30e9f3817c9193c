package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/camfps-go/domain/capture"
	"github.com/soocke/camfps-go/ui/images"
)

// SnapshotView shows a captured still.
type SnapshotView interface{ ShowSnapshot(img image.Image) }

// SnapshotPresenter grabs a single frame on demand and shows it center-cropped.
type SnapshotPresenter struct {
	grabber capture.FrameGrabber
	status  ErrorSink
	view    SnapshotView
	size    int
	logger  *slog.Logger
}

func NewSnapshotPresenter(grabber capture.FrameGrabber, status ErrorSink, view SnapshotView, size int, logger *slog.Logger) *SnapshotPresenter {
	if size < 1 {
		size = 500
	}
	return &SnapshotPresenter{grabber: grabber, status: status, view: view, size: size, logger: logger}
}

// Capture opens the source, grabs one frame and closes the source again.
func (p *SnapshotPresenter) Capture() error {
	if p == nil || p.grabber == nil || p.view == nil || p.status == nil {
		return capture.ErrNoSource
	}
	if err := p.grabber.Open(); err != nil {
		p.fail("Camera not found", err)
		return err
	}
	defer func() {
		if err := p.grabber.Close(); err != nil && p.logger != nil {
			p.logger.Error("close frame source", "error", err)
		}
	}()
	img, err := p.grabber.Grab()
	if err == nil && img == nil {
		err = fmt.Errorf("capture: empty frame")
	}
	if err != nil {
		p.fail("Capture failed", err)
		return err
	}
	p.view.ShowSnapshot(images.CenterCrop(img, p.size, p.size))
	p.status.Clear()
	if p.logger != nil {
		p.logger.Info("snapshot captured", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}
	return nil
}

func (p *SnapshotPresenter) fail(prefix string, err error) {
	p.status.SetError(prefix + ": " + err.Error())
	if p.logger != nil {
		p.logger.Error("snapshot", "error", err)
	}
}
