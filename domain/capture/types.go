package capture

import (
	"errors"
	"image"
	"time"
)

// ErrNoSource is returned by Open when the grabber has nothing to capture from.
var ErrNoSource = errors.New("capture: no frame source found")

// FrameGrabber is the external frame producer (screen, test pattern, camera).
// Grab blocks until a frame is available and is called from a single goroutine.
type FrameGrabber interface {
	Open() error
	Grab() (*image.RGBA, error)
	Close() error
}

// FrameSnapshot is a delivered frame with its arrival time. Sequence starts
// at 1 in every session; zero means no frame yet.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// FrameSource provides read-only access to delivered frames.
// LatestFrame returns the freshest snapshot while Running reports activity.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// ServiceContract exposes basic lifecycle control for capture services.
type ServiceContract interface {
	Start() error
	Stop()
	Running() bool
}
