package capture

import "time"

// CaptureStats is a point-in-time view of the current delivery session.
type CaptureStats struct {
	SessionID    string
	Window       time.Duration
	Frames       uint64        // frames delivered this session
	GrabErrors   uint64        // failed grabs this session
	MeanGrab     time.Duration // average time spent in Grab
	FrameAge     time.Duration // since the latest frame arrived
	Sequence     uint64
	Publications uint64
	FPS          int  // last published rate
	FPSKnown     bool // false until the first window closed
}

// Healthy reports whether the session has delivered more frames than errors.
func (s CaptureStats) Healthy() bool { return s.Frames > s.GrabErrors }
