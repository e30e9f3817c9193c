package framerate

import "time"

// DefaultWindow is the measurement window used when none is configured.
const DefaultWindow = time.Second

// Counter turns a serial stream of frame arrivals into a once-per-window
// frame count. It performs no locking: a single delivery goroutine owns it.
//
// A fresh counter has no baseline. The first RecordFrame call takes its
// timestamp as the window start (and still counts that frame), so the first
// window is never measured against a zero timestamp.
type Counter struct {
	window      time.Duration
	frames      int
	windowStart time.Time
	started     bool
	lastFPS     int
	onUpdate    func(fps int)
}

// NewCounter returns a counter closing a window every window duration and
// calling onUpdate with the frame count of each closed window. A window of
// zero or less uses DefaultWindow. onUpdate may be nil.
func NewCounter(window time.Duration, onUpdate func(fps int)) *Counter {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Counter{window: window, onUpdate: onUpdate}
}

// RecordFrame counts one frame observed at now. When at least one window has
// elapsed since the window start it publishes the count, resets it and moves
// the window start to now. It reports whether a publication happened.
func (c *Counter) RecordFrame(now time.Time) bool {
	if !c.started {
		c.Reset(now)
	}
	c.frames++
	if now.Sub(c.windowStart) < c.window {
		return false
	}
	fps := c.frames
	c.lastFPS = fps
	if c.onUpdate != nil {
		c.onUpdate(fps)
	}
	c.frames = 0
	c.windowStart = now
	return true
}

// Reset starts a new window at now with an empty count. The last published
// value is kept.
func (c *Counter) Reset(now time.Time) {
	c.frames = 0
	c.windowStart = now
	c.started = true
}

// Frames returns the number of frames seen in the open window.
func (c *Counter) Frames() int { return c.frames }

// WindowStart returns the start of the open window (zero before the first frame).
func (c *Counter) WindowStart() time.Time { return c.windowStart }

// LastFPS returns the most recently published count.
func (c *Counter) LastFPS() int { return c.lastFPS }

// Window returns the configured window length.
func (c *Counter) Window() time.Duration { return c.window }
