package capture

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"

	"github.com/soocke/camfps-go/domain/framerate"
)

const captureStatsLogInterval = 5 * time.Second

var errEmptyFrame = errors.New("capture: grabber returned no frame")

// CaptureService runs the frame-delivery goroutine: it pulls frames from a
// FrameGrabber, keeps only the latest one and feeds every delivered frame to
// a framerate.Counter owned by that goroutine. Use NewCaptureService to
// construct an instance.
type CaptureService interface {
	ServiceContract
	FrameSource
	Stats() CaptureStats
	Rate() *framerate.Latest
}

// Options tunes a capture service. Zero values pick defaults.
type Options struct {
	Window          time.Duration // rate measurement window
	MaxGrabFailures int           // consecutive grab errors before delivery stops
	// OnFailure is called once from the delivery goroutine when delivery
	// stops because of grab errors. It must not block.
	OnFailure func(error)
	Now       func() time.Time
}

type captureService struct {
	grabber FrameGrabber
	logger  *slog.Logger
	opts    Options
	rate    *framerate.Latest

	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	sessionID    atomic.Pointer[string]
	frames       atomic.Uint64
	grabErrors   atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64

	mu     sync.Mutex // guards lifecycle fields below
	active bool
	stop   chan struct{}
	wg     *conc.WaitGroup
}

func newCaptureService(logger *slog.Logger, grabber FrameGrabber, opts Options) *captureService {
	if opts.Window <= 0 {
		opts.Window = framerate.DefaultWindow
	}
	if opts.MaxGrabFailures <= 0 {
		opts.MaxGrabFailures = 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &captureService{grabber: grabber, logger: logger, opts: opts, rate: framerate.NewLatest()}
}

// NewCaptureService constructs a capture service delivering frames from grabber.
func NewCaptureService(logger *slog.Logger, grabber FrameGrabber, opts Options) CaptureService {
	return newCaptureService(logger, grabber, opts)
}

func (s *captureService) Rate() *framerate.Latest { return s.rate }

func (s *captureService) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *captureService) Running() bool { return s.running.Load() }

func (s *captureService) Stats() CaptureStats {
	frames := s.frames.Load()
	var mean time.Duration
	if frames > 0 {
		mean = time.Duration(s.captureNanos.Load() / frames)
	}
	snap := s.LatestFrame()
	var age time.Duration
	if !snap.CapturedAt.IsZero() {
		age = s.opts.Now().Sub(snap.CapturedAt)
	}
	st := CaptureStats{
		Window:       s.opts.Window,
		Frames:       frames,
		GrabErrors:   s.grabErrors.Load(),
		MeanGrab:     mean,
		FrameAge:     age,
		Sequence:     snap.Sequence,
		Publications: s.rate.Publications(),
	}
	if p := s.sessionID.Load(); p != nil {
		st.SessionID = *p
	}
	st.FPS, st.FPSKnown = s.rate.Load()
	return st
}

// Start opens the grabber and launches a new delivery session with a fresh
// rate counter. Starting a running service is a no-op.
func (s *captureService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		if s.running.Load() {
			return nil
		}
		// delivery ended on its own (grab failures); clean up before restarting
		s.stopLocked()
	}
	if s.grabber == nil {
		return ErrNoSource
	}
	if err := s.grabber.Open(); err != nil {
		return fmt.Errorf("open frame source: %w", err)
	}

	id := uuid.NewString()
	s.sessionID.Store(&id)
	s.latest.Store(nil)
	s.frames.Store(0)
	s.grabErrors.Store(0)
	s.captureNanos.Store(0)
	s.sequence.Store(0)
	s.rate.Reset()

	stop := make(chan struct{})
	s.stop = stop
	s.active = true
	s.running.Store(true)
	s.wg = conc.NewWaitGroup()
	s.wg.Go(func() { s.loop(stop, id) })
	if s.logger != nil {
		s.logger.Info("capture started", "session_id", id, "window", s.opts.Window)
	}
	return nil
}

// Stop ends the delivery session, waits for the goroutine to exit and closes
// the grabber. The session's counter is discarded with it.
func (s *captureService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.stopLocked()
}

func (s *captureService) stopLocked() {
	close(s.stop)
	s.wg.Wait()
	s.active = false
	s.running.Store(false)
	if err := s.grabber.Close(); err != nil && s.logger != nil {
		s.logger.Error("close frame source", "error", err)
	}
	if s.logger != nil {
		s.logger.Info("capture stopped", "frames", s.frames.Load(), "grab_errors", s.grabErrors.Load())
	}
}

func (s *captureService) loop(stop <-chan struct{}, sessionID string) {
	defer s.running.Store(false)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := fmt.Errorf("capture loop panic: %v", r)
		if s.logger != nil {
			s.logger.Error("capture failed", "error", err, "stack", string(debug.Stack()))
		}
		if s.opts.OnFailure != nil {
			s.opts.OnFailure(err)
		}
	}()

	logger := s.logger
	if logger != nil {
		logger = logger.With("session_id", sessionID)
	}
	counter := framerate.NewCounter(s.opts.Window, func(fps int) {
		s.rate.Publish(fps)
		if logger != nil {
			logger.Debug("capture.fps", "fps", fps)
		}
	})

	logTicker := time.NewTicker(captureStatsLogInterval)
	defer logTicker.Stop()
	failures := 0
	for {
		select {
		case <-stop:
			return
		default:
		}

		start := s.opts.Now()
		img, err := s.grabber.Grab()
		if err == nil && img == nil {
			err = errEmptyFrame
		}
		if err != nil {
			s.grabErrors.Add(1)
			failures++
			if failures >= s.opts.MaxGrabFailures {
				if logger != nil {
					logger.Error("capture failed", "error", err, "consecutive_failures", failures)
				}
				if s.opts.OnFailure != nil {
					s.opts.OnFailure(err)
				}
				return
			}
			time.Sleep(1 * time.Millisecond)
			continue
		}
		failures = 0

		captured := s.opts.Now()
		s.captureNanos.Add(uint64(captured.Sub(start).Nanoseconds()))
		s.frames.Add(1)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: captured, Sequence: seq})
		counter.RecordFrame(captured)

		select {
		case <-logTicker.C:
			s.logStats(logger)
		default:
		}
	}
}

func (s *captureService) logStats(logger *slog.Logger) {
	if logger == nil {
		return
	}
	stats := s.Stats()
	logger.Debug("capture.stats",
		"frames", stats.Frames,
		"grab_errors", stats.GrabErrors,
		"mean_grab", stats.MeanGrab,
		"age", stats.FrameAge,
		"fps", stats.FPS,
	)
}
