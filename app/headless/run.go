// Package headless runs the capture and rate pipeline without a window.
// It has no Tk dependency so it can run in CI.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/camfps-go/config"
	"github.com/soocke/camfps-go/debug"
	"github.com/soocke/camfps-go/domain/capture"
)

// ErrNoPublication is returned when a run ends before any window closed.
var ErrNoPublication = errors.New("headless: no frame rate published")

// NewGrabber builds the frame source selected by cfg.Source.
func NewGrabber(cfg *config.Config) capture.FrameGrabber {
	if cfg.Source == config.SourceSynthetic {
		return capture.NewSyntheticGrabber(cfg.PreviewW, cfg.PreviewH, cfg.TargetFPS)
	}
	region := image.Rect(cfg.RegionX, cfg.RegionY, cfg.RegionX+cfg.RegionW, cfg.RegionY+cfg.RegionH)
	return capture.NewScreenGrabber(region)
}

// ServiceOptions maps cfg onto capture service options.
func ServiceOptions(cfg *config.Config) capture.Options {
	return capture.Options{
		Window:          time.Duration(cfg.WindowMillis) * time.Millisecond,
		MaxGrabFailures: cfg.MaxGrabFailures,
	}
}

// Run delivers frames from grabber until ctx is done, logging every published
// rate. It fails when the source cannot be opened, when delivery stops on
// grab errors or when nothing was published.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, grabber capture.FrameGrabber) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	failed := make(chan error, 1)
	opts := ServiceOptions(cfg)
	opts.OnFailure = func(err error) {
		select {
		case failed <- err:
		default:
		}
	}
	svc := capture.NewCaptureService(logger, grabber, opts)
	if err := svc.Start(); err != nil {
		return err
	}
	defer svc.Stop()

	if cfg.Debug {
		dctx, cancel := context.WithCancel(ctx)
		defer cancel()
		debug.StartGoroutineLogger(dctx, time.Second, logger, func() (int, bool) { return svc.Rate().Load() })
		debug.StartMemLogger(dctx, 2*time.Second, logger)
	}

	rate := svc.Rate()
	for {
		select {
		case <-ctx.Done():
			n := rate.Publications()
			stats := svc.Stats()
			logger.Info("headless run finished", "publications", n, "frames", stats.Frames, "grab_errors", stats.GrabErrors, "healthy", stats.Healthy())
			if n == 0 {
				return ErrNoPublication
			}
			return nil
		case err := <-failed:
			return fmt.Errorf("capture failed: %w", err)
		case fps := <-rate.Updates():
			logger.Info("fps", "fps", fps, "text", fmt.Sprintf("FPS: %d", fps))
		}
	}
}
