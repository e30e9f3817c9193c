package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/camfps-go/config"
	"github.com/soocke/camfps-go/debug"
	"github.com/soocke/camfps-go/ui/theme"
	"github.com/soocke/camfps-go/ui/view"
)

type app struct {
	ctx     context.Context
	cancel  context.CancelFunc
	config  *config.Config
	logger  *slog.Logger
	title   string
	tick    time.Duration
	afterID string
	c       *AppContainer
}

// NewApp creates the Tk root window for the mode in cfg.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{config: cfg, logger: logger, title: title, tick: time.Duration(cfg.TickMillis) * time.Millisecond}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	return a
}

// Start builds the mode's window and blocks in the Tk event loop.
func (a *app) Start() {
	cfg := a.config
	switch cfg.Mode {
	case config.ModeHello:
		theme.InitLightStyles()
		WmGeometry(App, "320x120+100+100")
		view.BuildHello()
	case config.ModeSnapshot:
		theme.InitLightStyles()
		WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.SnapshotSize+40, cfg.SnapshotSize+160))
		a.c = BuildContainer(cfg, a.logger)
		sv := view.NewSnapshotView(cfg.SnapshotSize)
		sv.Build(func() {
			if err := a.c.SnapshotPresenter.Capture(); err != nil && a.logger != nil {
				a.logger.Debug("snapshot not shown", "error", err)
			}
		})
		a.c.WireSnapshot(sv, a.scheduleUpdate)
		a.scheduleUpdate()
	default:
		theme.InitStyles()
		WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.PreviewW, cfg.PreviewH+40))
		a.c = BuildContainer(cfg, a.logger)
		rv := view.NewRootView(cfg, a.logger)
		rv.Build(a.togglePreview, a.exitHandler)
		a.c.RootView = rv
		a.c.WirePreview(rv, a.scheduleUpdate)
		// The preview starts as soon as the window is up.
		a.c.CapturePresenter.Enable()
		a.scheduleUpdate()
		if cfg.Debug {
			svc := a.c.CaptureSvc
			debug.StartGoroutineLogger(a.ctx, time.Second, a.logger, func() (int, bool) { return svc.Rate().Load() })
		}
	}
	if cfg.Debug {
		debug.StartMemLogger(a.ctx, 2*time.Second, a.logger)
	}
	if a.logger != nil {
		a.logger.Info("window started", "title", a.title, "mode", cfg.Mode, "source", cfg.Source)
	}
	App.Wait()
}

func (a *app) update() {
	if a.c == nil || a.c.Loop == nil {
		return
	}
	a.c.Loop.Tick()
}

func (a *app) togglePreview() {
	if a.c != nil && a.c.CapturePresenter != nil {
		a.c.CapturePresenter.Toggle()
	}
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.cancel()
	a.c.Close()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, func() { a.update() })
}
