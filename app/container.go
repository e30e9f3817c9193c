package app

import (
	"log/slog"

	"github.com/soocke/camfps-go/app/headless"
	"github.com/soocke/camfps-go/config"
	"github.com/soocke/camfps-go/domain/capture"
	"github.com/soocke/camfps-go/domain/session"
	"github.com/soocke/camfps-go/ui/model"
	"github.com/soocke/camfps-go/ui/presenter"
	"github.com/soocke/camfps-go/ui/view"
)

// AppContainer assembles models, services, presenters and views.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Grabber capture.FrameGrabber

	Preview *model.PreviewModel
	Rate    *model.RateModel
	Status  *model.StatusModel

	CaptureSvc capture.CaptureService
	FSM        session.Contract

	RootView     *view.RootView
	UI           view.UI
	SnapshotView *view.SnapshotView

	// Presenters
	CapturePresenter  *presenter.CapturePresenter
	StatePresenter    *presenter.StatePresenter
	StatusPresenter   *presenter.StatusPresenter
	FPSPresenter      *presenter.FPSPresenter
	PreviewPresenter  *presenter.PreviewPresenter
	SnapshotPresenter *presenter.SnapshotPresenter
	Loop              *presenter.Loop
}

// BuildContainer constructs the domain side: frame source, capture service,
// session FSM and models. Views and presenters are wired per mode once Tk is up.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Grabber = headless.NewGrabber(cfg)
	c.Preview = &model.PreviewModel{}
	c.Rate = model.NewRateModel()
	c.Status = &model.StatusModel{}
	c.FSM = session.NewFSM(logger)

	opts := headless.ServiceOptions(cfg)
	// The presenter does not exist yet; the hook resolves it at call time.
	opts.OnFailure = func(err error) { c.CapturePresenter.OnDeliveryFailure(err) }
	c.CaptureSvc = capture.NewCaptureService(logger, c.Grabber, opts)
	return c
}

// WirePreview attaches the live preview presenters to ui.
func (c *AppContainer) WirePreview(ui view.UI, schedule func()) {
	c.UI = ui
	c.CapturePresenter = presenter.NewCapturePresenter(c.Preview, c.CaptureSvc, c.FSM, c.Status, c.Rate, ui)
	c.StatePresenter = presenter.NewStatePresenter(ui)
	c.FSM.AddListener(c.StatePresenter.OnState)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, ui)
	c.FPSPresenter = presenter.NewFPSPresenter(c.CaptureSvc.Rate(), c.Rate, ui)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Preview, c.CaptureSvc, c.Rate, ui, presenter.PreviewOptions{
		MaxW:   c.Config.PreviewW,
		MaxH:   c.Config.PreviewH,
		BurnIn: c.Config.Mode == config.ModePreviewBurn,
	})
	c.Loop = presenter.NewLoop(c.CapturePresenter, c.StatePresenter, c.StatusPresenter, c.FPSPresenter, c.PreviewPresenter, schedule)
}

// WireSnapshot attaches the still-image presenter to sv.
func (c *AppContainer) WireSnapshot(sv *view.SnapshotView, schedule func()) {
	c.SnapshotView = sv
	c.SnapshotPresenter = presenter.NewSnapshotPresenter(c.Grabber, c.Status, sv, c.Config.SnapshotSize, c.Logger)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, sv)
	c.Loop = presenter.NewLoop(nil, nil, c.StatusPresenter, nil, nil, schedule)
}

// Close stops capture and the FSM. Safe to call more than once.
func (c *AppContainer) Close() {
	if c == nil {
		return
	}
	if c.CaptureSvc != nil {
		c.CaptureSvc.Stop()
	}
	if c.FSM != nil {
		c.FSM.Close()
	}
}
