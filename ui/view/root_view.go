package view

import (
	"image"
	"log/slog"

	"github.com/soocke/camfps-go/config"
	"github.com/soocke/camfps-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the live preview window: preview with overlays on top,
// state label and buttons below.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	CapturePrev CapturePreview
	StateLabel  *TLabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	UpdatePreview(img image.Image)
	SetFPSText(text string)
	SetErrorText(text string)
	PreviewReset()
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onTogglePreview func(), onExit func()) {
	if rv == nil {
		return
	}
	showLabel := rv.cfg.Mode != config.ModePreviewBurn
	rv.CapturePrev = NewCapturePreview(0, rv.cfg.PreviewW, rv.cfg.PreviewH, showLabel)

	rv.StateLabel = TLabel(Style(theme.StyleStateLabel), Txt("State: idle"))
	Grid(rv.StateLabel, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	toggleBtn := TButton(Style(theme.StylePrimaryButton), Txt("Toggle Preview"), Command(onTogglePreview))
	Grid(toggleBtn, Row(1), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := TButton(Style(theme.StyleDangerButton), Txt("Exit"), Command(onExit))
	Grid(exitBtn, Row(1), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	GridColumnConfigure(App, 0, Weight(1))
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// UpdatePreview proxies to underlying capture preview view.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdatePreview(img)
	}
}

func (rv *RootView) SetFPSText(text string) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.SetFPSText(text)
	}
}

func (rv *RootView) SetErrorText(text string) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.SetErrorText(text)
	}
}

// PreviewReset clears the preview canvas; satisfies presenter.CaptureView.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}
