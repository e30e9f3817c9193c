package view

import (
	"image"

	"github.com/soocke/camfps-go/ui/images"
	"github.com/soocke/camfps-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview abstracts the live preview label with the rate and error
// overlays stacked in the same grid cell.
type CapturePreview interface {
	UpdatePreview(img image.Image)
	SetFPSText(text string)
	SetErrorText(text string)
	Reset()
}

type capturePreview struct {
	previewLabel *LabelWidget
	fpsLabel     *LabelWidget
	errorLabel   *LabelWidget
	w, h         int
	prevPhoto    *Img // last Tk photo image instance, deleted before replacement
}

// NewCapturePreview creates the preview, grids it at row and returns the view.
// showFPSLabel is false for the burn-in variant where the rate is drawn into the frame.
func NewCapturePreview(row, w, h int, showFPSLabel bool) CapturePreview {
	placeholder := blank(w, h)
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	preview := Label(Image(photo), Background(theme.ColorPreviewBg), Borderwidth(0))
	Grid(preview, Row(row), Column(0), Columnspan(4), Sticky("nsew"))
	v := &capturePreview{previewLabel: preview, w: w, h: h, prevPhoto: photo}

	if showFPSLabel {
		v.fpsLabel = Label(Txt("Loading..."), Foreground(theme.ColorFPS), Background(theme.ColorPreviewBg), Padx("4m"), Pady("2m"))
		Grid(v.fpsLabel, Row(row), Column(0), Sticky("nw"), Padx("2m"), Pady("3m"))
	}
	v.errorLabel = Label(Txt(""), Foreground(theme.ColorError), Background(theme.ColorErrorPlate), Anchor("w"))
	Grid(v.errorLabel, Row(row), Column(0), Columnspan(4), Sticky("swe"))
	return v
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF // opaque black
	}
	return img
}

func (v *capturePreview) UpdatePreview(img image.Image) {
	if v.previewLabel == nil || img == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.previewLabel.Configure(Image(v.prevPhoto))
}

func (v *capturePreview) SetFPSText(text string) {
	if v.fpsLabel != nil {
		v.fpsLabel.Configure(Txt(text))
	}
}

func (v *capturePreview) SetErrorText(text string) {
	if v.errorLabel != nil {
		v.errorLabel.Configure(Txt(text))
	}
}

func (v *capturePreview) Reset() {
	if v.previewLabel == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(blank(v.w, v.h))))
	v.previewLabel.Configure(Image(v.prevPhoto))
	v.SetFPSText("Loading...")
}
