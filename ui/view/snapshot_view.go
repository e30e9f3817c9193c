package view

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/soocke/camfps-go/ui/images"
	"github.com/soocke/camfps-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SnapshotView is the still-image demo: a title, a square image slot and an
// open button, stacked and centered.
type SnapshotView struct {
	size       int
	imageLabel *LabelWidget
	errorLabel *LabelWidget
	photo      *Img
}

func NewSnapshotView(size int) *SnapshotView { return &SnapshotView{size: size} }

// Build packs the widgets; onOpen runs when the button is pressed.
func (v *SnapshotView) Build(onOpen func()) {
	title := Label(Txt("Camera Demo"), Foreground(theme.ColorTextDark), Background("#ffffff"))
	Pack(title, Pady("4m"))

	v.photo = NewPhoto(Data(images.EncodePNG(placeholder(v.size))))
	v.imageLabel = Label(Image(v.photo), Borderwidth(0))
	Pack(v.imageLabel, Padx("4m"), Pady("2m"))

	Pack(TButton(Style(theme.StylePrimaryButton), Txt("Open camera"), Command(onOpen)), Pady("2m"))

	v.errorLabel = Label(Txt(""), Foreground(theme.ColorDanger), Background("#ffffff"))
	Pack(v.errorLabel, Pady("1m"))
}

func placeholder(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0xEE, 0xEE, 0xEE, 0xFF}), image.Point{}, draw.Src)
	return img
}

// ShowSnapshot replaces the placeholder with img.
func (v *SnapshotView) ShowSnapshot(img image.Image) {
	if v == nil || v.imageLabel == nil || img == nil {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(images.EncodePNG(img)))
	v.imageLabel.Configure(Image(v.photo))
}

// SetErrorText shows a short failure notice under the button.
func (v *SnapshotView) SetErrorText(text string) {
	if v != nil && v.errorLabel != nil {
		v.errorLabel.Configure(Txt(text))
	}
}
