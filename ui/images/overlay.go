package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay colors match the label variant: green text on a translucent black plate.
var (
	LabelForeground = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	LabelBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x99}
)

const labelPad = 4

// DrawLabel returns a copy of src with text drawn at the top-left corner,
// magnified by scale (nearest neighbour, minimum 1). src is never modified.
func DrawLabel(src image.Image, text string, scale int) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if text == "" {
		return dst
	}
	if scale < 1 {
		scale = 1
	}

	plate := renderText(text)
	if scale > 1 {
		pb := plate.Bounds()
		scaled := imaging.Resize(plate, pb.Dx()*scale, pb.Dy()*scale, imaging.NearestNeighbor)
		draw.Draw(dst, scaled.Bounds(), scaled, image.Point{}, draw.Over)
		return dst
	}
	draw.Draw(dst, plate.Bounds(), plate, image.Point{}, draw.Over)
	return dst
}

// renderText draws text with basicfont onto a padded translucent plate.
func renderText(text string) *image.RGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := m.Height.Ceil()
	plate := image.NewRGBA(image.Rect(0, 0, width+2*labelPad, height+2*labelPad))
	draw.Draw(plate, plate.Bounds(), image.NewUniform(LabelBackground), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  plate,
		Src:  image.NewUniform(LabelForeground),
		Face: face,
		Dot:  fixed.P(labelPad, labelPad+ascent),
	}
	d.DrawString(text)
	return plate
}
