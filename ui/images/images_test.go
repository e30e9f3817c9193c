package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestFit_DownscalesPreservingAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	out := Fit(src, 640, 640)
	b := out.Bounds()
	if b.Dx() != 640 || b.Dy() != 360 {
		t.Fatalf("expected 640x360, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestFit_ReturnsSourceWhenItFits(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if out := Fit(src, 200, 200); out != image.Image(src) {
		t.Fatalf("expected the original image")
	}
	if Fit(nil, 10, 10) != nil {
		t.Fatalf("nil in, nil out")
	}
}

func TestCenterCrop_ExactSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 600))
	out := CenterCrop(src, 500, 500)
	if b := out.Bounds(); b.Dx() != 500 || b.Dy() != 500 {
		t.Fatalf("expected 500x500, got %v", b)
	}
}

func TestDrawLabel_DrawsWithoutTouchingSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	out := DrawLabel(src, "FPS: 30", 2)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v", out.Bounds())
	}
	for _, p := range src.Pix {
		if p != 0xFF {
			t.Fatalf("source modified")
		}
	}
	// the plate darkens the top-left corner
	if c := out.RGBAAt(1, 1); c.R == 0xFF && c.G == 0xFF && c.B == 0xFF {
		t.Fatalf("expected overlay at top-left, got %v", c)
	}
	// far corner untouched
	if c := out.RGBAAt(199, 99); c != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("expected untouched bottom-right, got %v", c)
	}
	greens := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 150; x++ {
			c := out.RGBAAt(x, y)
			if c.G > 0xC0 && c.R < 0x40 && c.B < 0x40 {
				greens++
			}
		}
	}
	if greens == 0 {
		t.Fatalf("expected green glyph pixels")
	}
}

func TestDrawLabel_EmptyTextCopies(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 20, 20))
	out := DrawLabel(src, "", 1)
	if out.Bounds().Dx() != 10 || out.Bounds().Min != (image.Point{}) {
		t.Fatalf("expected a zero-origin copy, got %v", out.Bounds())
	}
}

func TestEncodePNG_Decodes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	data := EncodePNG(src)
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image should encode to nil")
	}
}
