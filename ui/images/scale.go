package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// Fit scales src so that it fits within maxW x maxH preserving aspect ratio.
// If the source already fits, the original is returned.
func Fit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	// Box is cheap enough for per-tick preview scaling.
	return imaging.Fit(src, maxW, maxH, imaging.Box)
}

// CenterCrop scales and crops src to exactly w x h around its center, the way
// an image view with center-crop scaling shows a still.
func CenterCrop(src image.Image, w, h int) image.Image {
	if src == nil {
		return nil
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
}
