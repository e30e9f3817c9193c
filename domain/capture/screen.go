package capture

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenGrabber captures the active monitor, or a region of it, as the frame
// source. The zero value captures the full screen.
type ScreenGrabber struct {
	Region image.Rectangle // empty means the full screen
	bounds image.Rectangle
}

// NewScreenGrabber returns a grabber limited to region (may be empty).
func NewScreenGrabber(region image.Rectangle) *ScreenGrabber {
	return &ScreenGrabber{Region: region}
}

// Open resolves the screen bounds and clips the region to them.
func (g *ScreenGrabber) Open() error {
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoSource, err)
	}
	if screen.Empty() {
		return fmt.Errorf("%w: empty screen %v", ErrNoSource, screen)
	}
	g.bounds = screen
	if !g.Region.Empty() {
		r := g.Region.Intersect(screen)
		if r.Empty() {
			return fmt.Errorf("capture: region out of bounds region=%v screen=%v", g.Region, screen)
		}
		g.bounds = r
	}
	return nil
}

// Grab returns a newly allocated RGBA image of the configured bounds.
func (g *ScreenGrabber) Grab() (*image.RGBA, error) {
	if g.bounds.Empty() {
		return nil, fmt.Errorf("capture: screen grabber not open")
	}
	img, err := screenshot.CaptureRect(g.bounds)
	if err != nil {
		return nil, fmt.Errorf("capture screen %v: %w", g.bounds, err)
	}
	return img, nil
}

func (g *ScreenGrabber) Close() error {
	g.bounds = image.Rectangle{}
	return nil
}
