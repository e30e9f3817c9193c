package capture

import (
	"image"
	"image/color"
	"time"
)

// SyntheticGrabber produces a moving test pattern paced at a fixed frame
// rate. It stands in for a camera on headless or CI machines. Non-positive
// sizes and rates get the NewSyntheticGrabber defaults on Open.
type SyntheticGrabber struct {
	Width, Height int
	FPS           int

	now   func() time.Time
	sleep func(time.Duration)
	next  time.Time
	frame uint64
	open  bool
}

// NewSyntheticGrabber returns a w x h pattern source delivering fps frames per second.
func NewSyntheticGrabber(w, h, fps int) *SyntheticGrabber {
	g := &SyntheticGrabber{Width: w, Height: h, FPS: fps}
	g.applyDefaults()
	return g
}

func (g *SyntheticGrabber) applyDefaults() {
	if g.Width <= 0 {
		g.Width = 320
	}
	if g.Height <= 0 {
		g.Height = 240
	}
	if g.FPS <= 0 {
		g.FPS = 30
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.sleep == nil {
		g.sleep = time.Sleep
	}
}

func (g *SyntheticGrabber) Open() error {
	g.applyDefaults()
	g.open = true
	g.frame = 0
	g.next = time.Time{}
	return nil
}

// Grab waits for the next frame slot and renders the pattern. Slots are fixed
// to the first frame so a slow consumer does not shift the cadence.
func (g *SyntheticGrabber) Grab() (*image.RGBA, error) {
	if !g.open {
		return nil, ErrNoSource
	}
	interval := time.Second / time.Duration(g.FPS)
	now := g.now()
	if g.next.IsZero() {
		g.next = now
	}
	if wait := g.next.Sub(now); wait > 0 {
		g.sleep(wait)
	} else if -wait > 4*interval {
		// far behind: resync instead of bursting
		g.next = now
	}
	g.next = g.next.Add(interval)
	img := g.render()
	g.frame++
	return img, nil
}

func (g *SyntheticGrabber) Close() error {
	g.open = false
	return nil
}

// render draws a diagonal gradient with a vertical bar that sweeps one
// column step per frame.
func (g *SyntheticGrabber) render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	barW := g.Width / 16
	if barW < 1 {
		barW = 1
	}
	barX := int(g.frame*4) % g.Width
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.RGBA{
				R: uint8(x * 255 / g.Width),
				G: uint8(y * 255 / g.Height),
				B: uint8((x + y) % 256),
				A: 0xFF,
			}
			if x >= barX && x < barX+barW {
				c = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
