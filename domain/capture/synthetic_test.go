package capture

import (
	"testing"
	"time"
)

func TestSyntheticGrabber_PacesFrames(t *testing.T) {
	g := NewSyntheticGrabber(32, 16, 10)
	clock := time.Unix(0, 0)
	var slept time.Duration
	g.now = func() time.Time { return clock }
	g.sleep = func(d time.Duration) { slept += d; clock = clock.Add(d) }

	if err := g.Open(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		img, err := g.Grab()
		if err != nil {
			t.Fatalf("grab %d: %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
			t.Fatalf("unexpected bounds %v", b)
		}
	}
	// first frame is immediate, the next four wait 100ms each
	if slept != 400*time.Millisecond {
		t.Fatalf("expected 400ms of pacing, got %v", slept)
	}
}

func TestSyntheticGrabber_PatternMoves(t *testing.T) {
	g := NewSyntheticGrabber(64, 8, 1000)
	g.sleep = func(time.Duration) {}
	_ = g.Open()
	a, _ := g.Grab()
	b, _ := g.Grab()
	if string(a.Pix) == string(b.Pix) {
		t.Fatalf("consecutive frames should differ")
	}
}

func TestSyntheticGrabber_ClosedFails(t *testing.T) {
	g := NewSyntheticGrabber(8, 8, 30)
	if _, err := g.Grab(); err == nil {
		t.Fatalf("grab before open should fail")
	}
	_ = g.Open()
	_ = g.Close()
	if _, err := g.Grab(); err == nil {
		t.Fatalf("grab after close should fail")
	}
}

func TestSyntheticGrabber_ZeroValueUsesDefaults(t *testing.T) {
	g := &SyntheticGrabber{Width: 4, Height: 4}
	if err := g.Open(); err != nil {
		t.Fatal(err)
	}
	g.sleep = func(time.Duration) {}
	img, err := g.Grab()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if g.FPS != 30 {
		t.Fatalf("expected default rate 30, got %d", g.FPS)
	}

	var zero SyntheticGrabber
	_ = zero.Open()
	zero.sleep = func(time.Duration) {}
	if img, err := zero.Grab(); err != nil || img.Bounds().Dx() != 320 || img.Bounds().Dy() != 240 {
		t.Fatalf("zero value should render the default size, got %v err=%v", img.Bounds(), err)
	}
}
