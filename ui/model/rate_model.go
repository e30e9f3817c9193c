package model

import "fmt"

// RateModel holds the rate currently shown on screen. Zero value means no
// window has closed yet and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type RateModel struct {
	fps   int
	known bool
}

func NewRateModel() *RateModel { return &RateModel{} }

// Set records a newly published rate. It reports whether the shown value changed.
func (m *RateModel) Set(fps int) bool {
	if m == nil {
		return false
	}
	if fps < 0 {
		fps = 0
	}
	changed := !m.known || m.fps != fps
	m.fps, m.known = fps, true
	return changed
}

// Clear forgets the rate, e.g. when a new preview session starts.
func (m *RateModel) Clear() {
	if m == nil {
		return
	}
	m.fps, m.known = 0, false
}

// Value returns the rate and whether one was published.
func (m *RateModel) Value() (fps int, known bool) {
	if m == nil {
		return 0, false
	}
	return m.fps, m.known
}

// Text renders the overlay text: "FPS: n", or "Loading..." before the first window.
func (m *RateModel) Text() string {
	fps, known := m.Value()
	if !known {
		return "Loading..."
	}
	return fmt.Sprintf("FPS: %d", fps)
}
