package model

import "sync/atomic"

// PreviewModel holds the on/off switch of the live preview. The zero value is
// off. SetEnabled is also called from the delivery goroutine on failure.
type PreviewModel struct{ on atomic.Bool }

func (m *PreviewModel) Enabled() bool { return m != nil && m.on.Load() }

// SetEnabled stores b; a nil model ignores it.
func (m *PreviewModel) SetEnabled(b bool) {
	if m != nil {
		m.on.Store(b)
	}
}
