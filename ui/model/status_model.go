package model

import "sync/atomic"

// StatusModel holds the single user-visible error message. It is written from
// UI callbacks and from capture failure hooks, so access is atomic.
// The zero value holds no error.
type StatusModel struct {
	msg atomic.Pointer[string]
	rev atomic.Uint64
}

// SetError replaces the current message.
func (m *StatusModel) SetError(msg string) {
	if m == nil {
		return
	}
	m.msg.Store(&msg)
	m.rev.Add(1)
}

// Clear removes the message.
func (m *StatusModel) Clear() {
	if m == nil {
		return
	}
	if m.msg.Swap(nil) != nil {
		m.rev.Add(1)
	}
}

// Message returns the current message ("" when none) and a revision that
// changes on every update.
func (m *StatusModel) Message() (msg string, rev uint64) {
	if m == nil {
		return "", 0
	}
	rev = m.rev.Load()
	if p := m.msg.Load(); p != nil {
		msg = *p
	}
	return msg, rev
}
