package framerate

import "sync/atomic"

// Latest is a single-slot hand-off for published rates. The delivery
// goroutine calls Publish; the display goroutine reads Updates or Load.
// An unread value is replaced by a newer one, Publish never blocks.
// The zero value is not usable, use NewLatest.
type Latest struct {
	ch    chan int
	value atomic.Int64
	count atomic.Uint64
}

// NewLatest returns an empty mailbox.
func NewLatest() *Latest {
	return &Latest{ch: make(chan int, 1)}
}

// Publish stores fps and offers it to Updates, dropping any unread value.
func (l *Latest) Publish(fps int) {
	if l == nil {
		return
	}
	l.value.Store(int64(fps))
	l.count.Add(1)
	for {
		select {
		case l.ch <- fps:
			return
		default:
		}
		// slot full: discard the stale value and retry
		select {
		case <-l.ch:
		default:
		}
	}
}

// Updates delivers published values; only the newest unread one is kept.
func (l *Latest) Updates() <-chan int { return l.ch }

// Load returns the last published value. ok is false before the first publication.
func (l *Latest) Load() (fps int, ok bool) {
	if l == nil || l.count.Load() == 0 {
		return 0, false
	}
	return int(l.value.Load()), true
}

// Publications returns how many values have been published.
func (l *Latest) Publications() uint64 {
	if l == nil {
		return 0
	}
	return l.count.Load()
}

// Reset drops any unread value and forgets the last one. It must not race
// with Publish; the capture service calls it before a new session starts.
func (l *Latest) Reset() {
	if l == nil {
		return
	}
	select {
	case <-l.ch:
	default:
	}
	l.value.Store(0)
	l.count.Store(0)
}
