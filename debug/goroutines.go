package debug

// Debug goroutine metrics logger. Started only when config.Debug is true.
// Emits goroutine count (runtime metrics), stack usage and the current frame
// rate at a fixed interval.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// RateFunc reports the most recent published frame rate.
type RateFunc func() (fps int, known bool)

// StartGoroutineLogger launches a ticker that logs goroutine count, stack
// memory and, when rate is non-nil, the current FPS. It stops with ctx.
func StartGoroutineLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, rate RateFunc) {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		return
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			logger.Info("goroutine-stacks", goroutineAttrs(samples, rate)...)
		}
	}()
}

func goroutineAttrs(samples []metrics.Sample, rate RateFunc) []any {
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", goroutines),
		slog.String("stack_inuse", humanize.IBytes(ms.StackInuse)),
		slog.String("stack_sys", humanize.IBytes(ms.StackSys)),
		slog.String("heap_alloc", humanize.IBytes(ms.HeapAlloc)),
	}
	if rate != nil {
		if fps, ok := rate(); ok {
			attrs = append(attrs, slog.Int("fps", fps))
		} else {
			attrs = append(attrs, slog.String("fps", "loading"))
		}
	}
	return attrs
}
