package reencode

import (
	"time"
)

// ProgressFunc receives dispatch counters from a phase. The final call of a
// phase is marked so terminal state is always visible even when
// intermediate updates were throttled away.
type ProgressFunc func(current, total int, final bool)

// Throttler rate-limits a ProgressFunc to one call per interval, always
// letting final calls through. It owns its own clock state, so two phases
// or two runs never share throttle history.
type Throttler struct {
	fn       ProgressFunc
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

// NewThrottler wraps fn with the given minimum interval between calls.
// A non-positive interval defaults to one second.
func NewThrottler(fn ProgressFunc, interval time.Duration) *Throttler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Throttler{fn: fn, interval: interval, now: time.Now}
}

// Report forwards the update unless it arrives inside the throttle window.
// Final updates always pass.
func (t *Throttler) Report(current, total int, final bool) {
	if t == nil || t.fn == nil {
		return
	}
	if !final {
		now := t.now()
		if now.Sub(t.last) < t.interval {
			return
		}
		t.last = now
	}
	t.fn(current, total, final)
}
