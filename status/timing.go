package status

import (
	"sync/atomic"
	"time"
)

// Timing keeps the last and the slowest observed duration of an operation
// Written by the event loop, read by the status bar
type Timing struct {
	last atomic.Int64
	peak atomic.Int64
}

// Observe records d as the latest sample
func (t *Timing) Observe(d time.Duration) {
	t.last.Store(int64(d))
	for {
		p := t.peak.Load()
		if int64(d) <= p || t.peak.CompareAndSwap(p, int64(d)) {
			return
		}
	}
}

// Last returns the latest sample, 0 before any
func (t *Timing) Last() time.Duration {
	return time.Duration(t.last.Load())
}

// Peak returns the slowest sample seen
func (t *Timing) Peak() time.Duration {
	return time.Duration(t.peak.Load())
}

// Millis converts d to fractional milliseconds for display
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
