package timer

import "time"

// Frame is recomputed on every loop iteration and discarded after drawing.
type Frame struct {
	Elapsed   time.Duration
	Remaining time.Duration
	Percent   int
}

// NewFrame derives the frame values for elapsed time into a run of total.
func NewFrame(total, elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := total - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Frame{
		Elapsed:   elapsed,
		Remaining: remaining,
		Percent:   Percent(total, elapsed),
	}
}

// Percent maps elapsed time onto 0..100, truncating. It reaches 100 only
// once elapsed >= total.
func Percent(total, elapsed time.Duration) int {
	if total <= 0 || elapsed >= total {
		return 100
	}
	if elapsed <= 0 {
		return 0
	}
	p := int(elapsed.Seconds() / total.Seconds() * 100)
	switch {
	case p < 0:
		return 0
	case p > 99:
		// float rounding on very long runs
		return 99
	}
	return p
}
