package timer

import "time"

// Clock provides time for the countdown. Tests inject a fake clock to drive
// frames deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now, which carries a monotonic reading.
var SystemClock Clock = systemClock{}

// RunState holds the instants captured once when the loop starts.
type RunState struct {
	// StartInstant keeps its monotonic reading; elapsed time is always
	// measured against it.
	StartInstant time.Time
	// StartWallClock is only displayed.
	StartWallClock time.Time
}

// Start captures a RunState from c.
func Start(c Clock) RunState {
	now := c.Now()
	return RunState{
		StartInstant:   now,
		StartWallClock: now.Round(0),
	}
}

// Elapsed returns the time since the start instant according to c.
func (r RunState) Elapsed(c Clock) time.Duration {
	elapsed := c.Now().Sub(r.StartInstant)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
