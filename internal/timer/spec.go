// Package timer holds the countdown's data model: the immutable run
// configuration, the captured start instants and the per-frame values the
// progress widget draws.
package timer

import (
	"errors"
	"fmt"
	"time"
)

// PollInterval bounds how long one loop iteration waits for input before the
// next redraw.
const PollInterval = 50 * time.Millisecond

// DefaultName is the title shown when the timer has no name.
const DefaultName = "Timer"

// ClockFormat selects how the start time is displayed.
type ClockFormat int

const (
	Clock24h ClockFormat = iota
	Clock12h
)

// ErrInvalidFormat is returned for clock formats other than 24h and 12h.
var ErrInvalidFormat = errors.New("invalid clock format")

// ParseClockFormat accepts "24h" or "12h".
func ParseClockFormat(s string) (ClockFormat, error) {
	switch s {
	case "24h":
		return Clock24h, nil
	case "12h":
		return Clock12h, nil
	default:
		return Clock24h, fmt.Errorf("%w: %q (use 24h or 12h)", ErrInvalidFormat, s)
	}
}

func (f ClockFormat) String() string {
	if f == Clock12h {
		return "12h"
	}
	return "24h"
}

// Layout returns the time layout used to render a wall clock in this format.
func (f ClockFormat) Layout() string {
	if f == Clock12h {
		return "03:04:05 PM"
	}
	return "15:04:05"
}

// Spec is the configuration of a single countdown run.
type Spec struct {
	Duration time.Duration
	Name     string
	Notify   bool
	Format   ClockFormat
}

// Title returns the name, or DefaultName when none was given.
func (s Spec) Title() string {
	if s.Name == "" {
		return DefaultName
	}
	return s.Name
}
