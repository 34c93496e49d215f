package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is matched by every error returned from ParseDuration.
var ErrInvalidDuration = errors.New("invalid duration")

const validFormats = "Valid formats:\n" +
	"• Seconds: a bare number (e.g., '90')\n" +
	"• Units: h, m, s, ms (e.g., '45m', '1h30m', '500ms')"

// InvalidDurationError reports a duration token that is neither a bare
// number of seconds nor a compound unit duration.
type InvalidDurationError struct {
	Input string
	Err   error
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("Invalid duration format: %q (%v)\n\n%s", e.Input, e.Err, validFormats)
}

func (e *InvalidDurationError) Unwrap() error {
	return e.Err
}

func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// ParseDuration resolves a duration token. A bare nonnegative integer is a
// number of whole seconds; anything else must be a compound duration such as
// "1h30m" or "500ms". Whitespace between components is ignored.
func ParseDuration(input string) (time.Duration, error) {
	token := strings.TrimSpace(input)

	if seconds, err := strconv.ParseUint(token, 10, 64); err == nil {
		if seconds > uint64(maxSeconds) {
			return 0, &InvalidDurationError{Input: input, Err: errors.New("duration out of range")}
		}
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(strings.Join(strings.Fields(token), ""))
	if err != nil {
		return 0, &InvalidDurationError{Input: input, Err: err}
	}
	if d < 0 {
		return 0, &InvalidDurationError{Input: input, Err: errors.New("duration must not be negative")}
	}
	return d, nil
}

const maxSeconds = int64(1<<63-1) / int64(time.Second)
