package ui

import (
	"fmt"
	"time"

	"github.com/stigoleg/countdown/internal/timer"
)

// FormatRemaining renders the time left. Below one second it shows
// truncated hundredths of a second ("0.37s", never "1.00s"), otherwise
// zero-padded hours, minutes and seconds with an unbounded hours field
// ("01h:05m:09s").
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Truncate(10*time.Millisecond).Seconds())
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02dh:%02dm:%02ds", secs/3600, secs/60%60, secs%60)
}

// FormatStart renders the wall-clock start time in the given clock format.
func FormatStart(t time.Time, format timer.ClockFormat) string {
	return t.Format(format.Layout())
}
