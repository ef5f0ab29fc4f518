package utilities

import (
	"fmt"
	"time"
)

// Stopwatch measures elapsed wall time between Tic and Toc.
// A Stopwatch is owned by its caller and is not safe for concurrent use.
type Stopwatch struct {
	start time.Time
	now   func() time.Time
}

// NewStopwatch creates a stopwatch that is already running
func NewStopwatch() *Stopwatch {
	s := &Stopwatch{now: time.Now}
	s.Tic()
	return s
}

// Tic (re)starts the stopwatch
func (s *Stopwatch) Tic() {
	s.start = s.now()
}

// Toc returns the time elapsed since the most recent Tic
func (s *Stopwatch) Toc() time.Duration {
	return s.now().Sub(s.start)
}

// FormatElapsed renders d as "Elapsed time is h:m:s <unit>." where unit
// names the largest non-zero component. Seconds are truncated.
func FormatElapsed(d time.Duration) string {
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	unit := "seconds"
	switch {
	case hours > 0:
		unit = "hours"
	case minutes > 0:
		unit = "minutes"
	}
	return fmt.Sprintf("Elapsed time is %d:%d:%d %s.", hours, minutes, seconds, unit)
}
