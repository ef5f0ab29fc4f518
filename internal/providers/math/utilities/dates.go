package utilities

import (
	"iter"
	gomath "math"
	"time"

	"github.com/GriffinCanCode/mathcompat/internal/providers/math/common"
)

const (
	secondsPerDay = 24 * 60 * 60

	// unixOrdinal is the proleptic Gregorian ordinal of 1970-01-01,
	// counting 0001-01-01 as day 1.
	unixOrdinal = 719163

	// serialOffset shifts an ordinal onto the serial day numbering where
	// 0000-01-01 is day 1.
	serialOffset = 366
)

// Datenum returns the serial day number of the calendar date of t, taken
// in t's own location. The time of day is ignored.
func Datenum(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix()/secondsPerDay) + unixOrdinal + serialOffset
}

// DatenumYMD returns the serial day number of the given calendar date.
// Dates that do not exist (February 30) and years outside 1..9999 fail.
func DatenumYMD(year int, month time.Month, day int) (int, error) {
	if year < 1 || year > 9999 {
		return 0, common.InvalidArgument("year %d out of range [1, 9999]", year)
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return 0, common.InvalidArgument("%04d-%02d-%02d is not a calendar date", year, int(month), day)
	}
	return Datenum(t), nil
}

// FromDatenum converts a serial day number back to midnight UTC
func FromDatenum(serial int) time.Time {
	days := int64(serial - serialOffset - unixOrdinal)
	return time.Unix(days*secondsPerDay, 0).UTC()
}

// DateRange yields start, start+step, ... for every instant strictly before
// end. The sequence is recomputed on each pass.
func DateRange(start, end time.Time, step time.Duration) (iter.Seq[time.Time], error) {
	if step <= 0 {
		return nil, common.InvalidArgument("step %s must be positive", step)
	}

	return func(yield func(time.Time) bool) {
		for cur := start; cur.Before(end); cur = cur.Add(step) {
			if !yield(cur) {
				return
			}
		}
	}, nil
}

// Step builds a duration from day and time components, rounded to the
// nearest nanosecond.
func Step(days, hours, minutes, seconds float64) time.Duration {
	total := days*secondsPerDay + hours*3600 + minutes*60 + seconds
	return time.Duration(gomath.Round(total * float64(time.Second)))
}
