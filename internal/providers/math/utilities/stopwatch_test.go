package utilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatch(t *testing.T) {
	clock := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := &Stopwatch{now: func() time.Time { return clock }}

	s.Tic()
	clock = clock.Add(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, s.Toc())

	clock = clock.Add(time.Second)
	assert.Equal(t, 2500*time.Millisecond, s.Toc())

	s.Tic()
	assert.Zero(t, s.Toc())
}

func TestNewStopwatchRunning(t *testing.T) {
	s := NewStopwatch()
	assert.GreaterOrEqual(t, s.Toc(), time.Duration(0))
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "Elapsed time is 0:0:0 seconds."},
		{2700 * time.Millisecond, "Elapsed time is 0:0:2 seconds."},
		{65 * time.Second, "Elapsed time is 0:1:5 minutes."},
		{time.Hour + 2*time.Minute + 3*time.Second, "Elapsed time is 1:2:3 hours."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.d))
	}
}
