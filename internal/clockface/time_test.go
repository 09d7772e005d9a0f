package clockface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	tests := []struct {
		name                   string
		at                     time.Time
		seconds, minutes, hour float64
	}{
		{
			name:    "midnight",
			at:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			seconds: 0, minutes: 0, hour: 0,
		},
		{
			name:    "noon wraps to zero",
			at:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			seconds: 0, minutes: 0, hour: 0,
		},
		{
			name:    "three o'clock",
			at:      time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
			seconds: 0, minutes: 0, hour: 3,
		},
		{
			name:    "fractions carry",
			at:      time.Date(2024, 5, 1, 9, 30, 30, 500*int(time.Millisecond), time.UTC),
			seconds: 30.5, minutes: 30 + 30.5/60, hour: 9 + (30+30.5/60)/60,
		},
		{
			name:    "sub-millisecond is truncated",
			at:      time.Date(2024, 5, 1, 1, 2, 3, 999_999, time.UTC),
			seconds: 3, minutes: 2 + 3.0/60, hour: 1 + (2+3.0/60)/60,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Sample(tc.at)
			assert.InDelta(t, tc.seconds, s.Seconds, 1e-9)
			assert.InDelta(t, tc.minutes, s.Minutes, 1e-9)
			assert.InDelta(t, tc.hour, s.Hours, 1e-9)
		})
	}
}

func TestSampleUsesTimeLocation(t *testing.T) {
	utc := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	plus2 := utc.In(time.FixedZone("UTC+2", 2*60*60))

	assert.InDelta(t, 10.0, Sample(utc).Hours, 1e-9)
	assert.InDelta(t, 0.0, Sample(plus2).Hours, 1e-9, "12:00 local is the top of the dial")
}

func TestSampleRanges(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24*60; i += 7 {
		s := Sample(start.Add(time.Duration(i)*time.Minute + 59*time.Second + 999*time.Millisecond))
		assert.GreaterOrEqual(t, s.Seconds, 0.0)
		assert.Less(t, s.Seconds, 60.0)
		assert.Less(t, s.Minutes, 60.0)
		assert.Less(t, s.Hours, 12.0)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, at, FixedClock(at).Now())

	var _ Clock = SystemClock{}
}
