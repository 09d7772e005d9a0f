package clockface

import "time"

// TimeSample is wall-clock time decomposed into fractional clock units.
type TimeSample struct {
	Seconds float64 // [0, 60)
	Minutes float64 // [0, 60), includes Seconds/60
	Hours   float64 // [0, 12), includes Minutes/60
}

// Sample decomposes t in its own location. Millisecond precision.
func Sample(t time.Time) TimeSample {
	hour, minute, sec := t.Clock()
	seconds := float64(sec) + float64(t.Nanosecond()/int(time.Millisecond))/1000
	minutes := float64(minute) + seconds/60
	hours := float64(hour%12) + minutes/60
	return TimeSample{Seconds: seconds, Minutes: minutes, Hours: hours}
}

// Clock is the wall-time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads host-local time.
type SystemClock struct{}

// Now returns time.Now() in the local time zone.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
