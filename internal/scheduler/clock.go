package scheduler

import "time"

// Clock abstracts time so the daily loop can run without real sleeping
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock uses the local wall clock
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// NextRun returns the next occurrence of hour:minute in now's location.
// If that time has already passed today (or is exactly now), tomorrow's occurrence is returned.
func NextRun(now time.Time, hour, minute int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !now.Before(target) {
		// time.Date normalizes day overflow across month and year ends
		target = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return target
}
