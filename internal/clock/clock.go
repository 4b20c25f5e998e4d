// Package clock abstracts the scheduling primitives the timer depends on so
// tests can drive time deterministically.
package clock

import "time"

// Clock schedules callbacks and reports the current time.
//
//go:generate mockgen -source=clock.go -destination=../timer/mock_clock_test.go -package=timer
type Clock interface {
	// AfterFunc waits for d to elapse and then calls f in its own goroutine.
	// The returned Timer cancels the call.
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the Timer from firing. It returns false if the call
	// already fired or was already stopped.
	Stop() bool
}

// RealClock implements Clock with the time package.
type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return &realTimer{timer: time.AfterFunc(d, f)}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type realTimer struct {
	timer *time.Timer
}

func (t *realTimer) Stop() bool {
	return t.timer.Stop()
}
