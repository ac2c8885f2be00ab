package session

import "time"

// Clock creates the timers that drive ticks.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

// Timer is the subset of *time.Timer a session needs.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// RealClock is backed by the time package.
var RealClock Clock = realClock{}

type realClock struct{}

func (realClock) NewTimer(d time.Duration) Timer {
	return realTimer{time.NewTimer(d)}
}

type realTimer struct{ t *time.Timer }

func (r realTimer) C() <-chan time.Time { return r.t.C }

func (r realTimer) Stop() bool {
	if !r.t.Stop() {
		// Drain a fire that raced the stop so it can't be read later.
		select {
		case <-r.t.C:
		default:
		}
		return false
	}
	return true
}
