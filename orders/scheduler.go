package orders

import "time"

// Timer is a cancelable piece of scheduled work.
type Timer interface {
	Stop() bool
}

// Scheduler abstracts the clock so status-transition timing is controllable
// in tests. The production implementation delegates to the runtime timers.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

// NewScheduler returns the wall-clock Scheduler.
func NewScheduler() Scheduler { return realScheduler{} }

func (realScheduler) Now() time.Time { return time.Now() }

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
