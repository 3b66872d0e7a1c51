package framework

import (
	"errors"
	"fmt"
	"time"
)

const defaultPollInterval = time.Millisecond * 100

// ErrTimeout is wrapped by every timeout failure from Waiter.Until.
var ErrTimeout = errors.New("timed out")

// Clock abstracts time for the Waiter so polling logic can be tested without
// real sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock returns a Clock backed by the real time package.
func SystemClock() Clock { return systemClock{} }

// Waiter repeatedly evaluates a condition until it holds or a timeout
// elapses. It exists because the page under test updates asynchronously after
// user actions; a single read would race with the render cycle.
type Waiter struct {
	Timeout  time.Duration
	Interval time.Duration // zero means a default of 100ms
	Clock    Clock         // nil means the system clock
}

// Until polls cond until it returns true. The condition is always evaluated
// at least once, even with a zero timeout. A non-nil error from cond aborts
// the wait immediately; otherwise, if the timeout elapses first, the returned
// error wraps ErrTimeout and includes the description of what was awaited.
func (w Waiter) Until(description string, cond func() (bool, error)) error {
	clock := w.Clock
	if clock == nil {
		clock = systemClock{}
	}
	interval := w.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	deadline := clock.Now().Add(w.Timeout)
	for {
		ok, err := cond()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !clock.Now().Before(deadline) {
			return fmt.Errorf("%w after %s waiting for %s", ErrTimeout, w.Timeout, description)
		}
		clock.Sleep(interval)
	}
}
