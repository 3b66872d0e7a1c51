package framework

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when Sleep is called, so Waiter tests run with no
// real delays.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
}

func TestWaiterReturnsImmediatelyWhenConditionAlreadyHolds(t *testing.T) {
	clock := &fakeClock{}
	w := Waiter{Timeout: time.Second, Interval: time.Millisecond * 10, Clock: clock}

	calls := 0
	err := w.Until("anything", func() (bool, error) {
		calls++
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, clock.sleeps)
}

func TestWaiterPollsUntilConditionHolds(t *testing.T) {
	clock := &fakeClock{}
	w := Waiter{Timeout: time.Second, Interval: time.Millisecond * 100, Clock: clock}

	calls := 0
	err := w.Until("third time lucky", func() (bool, error) {
		calls++
		return calls == 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, clock.sleeps, 2)
}

func TestWaiterTimesOutAfterFullTimeout(t *testing.T) {
	clock := &fakeClock{}
	w := Waiter{Timeout: time.Second, Interval: time.Millisecond * 250, Clock: clock}

	err := w.Until("a condition that never holds", func() (bool, error) {
		return false, nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, err.Error(), "a condition that never holds")
	// the deadline must have been reached before giving up
	assert.False(t, clock.now.Before(time.Time{}.Add(time.Second)))
}

func TestWaiterEvaluatesConditionAtLeastOnceWithZeroTimeout(t *testing.T) {
	clock := &fakeClock{}
	w := Waiter{Timeout: 0, Clock: clock}

	calls := 0
	err := w.Until("zero timeout", func() (bool, error) {
		calls++
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWaiterStopsOnConditionError(t *testing.T) {
	clock := &fakeClock{}
	w := Waiter{Timeout: time.Second, Clock: clock}

	fatal := errors.New("element disappeared")
	err := w.Until("doomed", func() (bool, error) {
		return false, fatal
	})

	require.Error(t, err)
	assert.Equal(t, fatal, err)
	assert.False(t, errors.Is(err, ErrTimeout))
}
