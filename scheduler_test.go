package ripple_test

import (
	"testing"

	"github.com/kettleby/ripple"
	"github.com/stretchr/testify/assert"
)

// mutually retriggering jobs should be cut off with ErrFlushOverflow
func TestFlushOverflowIsReported(t *testing.T) {
	var reported []error
	rs := ripple.CreateReactiveSystem(func(from any, err error) {
		reported = append(reported, err)
	})

	a := ripple.NewSignal(rs, 0)
	b := ripple.NewSignal(rs, 0)

	ripple.Effect(rs, func() error {
		b.Set(a.Value() + 1)
		return nil
	})
	ripple.Effect(rs, func() error {
		a.Set(b.Value() + 1)
		return nil
	})

	assert.Equal(t, []error{ripple.ErrFlushOverflow}, reported)

	// the system still works after the cutoff
	reported = nil
	c := ripple.NewSignal(rs, 1)
	runTimes := 0
	ripple.Effect(rs, func() error {
		runTimes++
		c.Value()
		return nil
	})
	c.Set(2)
	assert.Equal(t, 2, runTimes)
	assert.Empty(t, reported)
}

// an installed flush strategy should defer reruns until invoked
func TestFlushStrategyDefersDispatch(t *testing.T) {
	runTimes := 0
	var pendingFlush func()

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	rs.Queue().SetFlushStrategy(func(flush func()) {
		pendingFlush = flush
	})

	a := ripple.NewSignal(rs, 1)
	ripple.Effect(rs, func() error {
		runTimes++
		a.Value()
		return nil
	})
	assert.Equal(t, 1, runTimes)

	a.Set(2)
	a.Set(3)
	assert.Equal(t, 1, runTimes)
	assert.NotNil(t, pendingFlush)

	pendingFlush()
	assert.Equal(t, 2, runTimes)

	// the strategy is re-armed for the next wave of writes
	pendingFlush = nil
	a.Set(4)
	assert.NotNil(t, pendingFlush)
	pendingFlush()
	assert.Equal(t, 3, runTimes)
}

// restoring synchronous flushing should take effect immediately
func TestFlushStrategyReset(t *testing.T) {
	runTimes := 0
	var pendingFlush func()

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	rs.Queue().SetFlushStrategy(func(flush func()) {
		pendingFlush = flush
	})

	a := ripple.NewSignal(rs, 1)
	ripple.Effect(rs, func() error {
		runTimes++
		a.Value()
		return nil
	})

	a.Set(2)
	assert.Equal(t, 1, runTimes)
	pendingFlush()
	assert.Equal(t, 2, runTimes)

	rs.Queue().SetFlushStrategy(nil)
	a.Set(3)
	assert.Equal(t, 3, runTimes)
}

// jobs enqueued by a running job should drain in the same flush
func TestFlushDrainsFollowOnWork(t *testing.T) {
	var seen []int

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	a := ripple.NewSignal(rs, 1)
	b := ripple.NewSignal(rs, 0)

	ripple.Effect(rs, func() error {
		b.Set(a.Value() * 10)
		return nil
	})
	ripple.Effect(rs, func() error {
		seen = append(seen, b.Value())
		return nil
	})

	assert.Equal(t, []int{10}, seen)
	a.Set(2)
	assert.Equal(t, []int{10, 20}, seen)
}
