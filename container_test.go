package ripple_test

import (
	"testing"

	"github.com/kettleby/ripple"
	"github.com/stretchr/testify/assert"
)

// a key reader should only rerun for writes to that key
func TestMapPerKeyGranularity(t *testing.T) {
	runTimes := 0

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	m := ripple.NewMap[string, int](rs)
	m.Set("a", 1)
	m.Set("b", 1)

	ripple.Effect(rs, func() error {
		runTimes++
		m.Get("a")
		return nil
	})

	assert.Equal(t, 1, runTimes)
	m.Set("b", 2)
	assert.Equal(t, 1, runTimes)
	m.Set("a", 2)
	assert.Equal(t, 2, runTimes)
}

// a miss should still subscribe, so the add is observed
func TestMapTracksMissingKey(t *testing.T) {
	var seen []int

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	m := ripple.NewMap[string, int](rs)

	ripple.Effect(rs, func() error {
		v, _ := m.Get("pending")
		seen = append(seen, v)
		return nil
	})

	m.Set("pending", 42)
	assert.Equal(t, []int{0, 42}, seen)
}

// iteration readers should rerun on structural changes, not updates
func TestMapIterationGranularity(t *testing.T) {
	lenRunTimes := 0

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	m := ripple.NewMap[string, int](rs)
	m.Set("a", 1)

	ripple.Effect(rs, func() error {
		lenRunTimes++
		m.Len()
		return nil
	})

	assert.Equal(t, 1, lenRunTimes)
	m.Set("a", 2)
	assert.Equal(t, 1, lenRunTimes)
	m.Set("b", 1)
	assert.Equal(t, 2, lenRunTimes)
	m.Delete("a")
	assert.Equal(t, 3, lenRunTimes)
	m.Delete("missing")
	assert.Equal(t, 3, lenRunTimes)
}

// Clear should notify every subscriber of the container
func TestMapClearNotifiesAllKeys(t *testing.T) {
	aRunTimes, lenRunTimes := 0, 0

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	m := ripple.NewMap[string, int](rs)
	m.Set("a", 1)

	ripple.Effect(rs, func() error {
		aRunTimes++
		m.Get("a")
		return nil
	})
	ripple.Effect(rs, func() error {
		lenRunTimes++
		m.Len()
		return nil
	})

	m.Clear()
	assert.Equal(t, 2, aRunTimes)
	assert.Equal(t, 2, lenRunTimes)

	m.Clear()
	assert.Equal(t, 2, aRunTimes)
	assert.Equal(t, 2, lenRunTimes)
}

// Range should observe adds, deletes and updates of visited entries
func TestMapRange(t *testing.T) {
	var sums []int

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	m := ripple.NewMap[string, int](rs)
	m.Set("a", 1)
	m.Set("b", 2)

	ripple.Effect(rs, func() error {
		sum := 0
		m.Range(func(key string, value int) bool {
			sum += value
			return true
		})
		sums = append(sums, sum)
		return nil
	})

	m.Set("c", 4)
	assert.Equal(t, []int{3, 7}, sums)
	m.Set("a", 2)
	assert.Equal(t, []int{3, 7, 8}, sums)
}

// Release should detach live subscribers from a discarded container
func TestMapRelease(t *testing.T) {
	runTimes := 0

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	m := ripple.NewMap[string, int](rs)
	m.Set("a", 1)
	other := ripple.NewSignal(rs, 1)

	ripple.Effect(rs, func() error {
		runTimes++
		m.Get("a")
		other.Value()
		return nil
	})

	m.Release()
	m.Set("a", 2)
	assert.Equal(t, 1, runTimes)

	other.Set(2)
	assert.Equal(t, 2, runTimes)
}

// index readers should only rerun for writes to that index
func TestListPerIndexGranularity(t *testing.T) {
	runTimes := 0

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	l := ripple.NewList[int](rs)
	l.Append(10)
	l.Append(20)

	ripple.Effect(rs, func() error {
		runTimes++
		l.At(0)
		return nil
	})

	l.SetAt(1, 21)
	assert.Equal(t, 1, runTimes)
	l.SetAt(0, 11)
	assert.Equal(t, 2, runTimes)
}

// length readers should observe appends and removals
func TestListIterationGranularity(t *testing.T) {
	var lengths []int

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	l := ripple.NewList[int](rs)
	l.Append(1)

	ripple.Effect(rs, func() error {
		lengths = append(lengths, l.Len())
		return nil
	})

	l.Append(2)
	l.SetAt(0, 9)
	l.RemoveAt(0)
	assert.Equal(t, []int{1, 2, 1}, lengths)
}

// removal should renotify the shifted indexes in one flush
func TestListRemoveAtShiftsIndexes(t *testing.T) {
	var seen []int
	runTimes := 0

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	l := ripple.NewList[int](rs)
	l.Append(1)
	l.Append(2)
	l.Append(3)

	ripple.Effect(rs, func() error {
		runTimes++
		v, _ := l.At(1)
		seen = append(seen, v)
		return nil
	})

	l.RemoveAt(0)
	assert.Equal(t, 2, runTimes)
	assert.Equal(t, []int{2, 3}, seen)
}

// an out of range read should resolve once the list grows to cover it
func TestListTracksOutOfRangeIndex(t *testing.T) {
	var seen []int

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	l := ripple.NewList[int](rs)

	ripple.Effect(rs, func() error {
		v, _ := l.At(0)
		seen = append(seen, v)
		return nil
	})

	l.Append(5)
	assert.Equal(t, []int{0, 5}, seen)
}

// signal updates should go through the transform
func TestSignalUpdate(t *testing.T) {
	var seen []int

	rs := ripple.CreateReactiveSystem(failingReporter(t))
	a := ripple.NewSignal(rs, 1)

	ripple.Effect(rs, func() error {
		seen = append(seen, a.Value())
		return nil
	})

	a.Update(func(v int) int { return v * 10 })
	a.Update(func(v int) int { return v })
	assert.Equal(t, []int{1, 10}, seen)
}
