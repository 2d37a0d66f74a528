package ripple_test

import (
	"log"
	"testing"

	"github.com/kettleby/ripple"
	"github.com/stretchr/testify/assert"
)

// basic usage walkthrough
func TestBasicUsage(t *testing.T) {
	rs := ripple.CreateReactiveSystem(func(from any, err error) {
		assert.FailNow(t, err.Error())
	})
	count := ripple.NewSignal(rs, 1)
	doubleCount := ripple.NewComputed(rs, func(oldValue int) (int, error) {
		return count.Value() * 2, nil
	})

	stopEffect := ripple.Effect(rs, func() error {
		log.Printf("Count is: %d", count.Value())
		return nil
	})
	defer stopEffect()

	assert.Equal(t, 2, doubleCount.Value())
	count.Set(2)
	assert.Equal(t, 4, doubleCount.Value())
}

// watcher walkthrough: transitions, batching and scoped teardown
func TestWatchUsage(t *testing.T) {
	rs := ripple.CreateReactiveSystem(func(from any, err error) {
		assert.FailNow(t, err.Error())
	})
	todos := ripple.NewMap[string, bool](rs)
	todos.Set("write docs", false)

	openCount := ripple.NewComputed(rs, func(oldValue int) (int, error) {
		open := 0
		todos.Range(func(name string, done bool) bool {
			if !done {
				open++
			}
			return true
		})
		return open, nil
	})

	var transitions [][2]int
	scope := ripple.NewScope(rs, false)
	scope.Run(func() error {
		ripple.WatchValue[int](rs, openCount, func(newValue, oldValue int, onCleanup func(func())) error {
			transitions = append(transitions, [2]int{oldValue, newValue})
			return nil
		})
		return nil
	})

	rs.Batch(func() {
		todos.Set("ship release", false)
		todos.Set("fix flaky test", false)
	})
	todos.Set("write docs", true)

	assert.Equal(t, [][2]int{{1, 3}, {3, 2}}, transitions)

	scope.Stop()
	todos.Set("ship release", true)
	assert.Equal(t, [][2]int{{1, 3}, {3, 2}}, transitions)
}
