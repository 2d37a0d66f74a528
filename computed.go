package ripple

// cellState is a derived cell's dirtiness level. stale means an upstream
// cell was invalidated but may turn out unchanged; dirty means a raw write
// definitely reached a dependency.
type cellState uint8

const (
	stateClean cellState = iota
	stateStale
	stateDirty
)

// derivedCell is the internal face one derived cell shows another: enough
// to revalidate it and to compare versions for maybe-dirty checks.
type derivedCell interface {
	revalidateAny()
	cellVersion() uint64
}

// upstreamRecord remembers a derived cell read during the latest recompute
// together with the version observed. A stale cell recomputes only if one
// of these versions moved.
type upstreamRecord struct {
	cell    derivedCell
	version uint64
}

// Computed is a lazily evaluated derived cell. Its getter runs under
// tracking on first read and again only when a dependency actually
// changed; equal recomputed values are absorbed without notifying
// dependents.
type Computed[T comparable] struct {
	rs  *ReactiveSystem
	sub *Subscriber

	getter func(oldValue T) (T, error)
	value  T

	state       cellState
	version     uint64
	initialized bool
	upstream    []upstreamRecord
}

// NewComputed registers getter as a derived cell. The getter receives the
// previous value (the zero value on first run) and is not executed until
// the cell is first read. Getter errors go to the system's error reporter
// and leave the previous value in place.
func NewComputed[T comparable](rs *ReactiveSystem, getter func(oldValue T) (T, error)) *Computed[T] {
	c := &Computed[T]{
		rs:     rs,
		getter: getter,
		state:  stateDirty,
	}
	c.sub = newSubscriber(rs, c.compute, nil)
	c.sub.notify = c.onTrigger
	c.sub.recorder = c
	rs.adopt(c)
	return c
}

// Value revalidates the cell if needed, subscribes the active subscriber
// to it, and returns the cached value.
func (c *Computed[T]) Value() T {
	c.revalidate()
	c.rs.Track(c, cellValueKey)
	if sub := c.rs.activeSub; sub != nil && sub.recorder != nil {
		sub.recorder.recordUpstream(c)
	}
	return c.value
}

// Peek returns the current value without revalidating or subscribing.
func (c *Computed[T]) Peek() T {
	return c.value
}

// Stop deactivates the cell: it drops its own dependencies and detaches
// every subscriber registered on it.
func (c *Computed[T]) Stop() {
	c.sub.Stop()
	c.rs.Release(c)
}

func (c *Computed[T]) revalidate() {
	switch c.state {
	case stateClean:
		return
	case stateDirty:
		c.recompute()
	case stateStale:
		// Settle the upstream cells first; if every one still carries the
		// version we computed against, this cell's inputs never actually
		// changed and the cached value stands.
		changed := false
		for _, rec := range c.upstream {
			rec.cell.revalidateAny()
			if rec.cell.cellVersion() != rec.version {
				changed = true
				break
			}
		}
		if changed {
			c.recompute()
		} else {
			c.state = stateClean
		}
	}
}

func (c *Computed[T]) recompute() {
	c.upstream = c.upstream[:0]
	old := c.value
	c.sub.Run()
	c.state = stateClean
	if !c.initialized || c.value != old {
		c.initialized = true
		c.version++
	}
}

// compute is the subscriber body: it runs the getter under tracking and
// installs the result. On error the previous value is kept.
func (c *Computed[T]) compute() error {
	next, err := c.getter(c.value)
	if err != nil {
		return err
	}
	c.value = next
	return nil
}

// onTrigger receives dependency notifications. A raw write makes the cell
// dirty; an upstream invalidation only makes it stale. Dependents are
// notified once, on the clean to non-clean transition; a later upgrade
// from stale to dirty stays silent because dependents are already stale.
func (c *Computed[T]) onTrigger(reason triggerReason) {
	if !c.sub.active {
		return
	}
	to := stateDirty
	if reason == reasonInvalidate {
		to = stateStale
	}
	if c.state == stateClean {
		c.state = to
		c.rs.triggerInvalidate(c, cellValueKey)
		return
	}
	if to > c.state {
		c.state = to
	}
}

func (c *Computed[T]) recordUpstream(cell derivedCell) {
	for _, rec := range c.upstream {
		if rec.cell == cell {
			return
		}
	}
	c.upstream = append(c.upstream, upstreamRecord{cell: cell, version: cell.cellVersion()})
}

func (c *Computed[T]) revalidateAny() { c.revalidate() }

func (c *Computed[T]) cellVersion() uint64 { return c.version }
