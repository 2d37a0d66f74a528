package ripple

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// maxFlushPasses bounds how many times a single flush may loop over work
// enqueued by the jobs it just ran. Hitting the bound means jobs keep
// re-triggering each other and is reported as a fatal configuration error.
const maxFlushPasses = 100

// Queue coalesces subscriber dispatch. A subscriber enqueued any number of
// times within one batch runs once per flush, in creation order (ancestors
// were created before the subscribers nested under them).
type Queue struct {
	rs       *ReactiveSystem
	pending  mapset.Set[*Subscriber]
	flushing bool

	// scheduleFlush defers the flush to a host-chosen turn boundary
	// (frame tick, event loop, test hook). When nil the queue flushes
	// synchronously as soon as the triggering write or outermost batch
	// completes.
	scheduleFlush func(flush func())
	flushArmed    bool
}

func newQueue(rs *ReactiveSystem) *Queue {
	return &Queue{
		rs:      rs,
		pending: mapset.NewThreadUnsafeSet[*Subscriber](),
	}
}

// SetFlushStrategy installs a deferred flush trigger. The callback is
// invoked at most once per pending flush and must eventually call flush.
// Passing nil restores synchronous flushing.
func (q *Queue) SetFlushStrategy(schedule func(flush func())) {
	q.scheduleFlush = schedule
}

// Enqueue adds a job to the pending set. Duplicate enqueues of the same
// job within one batch are collapsed.
func (q *Queue) Enqueue(sub *Subscriber) {
	q.pending.Add(sub)
}

// kick runs or arms the flush, depending on the installed strategy.
// Called whenever a trigger or batch end leaves the system at depth zero.
func (q *Queue) kick() {
	if q.scheduleFlush == nil {
		q.Flush()
		return
	}
	if !q.flushArmed && !q.flushing {
		q.flushArmed = true
		q.scheduleFlush(q.Flush)
	}
}

// Flush drains the pending set. Each pass takes a stable snapshot sorted
// by subscriber ID, clears the set and runs every job; jobs enqueued by
// those runs are drained by the next pass of the same flush. Job errors
// are reported individually and never abort the flush. Re-entrant calls
// return immediately: the outer flush picks the new work up.
func (q *Queue) Flush() {
	q.flushArmed = false
	if q.flushing {
		return
	}
	q.flushing = true
	defer func() { q.flushing = false }()

	for pass := 0; q.pending.Cardinality() > 0; pass++ {
		if pass == maxFlushPasses {
			q.pending.Clear()
			q.rs.reportError(q, ErrFlushOverflow)
			return
		}

		jobs := q.pending.ToSlice()
		q.pending.Clear()
		slices.SortFunc(jobs, func(a, b *Subscriber) int {
			return cmp.Compare(a.id, b.id)
		})
		for _, job := range jobs {
			job.Run()
		}
	}
}
