package ripple

// SchedulerFunc is a custom dispatch strategy for a subscriber. When set,
// a trigger hands the subscriber to the callback instead of running it;
// the callback decides when (and whether) to call Run.
type SchedulerFunc func(*Subscriber)

// Subscriber is the executable unit of the engine: a function whose reads
// are re-tracked on every run and which is re-dispatched whenever one of
// those reads is written.
type Subscriber struct {
	rs *ReactiveSystem
	id uint64

	fn    func() error
	sched SchedulerFunc

	// notify overrides all dispatch for cell-internal subscribers; it
	// receives the trigger reason so derived cells can distinguish raw
	// writes from upstream invalidations.
	notify func(triggerReason)

	// recorder, when set, is told about every derived cell read during a
	// run. Derived cells use it to remember their upstream cells for
	// maybe-dirty revalidation.
	recorder upstreamRecorder

	// deps is the reverse-index: every dependency set this subscriber
	// joined during its latest run.
	deps   []depEntry
	active bool
}

type upstreamRecorder interface {
	recordUpstream(cell derivedCell)
}

// NewSubscriber registers fn as a reactive computation and runs it once to
// establish its dependencies. scheduler may be nil, in which case triggers
// run the subscriber synchronously (coalesced through the flush queue when
// batching). The subscriber is owned by the ambient scope, if any.
func NewSubscriber(rs *ReactiveSystem, fn func() error, scheduler SchedulerFunc) *Subscriber {
	s := newSubscriber(rs, fn, scheduler)
	rs.adopt(s)
	s.Run()
	return s
}

// Effect is the common case: a subscriber with default scheduling whose
// handle is just a stop function.
func Effect(rs *ReactiveSystem, fn func() error) (stop func()) {
	s := NewSubscriber(rs, fn, nil)
	return s.Stop
}

// newSubscriber builds a subscriber without adopting or running it.
// Derived cells and watchers wire their own lifecycle around it.
func newSubscriber(rs *ReactiveSystem, fn func() error, scheduler SchedulerFunc) *Subscriber {
	return &Subscriber{
		rs:     rs,
		id:     nextID(),
		fn:     fn,
		sched:  scheduler,
		active: true,
	}
}

func (s *Subscriber) ID() uint64 {
	return s.id
}

// Run executes the subscriber's function under tracking. Stale
// dependencies from the previous run are dropped first, so a branch no
// longer taken cannot cause a spurious future re-run. The previous
// tracking subscriber is restored even when fn fails.
func (s *Subscriber) Run() {
	if !s.active {
		return
	}
	s.clearDeps()

	prev := s.rs.swapActiveSub(s)
	defer s.rs.restoreActiveSub(prev)

	if err := s.fn(); err != nil {
		s.rs.reportError(s, err)
	}
}

// Stop permanently deactivates the subscriber and removes it from every
// dependency set. Idempotent; a stopped subscriber never runs again.
func (s *Subscriber) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.clearDeps()
}

func (s *Subscriber) schedule(reason triggerReason) {
	switch {
	case s.notify != nil:
		s.notify(reason)
	case s.sched != nil:
		s.sched(s)
	default:
		s.rs.queue.Enqueue(s)
	}
}

func (s *Subscriber) clearDeps() {
	for _, e := range s.deps {
		s.rs.unsubscribe(s, e)
	}
	s.deps = s.deps[:0]
}

// forgetDep drops one reverse-index entry without touching the store,
// used when the store side was already discarded by Release.
func (s *Subscriber) forgetDep(container any, key any) {
	for i, e := range s.deps {
		if e.container == container && e.key == key {
			s.deps = append(s.deps[:i], s.deps[i+1:]...)
			return
		}
	}
}
