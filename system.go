package ripple

// ReactiveSystem owns all ambient state of one reactive world: the
// dependency store, the currently tracking subscriber, the ambient scope,
// the batch depth and the flush queue. Systems are independent; cells and
// subscribers never cross between them.
//
// The system is single-threaded cooperative. Every track and trigger runs
// on the caller's stack; the only deferral point is the queue flush.
type ReactiveSystem struct {
	store        depStore
	queue        *Queue
	batchDepth   int
	triggerDepth int

	activeSub   *Subscriber
	activeScope *Scope
	pauseStack  []*Subscriber

	onError OnErrorFunc
}

func CreateReactiveSystem(onError OnErrorFunc) *ReactiveSystem {
	rs := &ReactiveSystem{
		store:   depStore{},
		onError: onError,
	}
	rs.queue = newQueue(rs)
	return rs
}

// Queue returns the system's flush queue, for subscribers and watchers
// that opt into deferred scheduling and for hosts installing a custom
// flush strategy.
func (rs *ReactiveSystem) Queue() *Queue {
	return rs.queue
}

func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

func (rs *ReactiveSystem) EndBatch() {
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.queue.kick()
	}
}

// Batch coalesces every trigger inside cb into a single flush pass at the
// end of the outermost batch. A subscriber notified by several writes in
// the same batch runs once.
func (rs *ReactiveSystem) Batch(cb func()) {
	rs.StartBatch()
	defer rs.EndBatch()
	cb()
}

// PauseTracking suspends dependency recording until ResumeTracking.
// Pairs nest.
func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.activeSub)
	rs.activeSub = nil
}

func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	rs.activeSub = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untrack runs cb with dependency recording suspended. Reads inside cb do
// not subscribe the current subscriber.
func (rs *ReactiveSystem) Untrack(cb func()) {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	cb()
}

// swapActiveSub installs sub as the tracking subscriber and returns the
// previous one. Callers must restore the previous subscriber via defer so
// a failing run cannot leave the context pointing at a dead subscriber.
func (rs *ReactiveSystem) swapActiveSub(sub *Subscriber) *Subscriber {
	prev := rs.activeSub
	rs.activeSub = sub
	return prev
}

func (rs *ReactiveSystem) restoreActiveSub(prev *Subscriber) {
	rs.activeSub = prev
}

func (rs *ReactiveSystem) reportError(from any, err error) {
	if rs.onError == nil {
		panic(err)
	}
	rs.onError(from, err)
}

// adopt hands ownership of item to the ambient scope, if any.
func (rs *ReactiveSystem) adopt(item interface{ Stop() }) {
	if rs.activeScope != nil {
		rs.activeScope.own(item)
	}
}
