package ripple

// WatchCallback receives the new and previous value of the watched source.
// onCleanup registers functions that run before the next invocation and
// when the watcher stops, in registration order.
type WatchCallback[T any] func(newValue, oldValue T, onCleanup func(func())) error

// WatchOption configures a watcher at construction.
type WatchOption[T any] func(*Watcher[T])

// Immediate fires the callback once at construction with the initial value
// as newValue and the zero value as oldValue.
func Immediate[T any]() WatchOption[T] {
	return func(w *Watcher[T]) { w.immediate = true }
}

// Deep additionally subscribes the watcher to mutations inside any
// DeepTrackable reachable from the watched value.
func Deep[T any]() WatchOption[T] {
	return func(w *Watcher[T]) { w.deep = true }
}

// Once stops the watcher after the first delivered callback.
func Once[T any]() WatchOption[T] {
	return func(w *Watcher[T]) { w.once = true }
}

// Compare replaces the equality used to suppress redundant deliveries.
// The callback fires only when eq reports the values unequal.
func Compare[T any](eq func(a, b T) bool) WatchOption[T] {
	return func(w *Watcher[T]) { w.compare = eq }
}

// AlwaysNotify delivers every trigger, even when the watched value compares
// equal to the previous one.
func AlwaysNotify[T any]() WatchOption[T] {
	return func(w *Watcher[T]) { w.compare = nil }
}

// Watcher re-evaluates a getter whenever its dependencies change and
// delivers (new, old) pairs to a callback. The callback itself runs
// untracked, so its reads never become dependencies.
type Watcher[T any] struct {
	rs  *ReactiveSystem
	sub *Subscriber

	getter func() T
	cb     WatchCallback[T]

	old      T
	cleanups []func()

	compare   func(a, b T) bool
	immediate bool
	deep      bool
	once      bool
	primed    bool
}

// Watch evaluates getter under tracking and re-runs it on every dependency
// change, invoking cb when the value actually changed. Returns a stop
// function; the watcher is also owned by the ambient scope, if any.
//
// Callback errors go to the system's error reporter and leave oldValue
// unadvanced, so the next delivery repeats the transition.
func Watch[T comparable](rs *ReactiveSystem, getter func() T, cb WatchCallback[T], opts ...WatchOption[T]) (stop func()) {
	w := &Watcher[T]{
		rs:      rs,
		getter:  getter,
		cb:      cb,
		compare: func(a, b T) bool { return a == b },
	}
	for _, opt := range opts {
		opt(w)
	}
	w.sub = newSubscriber(rs, w.step, nil)
	rs.adopt(w)
	w.sub.Run()
	return w.Stop
}

// WatchValue watches a readable cell.
func WatchValue[T comparable](rs *ReactiveSystem, cell Readable[T], cb WatchCallback[T], opts ...WatchOption[T]) (stop func()) {
	return Watch(rs, cell.Value, cb, opts...)
}

// Stop deactivates the watcher and runs any outstanding cleanups.
func (w *Watcher[T]) Stop() {
	if !w.sub.active {
		return
	}
	w.sub.Stop()
	w.runCleanups()
}

// step is the subscriber body. The first run establishes dependencies and
// the baseline value; later runs re-read, suppress unchanged values and
// deliver the rest.
func (w *Watcher[T]) step() error {
	value := w.getter()
	if w.deep {
		deepTrack(w.rs, value)
	}

	if !w.primed {
		w.primed = true
		w.old = value
		if w.immediate {
			var zero T
			return w.deliver(value, zero)
		}
		return nil
	}

	if w.compare != nil && w.compare(value, w.old) {
		return nil
	}
	return w.deliver(value, w.old)
}

func (w *Watcher[T]) deliver(newValue, oldValue T) error {
	w.runCleanups()
	onCleanup := func(fn func()) {
		w.cleanups = append(w.cleanups, fn)
	}

	w.rs.PauseTracking()
	defer w.rs.ResumeTracking()
	if err := w.cb(newValue, oldValue, onCleanup); err != nil {
		return err
	}

	w.old = newValue
	if w.once {
		w.Stop()
	}
	return nil
}

func (w *Watcher[T]) runCleanups() {
	cleanups := w.cleanups
	w.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

// StoreCallback is invoked when any tracked entry of a watched container
// changes. onCleanup behaves as in WatchCallback.
type StoreCallback func(onCleanup func(func())) error

// WatchStore subscribes to a container's structure and to every entry,
// including entries of nested containers, and invokes cb on any mutation.
func WatchStore(rs *ReactiveSystem, store DeepTrackable, cb StoreCallback) (stop func()) {
	w := &storeWatcher{rs: rs, store: store, cb: cb}
	w.sub = newSubscriber(rs, w.step, nil)
	rs.adopt(w)
	w.sub.Run()
	return w.Stop
}

type storeWatcher struct {
	rs    *ReactiveSystem
	sub   *Subscriber
	store DeepTrackable
	cb    StoreCallback

	cleanups []func()
	primed   bool
}

func (w *storeWatcher) step() error {
	deepTrack(w.rs, w.store)

	if !w.primed {
		w.primed = true
		return nil
	}

	cleanups := w.cleanups
	w.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
	onCleanup := func(fn func()) {
		w.cleanups = append(w.cleanups, fn)
	}

	w.rs.PauseTracking()
	defer w.rs.ResumeTracking()
	return w.cb(onCleanup)
}

func (w *storeWatcher) Stop() {
	if !w.sub.active {
		return
	}
	w.sub.Stop()
	cleanups := w.cleanups
	w.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

// deepTrack walks value and registers entry dependencies on every
// DeepTrackable it reaches. The seen set terminates cyclic structures.
func deepTrack(rs *ReactiveSystem, value any) {
	seen := map[DeepTrackable]struct{}{}
	var visit func(v any)
	visit = func(v any) {
		dt, ok := v.(DeepTrackable)
		if !ok {
			return
		}
		if _, dup := seen[dt]; dup {
			return
		}
		seen[dt] = struct{}{}
		dt.TrackEntries(visit)
	}
	visit(value)
}
