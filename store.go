package ripple

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// depSet is the set of subscribers currently depending on one
// (container, key) pair. A set because a subscriber reading the same key
// several times in one run must still be registered once.
type depSet = mapset.Set[*Subscriber]

// depStore maps container identity and key to the subscribers depending
// on that key. Buckets are deleted as soon as they empty, so a container
// nobody watches holds no store memory.
type depStore map[any]map[any]depSet

// depEntry is one edge of a subscriber's reverse-index: enough to remove
// the subscriber from the set and to reclaim emptied buckets.
type depEntry struct {
	container any
	key       any
	// Spelled out rather than using the depSet alias: go1.21 rejects
	// aliases in recursive types (go.dev/issue/50729).
	set mapset.Set[*Subscriber]
}

// triggerReason tells a derived cell whether an incoming notification came
// from a raw write or from another cell's invalidation. Invalidations only
// make the cell maybe-dirty; raw writes make it dirty outright.
type triggerReason uint8

const (
	reasonWrite triggerReason = iota
	reasonInvalidate
)

// Track records that the active subscriber read (container, key).
// No-op when no subscriber is tracking. Idempotent within a single run.
func (rs *ReactiveSystem) Track(container any, key any) {
	sub := rs.activeSub
	if sub == nil || !sub.active {
		return
	}

	keys := rs.store[container]
	if keys == nil {
		keys = map[any]depSet{}
		rs.store[container] = keys
	}
	set := keys[key]
	if set == nil {
		set = mapset.NewThreadUnsafeSet[*Subscriber]()
		keys[key] = set
	}
	if set.Add(sub) {
		sub.deps = append(sub.deps, depEntry{container: container, key: key, set: set})
	}
}

// TrackIteration records a dependency on container's structure: the
// reserved key Trigger notifies for adds, deletes, clears and
// ChangeIterate. Hosts integrating their own containers use it for length
// and iteration reads.
func (rs *ReactiveSystem) TrackIteration(container any) {
	rs.Track(container, iterationKey)
}

// Trigger notifies every subscriber depending on (container, key) that the
// key changed. Structural kinds additionally notify subscribers of the
// iteration key; ChangeClear notifies every key of the container.
//
// The dispatch set is snapshotted before any job runs, so a job that
// resubscribes or stops itself mid-flight cannot corrupt iteration. The
// currently tracking subscriber is excluded: a computation writing a key
// it also reads must not re-invoke itself.
func (rs *ReactiveSystem) Trigger(container any, key any, kind ChangeKind) {
	rs.trigger(container, key, kind, reasonWrite)
}

// triggerInvalidate is the internal edge used by derived cells: same
// dispatch as Trigger but dependents learn the source was an invalidation,
// not a confirmed value change.
func (rs *ReactiveSystem) triggerInvalidate(container any, key any) {
	rs.trigger(container, key, ChangeUpdate, reasonInvalidate)
}

func (rs *ReactiveSystem) trigger(container any, key any, kind ChangeKind, reason triggerReason) {
	// Invalidation cascades re-enter trigger. The queue must not flush
	// until the outermost trigger finished scheduling, otherwise a job
	// could run against half-propagated state.
	rs.triggerDepth++
	defer func() {
		rs.triggerDepth--
		if rs.triggerDepth == 0 && rs.batchDepth == 0 {
			rs.queue.kick()
		}
	}()

	keys := rs.store[container]
	if keys == nil {
		return
	}

	targets := mapset.NewThreadUnsafeSet[*Subscriber]()
	collect := func(set depSet) {
		if set != nil {
			targets = targets.Union(set)
		}
	}

	switch kind {
	case ChangeClear:
		for _, set := range keys {
			collect(set)
		}
	case ChangeIterate:
		collect(keys[iterationKey])
	default:
		collect(keys[key])
		if kind == ChangeAdd || kind == ChangeDelete {
			collect(keys[iterationKey])
		}
	}
	if targets.Cardinality() == 0 {
		return
	}

	jobs := targets.ToSlice()
	slices.SortFunc(jobs, func(a, b *Subscriber) int {
		return cmp.Compare(a.id, b.id)
	})

	for _, sub := range jobs {
		if sub == rs.activeSub || !sub.active {
			continue
		}
		sub.schedule(reason)
	}
}

// Release drops every dependency set of container, detaching all
// subscribers registered on it. Hosts call it when a tracked container is
// discarded while subscribers on it are still alive; containers without
// subscribers are reclaimed automatically.
func (rs *ReactiveSystem) Release(container any) {
	keys := rs.store[container]
	if keys == nil {
		return
	}
	delete(rs.store, container)
	for key, set := range keys {
		set.Each(func(sub *Subscriber) bool {
			sub.forgetDep(container, key)
			return false
		})
	}
}

// unsubscribe removes sub from (container, key) and reclaims the bucket
// if it emptied.
func (rs *ReactiveSystem) unsubscribe(sub *Subscriber, e depEntry) {
	e.set.Remove(sub)
	if e.set.Cardinality() != 0 {
		return
	}
	keys := rs.store[e.container]
	if keys == nil {
		return
	}
	// Set values are interfaces over maps and cannot be compared for
	// identity; an empty bucket is reclaimable regardless of which set
	// instance sits there.
	if s := keys[e.key]; s != nil && s.Cardinality() == 0 {
		delete(keys, e.key)
	}
	if len(keys) == 0 {
		delete(rs.store, e.container)
	}
}
