package ripple

// Map is a reactive map with per-key dependency granularity. Reading a key
// subscribes to that key only; Len and Range subscribe to the map's
// structure and re-run on add, delete and clear but not on in-place
// updates.
type Map[K comparable, V any] struct {
	rs      *ReactiveSystem
	entries map[K]V
}

func NewMap[K comparable, V any](rs *ReactiveSystem) *Map[K, V] {
	return &Map[K, V]{rs: rs, entries: map[K]V{}}
}

// Get returns the value for key and subscribes the active subscriber to
// that key. Tracking happens whether or not the key is present, so a
// subscriber that saw a miss re-runs when the key is added.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.rs.Track(m, key)
	v, ok := m.entries[key]
	return v, ok
}

// Set writes key. A new key is a structural add and additionally notifies
// iteration subscribers; overwriting an existing key notifies only that
// key's subscribers.
func (m *Map[K, V]) Set(key K, value V) {
	kind := ChangeUpdate
	if _, ok := m.entries[key]; !ok {
		kind = ChangeAdd
	}
	m.entries[key] = value
	m.rs.Trigger(m, key, kind)
}

// Delete removes key if present.
func (m *Map[K, V]) Delete(key K) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	m.rs.Trigger(m, key, ChangeDelete)
}

// Clear removes every entry and notifies every subscriber of the map.
func (m *Map[K, V]) Clear() {
	if len(m.entries) == 0 {
		return
	}
	m.entries = map[K]V{}
	m.rs.Trigger(m, nil, ChangeClear)
}

// Len subscribes to the map's structure and returns the entry count.
func (m *Map[K, V]) Len() int {
	m.rs.Track(m, iterationKey)
	return len(m.entries)
}

// Range calls fn for every entry until fn returns false. Iteration reads
// each value, so it subscribes to the visited keys as well as the map's
// structure; an in-place update of any visited entry re-runs the reader.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.rs.Track(m, iterationKey)
	for k, v := range m.entries {
		m.rs.Track(m, k)
		if !fn(k, v) {
			return
		}
	}
}

// Release drops every dependency registered on the map. Call it when the
// map is discarded while subscribers on it are still alive.
func (m *Map[K, V]) Release() {
	m.rs.Release(m)
}

// TrackEntries subscribes to the structure and to every key, and hands
// each value to visit so nested containers are traversed.
func (m *Map[K, V]) TrackEntries(visit func(value any)) {
	m.rs.Track(m, iterationKey)
	for k, v := range m.entries {
		m.rs.Track(m, k)
		visit(v)
	}
}

// List is a reactive slice with per-index dependency granularity.
type List[V any] struct {
	rs    *ReactiveSystem
	items []V
}

func NewList[V any](rs *ReactiveSystem) *List[V] {
	return &List[V]{rs: rs}
}

// At returns the element at index and subscribes to it. Out-of-range
// reads still track the index, so a subscriber re-runs once the list
// grows to cover it.
func (l *List[V]) At(index int) (V, bool) {
	l.rs.Track(l, index)
	if index < 0 || index >= len(l.items) {
		var zero V
		return zero, false
	}
	return l.items[index], true
}

// Append adds value at the end, notifying subscribers of the new index
// and of the list's structure.
func (l *List[V]) Append(value V) {
	l.items = append(l.items, value)
	l.rs.Trigger(l, len(l.items)-1, ChangeAdd)
}

// SetAt overwrites the element at index. Out-of-range writes are ignored.
func (l *List[V]) SetAt(index int, value V) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items[index] = value
	l.rs.Trigger(l, index, ChangeUpdate)
}

// RemoveAt deletes the element at index. Every index at or after it holds
// a new value, so all of them are notified alongside the structural
// delete; the notifications coalesce into one flush.
func (l *List[V]) RemoveAt(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	last := len(l.items) - 1
	l.items = append(l.items[:index], l.items[index+1:]...)

	l.rs.Batch(func() {
		for i := index; i < last; i++ {
			l.rs.Trigger(l, i, ChangeUpdate)
		}
		l.rs.Trigger(l, last, ChangeDelete)
	})
}

// Clear removes every element and notifies every subscriber of the list.
func (l *List[V]) Clear() {
	if len(l.items) == 0 {
		return
	}
	l.items = nil
	l.rs.Trigger(l, nil, ChangeClear)
}

// Len subscribes to the list's structure and returns the element count.
func (l *List[V]) Len() int {
	l.rs.Track(l, iterationKey)
	return len(l.items)
}

// Range calls fn for every element until fn returns false, subscribing to
// each visited index as well as the list's structure.
func (l *List[V]) Range(fn func(index int, value V) bool) {
	l.rs.Track(l, iterationKey)
	for i, v := range l.items {
		l.rs.Track(l, i)
		if !fn(i, v) {
			return
		}
	}
}

// Release drops every dependency registered on the list.
func (l *List[V]) Release() {
	l.rs.Release(l)
}

// TrackEntries subscribes to the structure and to every index, and hands
// each value to visit so nested containers are traversed.
func (l *List[V]) TrackEntries(visit func(value any)) {
	l.rs.Track(l, iterationKey)
	for i, v := range l.items {
		l.rs.Track(l, i)
		visit(v)
	}
}
