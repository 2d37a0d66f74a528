package ripple

// Signal is a single writable reactive value. Reads subscribe the active
// subscriber; writes of an unequal value notify every dependent.
type Signal[T comparable] struct {
	rs    *ReactiveSystem
	value T
}

func NewSignal[T comparable](rs *ReactiveSystem, initial T) *Signal[T] {
	return &Signal[T]{rs: rs, value: initial}
}

// Value returns the current value and registers a dependency on it.
func (s *Signal[T]) Value() T {
	s.rs.Track(s, cellValueKey)
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set installs a new value. Writing a value equal to the current one is a
// no-op and notifies nobody.
func (s *Signal[T]) Set(value T) {
	if value == s.value {
		return
	}
	s.value = value
	s.rs.Trigger(s, cellValueKey, ChangeUpdate)
}

// Update applies fn to the current value and stores the result.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}
