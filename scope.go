package ripple

// Scope owns a group of reactive resources and disposes them together.
// Subscribers, cells and watchers created while a scope is running are
// adopted by it; stopping the scope stops everything it owns, runs its
// cleanup callbacks and cascades into child scopes.
type Scope struct {
	rs       *ReactiveSystem
	parent   *Scope
	children []*Scope

	owned    []interface{ Stop() }
	cleanups []func()
	stopped  bool
}

// NewScope creates a scope. Unless detached, it attaches to the currently
// running scope so the parent's disposal cascades into it.
func NewScope(rs *ReactiveSystem, detached bool) *Scope {
	s := &Scope{rs: rs}
	if !detached && rs.activeScope != nil {
		s.parent = rs.activeScope
		s.parent.children = append(s.parent.children, s)
	}
	return s
}

// Run executes fn with this scope as the adoption target for everything
// created inside. The previous scope is restored afterwards, so scopes
// nest.
func (s *Scope) Run(fn func() error) error {
	if s.stopped {
		return nil
	}
	prev := s.rs.activeScope
	s.rs.activeScope = s
	defer func() { s.rs.activeScope = prev }()
	return fn()
}

// OnCleanup registers fn to run when the scope stops. Callbacks run in
// registration order, after the owned resources are stopped.
func (s *Scope) OnCleanup(fn func()) {
	if s.stopped {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// OnCleanup attaches fn to the currently running scope. Without an active
// scope there is nothing to attach to and fn runs immediately on the next
// disposal opportunity, which is now.
func OnCleanup(rs *ReactiveSystem, fn func()) {
	if rs.activeScope == nil {
		fn()
		return
	}
	rs.activeScope.OnCleanup(fn)
}

// Stop disposes the scope: owned resources first, then cleanup callbacks,
// then child scopes. Idempotent. A stopped scope never runs again and
// adopts nothing.
func (s *Scope) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true

	for _, item := range s.owned {
		item.Stop()
	}
	s.owned = nil

	for _, fn := range s.cleanups {
		fn()
	}
	s.cleanups = nil

	for _, child := range s.children {
		child.Stop()
	}
	s.children = nil

	if s.parent != nil {
		s.parent.disown(s)
		s.parent = nil
	}
}

func (s *Scope) own(item interface{ Stop() }) {
	s.owned = append(s.owned, item)
}

func (s *Scope) disown(child *Scope) {
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}
