package synchrony

// Shared is a handle to a reference-counted cell. Every handle produced by
// Clone aliases the one value created by NewShared; the value is released
// exactly once, when the last handle is dropped or unwrapped.
//
// A handle is owned by whoever holds it: Drop and a successful TryUnwrap
// consume it, and any further use of a consumed handle panics. Under Sync
// distinct handles of one cell may be cloned and dropped concurrently.
type Shared[F Flavor, T any] struct {
	cell *sharedCell[F, T]
}

type sharedCell[F Flavor, T any] struct {
	// count must stay the first field, see Int64.
	count   Int64[F]
	value   T
	release func(T)
}

// NewShared allocates a cell holding v and returns its first handle.
func NewShared[F Flavor, T any](v T) *Shared[F, T] {
	return NewSharedFunc[F](v, nil)
}

// NewSharedFunc is like NewShared, and additionally calls release with the
// value when the last handle is dropped. release is not called when the
// value is reclaimed through TryUnwrap.
func NewSharedFunc[F Flavor, T any](v T, release func(T)) *Shared[F, T] {
	c := &sharedCell[F, T]{value: v, release: release}
	c.count.Store(1)
	return &Shared[F, T]{cell: c}
}

func (s *Shared[F, T]) live() *sharedCell[F, T] {
	c := s.cell
	if c == nil {
		panic("synchrony: use of consumed Shared handle")
	}
	return c
}

// Clone returns a new handle to the same cell.
func (s *Shared[F, T]) Clone() *Shared[F, T] {
	c := s.live()
	c.count.Add(1)
	return &Shared[F, T]{cell: c}
}

// PtrEq reports whether s and other are handles to the same cell. Equal
// values in distinct cells are not the same cell.
func (s *Shared[F, T]) PtrEq(other *Shared[F, T]) bool {
	return s.live() == other.live()
}

// Get returns a pointer to the shared value. Shared gives no exclusion;
// callers coordinate access to the value themselves.
func (s *Shared[F, T]) Get() *T {
	return &s.live().value
}

// Count returns the number of live handles.
func (s *Shared[F, T]) Count() int64 {
	return s.live().count.Load()
}

// TryUnwrap returns the value if s is the only live handle, consuming s.
// Otherwise it returns false and s is left untouched.
func (s *Shared[F, T]) TryUnwrap() (T, bool) {
	c := s.live()
	if !c.count.CompareAndSwap(1, 0) {
		var zero T
		return zero, false
	}
	s.cell = nil
	v := c.value
	var zero T
	c.value = zero
	return v, true
}

// Drop consumes s. Dropping the last handle releases the value.
func (s *Shared[F, T]) Drop() {
	c := s.live()
	s.cell = nil
	switch n := c.count.Add(-1); {
	case n == 0:
		c.free()
	case n < 0:
		panic("synchrony: Shared count underflow")
	}
}

func (c *sharedCell[F, T]) free() {
	v := c.value
	var zero T
	c.value = zero
	if c.release != nil {
		c.release(v)
	}
}
