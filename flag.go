package synchrony

// Flag is a boolean cell with swap and flip operations.
//
// Under Sync every transition is atomic, and a goroutine that observes a new
// value through Get, Swap or Flip also observes every write the setter made
// before setting it. Under Unsync the same operations are plain reads and
// writes.
//
// The zero value is a false flag.
type Flag[F Flavor] struct {
	v Bool[F]
}

// NewFlag creates a flag holding initial.
func NewFlag[F Flavor](initial bool) *Flag[F] {
	f := &Flag[F]{}
	f.v.Store(initial)
	return f
}

// Get returns the current value.
func (f *Flag[F]) Get() bool {
	return f.v.Load()
}

// Swap stores val and returns the previous value.
func (f *Flag[F]) Swap(val bool) bool {
	return f.v.Swap(val)
}

// Flip inverts the flag and returns the value it installed.
//
// Concurrent flips never collapse: each one that returns has moved the flag
// from the value it last observed to its negation, so the values returned
// by a sequence of completed flips strictly alternate.
func (f *Flag[F]) Flip() bool {
	cur := f.v.Load()
	for {
		if f.v.CompareAndSwap(cur, !cur) {
			return !cur
		}
		// Lost the race; retry from the winner's value.
		cur = f.v.Load()
	}
}
