package synchrony

// WakerSlot holds at most one Waker for a pending operation.
//
// Take is the single point where ownership of the stored Waker changes
// hands: it swaps the slot to empty, so concurrent Wake calls fire a stored
// Waker exactly once.
//
// A Wake that runs before Register has stored a Waker does not fire it. The
// registering side must therefore re-check its condition after Register,
// and the waking side must make the condition true before calling Wake.
//
// The zero value is an empty slot.
type WakerSlot[F Flavor] struct {
	waker Pointer[F, Waker]
}

// NewWakerSlot creates an empty slot.
func NewWakerSlot[F Flavor]() *WakerSlot[F] {
	return &WakerSlot[F]{}
}

// Register stores w, replacing any previously stored Waker unless that one
// already resumes the same task. Registering nil is a no-op.
func (s *WakerSlot[F]) Register(w *Waker) {
	if w == nil {
		return
	}
	for {
		old := s.waker.Load()
		if old != nil && old.WillWake(w) {
			return
		}
		if s.waker.CompareAndSwap(old, w) {
			return
		}
	}
}

// Take removes and returns the stored Waker, or nil if the slot is empty.
func (s *WakerSlot[F]) Take() *Waker {
	return s.waker.Swap(nil)
}

// Wake takes the stored Waker, if any, and wakes it.
func (s *WakerSlot[F]) Wake() {
	if w := s.Take(); w != nil {
		w.Wake()
	}
}
