package synchrony

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/llxisdsh/synchrony/internal/opt"
)

// BiLock is an asynchronous lock shared by exactly two handles.
//
// NewBiLock returns the pair. Either handle may Lock; when the other handle
// holds the guard the acquisition registers its Waker and stays pending
// instead of blocking, and the guard's Release wakes it. Join reunites the
// pair and hands back the value.
//
// Each handle must have at most one acquisition in flight: the lock keeps
// a single waiter slot, which is enough only for two cooperating owners.
//
// Usage:
//
//	a, b := NewBiLock[Sync](0)
//	g := a.Lock().Wait()
//	*g.Get() = 5
//	g.Release()
//	g = b.Lock().Wait() // observes 5
type BiLock[F Flavor, T any] struct {
	inner *Shared[F, *biLockInner[F, T]]
}

type biLockInner[F Flavor, T any] struct {
	// locked stays set for good once the pair is joined.
	locked Flag[F]
	_      [(opt.CacheLineSize_ - unsafe.Sizeof(uint32(0))%opt.CacheLineSize_) % opt.CacheLineSize_ * opt.PaddingMult_]byte
	joined Flag[F]
	waiter WakerSlot[F]
	data   T
}

// NewBiLock wraps data in a lock and returns its two handles.
func NewBiLock[F Flavor, T any](data T) (*BiLock[F, T], *BiLock[F, T]) {
	inner := NewShared[F](&biLockInner[F, T]{data: data})
	return &BiLock[F, T]{inner: inner.Clone()}, &BiLock[F, T]{inner: inner}
}

func (b *BiLock[F, T]) shared() *Shared[F, *biLockInner[F, T]] {
	if b.inner == nil {
		panic("synchrony: use of joined BiLock")
	}
	return b.inner
}

func (b *BiLock[F, T]) in() *biLockInner[F, T] {
	return *b.shared().Get()
}

// Lock returns an acquisition of the lock. Poll it, or pass it to Await.
func (b *BiLock[F, T]) Lock() *BiLockAcquire[F, T] {
	return &BiLockAcquire[F, T]{inner: b.in()}
}

// TryLock acquires the lock only if it is free, without registering a
// Waker.
func (b *BiLock[F, T]) TryLock() (*BiLockGuard[F, T], bool) {
	in := b.in()
	if in.locked.Swap(true) {
		return nil, false
	}
	return &BiLockGuard[F, T]{inner: in}, true
}

// IsLocked reports whether a guard is currently outstanding.
func (b *BiLock[F, T]) IsLocked() bool {
	return b.in().locked.Get()
}

// String implements fmt.Stringer.
func (b *BiLock[F, T]) String() string {
	if b.inner == nil {
		return "BiLock{joined}"
	}
	return fmt.Sprintf("BiLock{locked: %t}", b.IsLocked())
}

// TryJoin consumes both handles and returns the value if they came from the
// same NewBiLock call. For unrelated handles it returns false and consumes
// nothing.
//
// TryJoin panics if the pair is still locked, if b is joined with itself,
// or if a third handle to the lock exists. An acquisition still pending
// when the pair is joined panics on its next poll.
func (b *BiLock[F, T]) TryJoin(other *BiLock[F, T]) (T, bool) {
	if b == other {
		panic("synchrony: BiLock joined with itself")
	}
	s := b.shared()
	if !s.PtrEq(other.shared()) {
		var zero T
		return zero, false
	}
	in := *s.Get()
	if in.locked.Swap(true) {
		panic("synchrony: BiLock joined while locked")
	}
	in.joined.Swap(true)
	in.waiter.Wake()
	other.inner.Drop()
	other.inner = nil
	if _, ok := s.TryUnwrap(); !ok {
		panic("synchrony: BiLock is still shared")
	}
	b.inner = nil
	v := in.data
	var zero T
	in.data = zero
	return v, true
}

// Join is like TryJoin but panics when the handles are unrelated.
func (b *BiLock[F, T]) Join(other *BiLock[F, T]) T {
	v, ok := b.TryJoin(other)
	if !ok {
		panicUnrelated()
	}
	return v
}

//go:noinline
func panicUnrelated() {
	panic("synchrony: unrelated BiLock passed to BiLock.Join")
}

// BiLockAcquire is a pending acquisition of a BiLock. It implements
// Future[*BiLockGuard[F, T]].
type BiLockAcquire[F Flavor, T any] struct {
	inner *biLockInner[F, T]
}

// Poll tries to take the lock. If the other handle holds it, w is
// registered to be woken by the holder's Release and Poll reports pending.
func (a *BiLockAcquire[F, T]) Poll(w *Waker) (*BiLockGuard[F, T], bool) {
	in := a.inner
	if !in.locked.Swap(true) {
		return &BiLockGuard[F, T]{inner: in}, true
	}
	in.waiter.Register(w)
	// The holder may have released between the swap and the registration,
	// finding the slot empty. Retry once now that w is visible to it.
	if !in.locked.Swap(true) {
		return &BiLockGuard[F, T]{inner: in}, true
	}
	if in.joined.Get() {
		panic("synchrony: use of joined BiLock")
	}
	return nil, false
}

// Wait blocks the calling goroutine until the lock is acquired.
func (a *BiLockAcquire[F, T]) Wait() *BiLockGuard[F, T] {
	return Await[*BiLockGuard[F, T]](a)
}

// WaitContext is like Wait but gives up when ctx is done.
func (a *BiLockAcquire[F, T]) WaitContext(ctx context.Context) (*BiLockGuard[F, T], error) {
	return AwaitContext[*BiLockGuard[F, T]](ctx, a)
}

// BiLockGuard grants exclusive access to the value of a BiLock until
// Release.
type BiLockGuard[F Flavor, T any] struct {
	inner *biLockInner[F, T]
}

func (g *BiLockGuard[F, T]) held() *biLockInner[F, T] {
	if g.inner == nil {
		panic("synchrony: use of released BiLockGuard")
	}
	return g.inner
}

// Get returns the protected value. The pointer must not be used after
// Release.
func (g *BiLockGuard[F, T]) Get() *T {
	return &g.held().data
}

// Release unlocks the BiLock and wakes the other handle if it is waiting.
func (g *BiLockGuard[F, T]) Release() {
	in := g.held()
	g.inner = nil
	// Clear before waking: a waiter woken first would find the lock
	// still held and park again with nobody left to wake it.
	in.locked.Swap(false)
	in.waiter.Wake()
}
