package synchrony

import (
	"sync"
)

// Mutex is a blocking lock around a value.
//
// Under Sync it is a sync.Mutex: Lock blocks the calling goroutine until the
// lock is free. Under Unsync there is nobody to wait for, so Lock on a held
// Mutex panics, like a second mutable borrow.
//
// The zero value is an unlocked Mutex holding the zero T.
type Mutex[F Flavor, T any] struct {
	mu   sync.Mutex
	held bool
	data T
}

// NewMutex creates an unlocked Mutex holding v.
func NewMutex[F Flavor, T any](v T) *Mutex[F, T] {
	return &Mutex[F, T]{data: v}
}

// Lock acquires the lock.
func (m *Mutex[F, T]) Lock() *MutexGuard[F, T] {
	var f F
	f.lock(&m.mu, &m.held)
	return &MutexGuard[F, T]{m: m}
}

// TryLock acquires the lock only if it is free.
func (m *Mutex[F, T]) TryLock() (*MutexGuard[F, T], bool) {
	var f F
	if !f.tryLock(&m.mu, &m.held) {
		return nil, false
	}
	return &MutexGuard[F, T]{m: m}, true
}

// IntoInner returns the value. The Mutex must not be used afterwards.
func (m *Mutex[F, T]) IntoInner() T {
	return m.data
}

// MutexGuard grants access to the value of a Mutex until Unlock.
type MutexGuard[F Flavor, T any] struct {
	m *Mutex[F, T]
}

// Get returns the protected value. The pointer must not be used after
// Unlock.
func (g *MutexGuard[F, T]) Get() *T {
	if g.m == nil {
		panic("synchrony: use of unlocked MutexGuard")
	}
	return &g.m.data
}

// Unlock releases the lock.
func (g *MutexGuard[F, T]) Unlock() {
	m := g.m
	if m == nil {
		panic("synchrony: unlock of unlocked Mutex")
	}
	g.m = nil
	var f F
	f.unlock(&m.mu, &m.held)
}
