package synchrony

import (
	"github.com/llxisdsh/pb"
)

// MutexGroup allows locking on arbitrary keys (string, int, struct, etc.).
// It dynamically manages a set of Mutexes associated with values.
//
// Features:
//   - Infinite Keys: No need to pre-allocate locks.
//   - Auto-Cleanup: A key's lock is removed once it is unlocked and nobody
//     else is waiting for it.
//
// Usage:
//
//	var group MutexGroup[string]
//	group.Lock("user-123")
//	// Critical section for user-123
//	group.Unlock("user-123")
//
// MutexGroup is always thread-safe: a per-key lock table only makes sense
// across goroutines.
type MutexGroup[K comparable] struct {
	_ noCopy
	m pb.MapOf[K, *mutexGroupEntry]
}

type mutexGroupEntry struct {
	mu Mutex[Sync, struct{}]
	// guard is protected by mu.
	guard *MutexGuard[Sync, struct{}]
	// ref is only touched inside ProcessEntry.
	ref int32
}

// Lock acquires the lock for k, blocking until it is available.
func (g *MutexGroup[K]) Lock(k K) {
	e := g.ref(k)
	e.guard = e.mu.Lock()
}

// TryLock acquires the lock for k only if it is free.
func (g *MutexGroup[K]) TryLock(k K) bool {
	e := g.ref(k)
	guard, ok := e.mu.TryLock()
	if !ok {
		g.unref(k)
		return false
	}
	e.guard = guard
	return true
}

// Unlock releases the lock for k.
func (g *MutexGroup[K]) Unlock(k K) {
	e, ok := g.m.Load(k)
	if !ok || e.guard == nil {
		panic("synchrony: unlock of unlocked MutexGroup key")
	}
	guard := e.guard
	e.guard = nil
	guard.Unlock()
	g.unref(k)
}

// Len returns the number of keys currently locked or waited on.
func (g *MutexGroup[K]) Len() int {
	return g.m.Size()
}

func (g *MutexGroup[K]) ref(k K) *mutexGroupEntry {
	e, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *mutexGroupEntry]) (*pb.EntryOf[K, *mutexGroupEntry], *mutexGroupEntry, bool) {
			if l != nil {
				l.Value.ref++
				return l, l.Value, true
			}
			v := &mutexGroupEntry{ref: 1}
			return &pb.EntryOf[K, *mutexGroupEntry]{Value: v}, v, false
		},
	)
	return e
}

func (g *MutexGroup[K]) unref(k K) {
	g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *mutexGroupEntry]) (*pb.EntryOf[K, *mutexGroupEntry], *mutexGroupEntry, bool) {
			if l == nil {
				return nil, nil, false
			}
			l.Value.ref--
			if l.Value.ref <= 0 {
				return nil, nil, false
			}
			return l, l.Value, true
		},
	)
}
