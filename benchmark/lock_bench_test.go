package benchmark

import (
	"context"
	"sync"
	"testing"

	"github.com/llxisdsh/synchrony"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/semaphore"
)

// -------------------------
// Two-owner handoff
// -------------------------

// locker is the shape every lock under comparison is adapted to.
type locker interface {
	Lock()
	Unlock()
}

type biLockAdapter struct {
	h *synchrony.BiLock[synchrony.Sync, int]
	g *synchrony.BiLockGuard[synchrony.Sync, int]
}

func (a *biLockAdapter) Lock() {
	a.g = a.h.Lock().Wait()
	*a.g.Get()++
}

func (a *biLockAdapter) Unlock() { a.g.Release() }

type mutexAdapter struct {
	m *synchrony.Mutex[synchrony.Sync, int]
	g *synchrony.MutexGuard[synchrony.Sync, int]
}

func (a *mutexAdapter) Lock() {
	a.g = a.m.Lock()
	*a.g.Get()++
}

func (a *mutexAdapter) Unlock() { a.g.Unlock() }

type weightedAdapter struct{ s *semaphore.Weighted }

func (a weightedAdapter) Lock()   { _ = a.s.Acquire(context.Background(), 1) }
func (a weightedAdapter) Unlock() { a.s.Release(1) }

// runPair splits b.N lock/unlock cycles between two goroutines, one per
// owner.
func runPair(b *testing.B, x, y locker) {
	b.ReportAllocs()
	var wg sync.WaitGroup
	wg.Add(2)
	for i, l := range []locker{x, y} {
		n := b.N / 2
		if i == 0 {
			n += b.N % 2
		}
		go func() {
			defer wg.Done()
			for range n {
				l.Lock()
				l.Unlock()
			}
		}()
	}
	wg.Wait()
}

func BenchmarkPairBiLock(b *testing.B) {
	x, y := synchrony.NewBiLock[synchrony.Sync](0)
	runPair(b, &biLockAdapter{h: x}, &biLockAdapter{h: y})
}

func BenchmarkPairMutex(b *testing.B) {
	m := synchrony.NewMutex[synchrony.Sync](0)
	runPair(b, &mutexAdapter{m: m}, &mutexAdapter{m: m})
}

func BenchmarkPairSyncMutex(b *testing.B) {
	var mu sync.Mutex
	runPair(b, &mu, &mu)
}

func BenchmarkPairRBMutex(b *testing.B) {
	mu := xsync.NewRBMutex()
	runPair(b, mu, mu)
}

func BenchmarkPairWeighted(b *testing.B) {
	s := semaphore.NewWeighted(1)
	runPair(b, weightedAdapter{s}, weightedAdapter{s})
}

// -------------------------
// Uncontended acquire
// -------------------------

func BenchmarkUncontendedBiLock_Sync(b *testing.B) {
	benchUncontendedBiLock[synchrony.Sync](b)
}

func BenchmarkUncontendedBiLock_Unsync(b *testing.B) {
	benchUncontendedBiLock[synchrony.Unsync](b)
}

func benchUncontendedBiLock[F synchrony.Flavor](b *testing.B) {
	b.ReportAllocs()
	x, _ := synchrony.NewBiLock[F](0)
	for b.Loop() {
		g, _ := x.TryLock()
		*g.Get()++
		g.Release()
	}
}

func BenchmarkUncontendedMutex_Sync(b *testing.B) {
	benchUncontendedMutex[synchrony.Sync](b)
}

func BenchmarkUncontendedMutex_Unsync(b *testing.B) {
	benchUncontendedMutex[synchrony.Unsync](b)
}

func benchUncontendedMutex[F synchrony.Flavor](b *testing.B) {
	b.ReportAllocs()
	m := synchrony.NewMutex[F](0)
	for b.Loop() {
		g := m.Lock()
		*g.Get()++
		g.Unlock()
	}
}
