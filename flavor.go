// Package synchrony provides synchronization primitives that come in a
// thread-safe flavor (Sync) and a single-goroutine flavor (Unsync) with an
// identical API, so code written once against a Flavor type parameter is
// either safe to share or free of atomic overhead.
package synchrony

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Flavor is the capability set every primitive in this package is built on:
// word-sized cells with load/store/swap/compare-and-swap/add, a pointer cell,
// and a blocking lock.
//
// There are exactly two flavors:
//   - Sync: hardware atomics and sync.Mutex, safe across goroutines.
//   - Unsync: plain reads and writes, for values confined to one goroutine.
//
// The interface is sealed. Code is written once against a type parameter
// F Flavor and instantiated with either flavor, or with Default, which the
// synchrony_unsync build tag switches at compile time.
type Flavor interface {
	threadSafe() bool

	load32(addr *uint32) uint32
	store32(addr *uint32, val uint32)
	swap32(addr *uint32, val uint32) uint32
	cas32(addr *uint32, old, new uint32) bool
	add32(addr *uint32, delta uint32) uint32

	load64(addr *uint64) uint64
	store64(addr *uint64, val uint64)
	swap64(addr *uint64, val uint64) uint64
	cas64(addr *uint64, old, new uint64) bool
	add64(addr *uint64, delta uint64) uint64

	loadPtr(addr *unsafe.Pointer) unsafe.Pointer
	storePtr(addr *unsafe.Pointer, val unsafe.Pointer)
	swapPtr(addr *unsafe.Pointer, val unsafe.Pointer) unsafe.Pointer
	casPtr(addr *unsafe.Pointer, old, new unsafe.Pointer) bool

	lock(mu *sync.Mutex, held *bool)
	tryLock(mu *sync.Mutex, held *bool) bool
	unlock(mu *sync.Mutex, held *bool)
}

// Sync is the thread-safe flavor.
type Sync struct{}

// Unsync is the single-goroutine flavor. Every "atomic" operation is an
// ordinary read or write, and the blocking lock is a borrow bit that panics
// on re-entry instead of blocking.
type Unsync struct{}

// IsSync reports whether F is safe to share between goroutines.
func IsSync[F Flavor]() bool {
	var f F
	return f.threadSafe()
}

var (
	_ Flavor = Sync{}
	_ Flavor = Unsync{}
)

// ============================================================================
// Sync
// ============================================================================

func (Sync) threadSafe() bool { return true }

func (Sync) load32(addr *uint32) uint32             { return atomic.LoadUint32(addr) }
func (Sync) store32(addr *uint32, val uint32)       { atomic.StoreUint32(addr, val) }
func (Sync) swap32(addr *uint32, val uint32) uint32 { return atomic.SwapUint32(addr, val) }
func (Sync) cas32(addr *uint32, old, new uint32) bool {
	return atomic.CompareAndSwapUint32(addr, old, new)
}
func (Sync) add32(addr *uint32, delta uint32) uint32 { return atomic.AddUint32(addr, delta) }

func (Sync) load64(addr *uint64) uint64             { return atomic.LoadUint64(addr) }
func (Sync) store64(addr *uint64, val uint64)       { atomic.StoreUint64(addr, val) }
func (Sync) swap64(addr *uint64, val uint64) uint64 { return atomic.SwapUint64(addr, val) }
func (Sync) cas64(addr *uint64, old, new uint64) bool {
	return atomic.CompareAndSwapUint64(addr, old, new)
}
func (Sync) add64(addr *uint64, delta uint64) uint64 { return atomic.AddUint64(addr, delta) }

func (Sync) loadPtr(addr *unsafe.Pointer) unsafe.Pointer { return atomic.LoadPointer(addr) }
func (Sync) storePtr(addr *unsafe.Pointer, val unsafe.Pointer) {
	atomic.StorePointer(addr, val)
}
func (Sync) swapPtr(addr *unsafe.Pointer, val unsafe.Pointer) unsafe.Pointer {
	return atomic.SwapPointer(addr, val)
}
func (Sync) casPtr(addr *unsafe.Pointer, old, new unsafe.Pointer) bool {
	return atomic.CompareAndSwapPointer(addr, old, new)
}

func (Sync) lock(mu *sync.Mutex, _ *bool)         { mu.Lock() }
func (Sync) tryLock(mu *sync.Mutex, _ *bool) bool { return mu.TryLock() }
func (Sync) unlock(mu *sync.Mutex, _ *bool)       { mu.Unlock() }

// ============================================================================
// Unsync
// ============================================================================

func (Unsync) threadSafe() bool { return false }

func (Unsync) load32(addr *uint32) uint32       { return *addr }
func (Unsync) store32(addr *uint32, val uint32) { *addr = val }
func (Unsync) swap32(addr *uint32, val uint32) (old uint32) {
	old, *addr = *addr, val
	return
}
func (Unsync) cas32(addr *uint32, old, new uint32) bool {
	if *addr != old {
		return false
	}
	*addr = new
	return true
}
func (Unsync) add32(addr *uint32, delta uint32) uint32 {
	*addr += delta
	return *addr
}

func (Unsync) load64(addr *uint64) uint64       { return *addr }
func (Unsync) store64(addr *uint64, val uint64) { *addr = val }
func (Unsync) swap64(addr *uint64, val uint64) (old uint64) {
	old, *addr = *addr, val
	return
}
func (Unsync) cas64(addr *uint64, old, new uint64) bool {
	if *addr != old {
		return false
	}
	*addr = new
	return true
}
func (Unsync) add64(addr *uint64, delta uint64) uint64 {
	*addr += delta
	return *addr
}

func (Unsync) loadPtr(addr *unsafe.Pointer) unsafe.Pointer       { return *addr }
func (Unsync) storePtr(addr *unsafe.Pointer, val unsafe.Pointer) { *addr = val }
func (Unsync) swapPtr(addr *unsafe.Pointer, val unsafe.Pointer) (old unsafe.Pointer) {
	old, *addr = *addr, val
	return
}
func (Unsync) casPtr(addr *unsafe.Pointer, old, new unsafe.Pointer) bool {
	if *addr != old {
		return false
	}
	*addr = new
	return true
}

func (Unsync) lock(_ *sync.Mutex, held *bool) {
	if *held {
		panic("synchrony: Mutex already locked")
	}
	*held = true
}

func (Unsync) tryLock(_ *sync.Mutex, held *bool) bool {
	if *held {
		return false
	}
	*held = true
	return true
}

func (Unsync) unlock(_ *sync.Mutex, held *bool) {
	if !*held {
		panic("synchrony: unlock of unlocked Mutex")
	}
	*held = false
}
