// Package mt fixes every primitive of package synchrony to the thread-safe
// Sync flavor.
//
// Code that wants to choose at build time imports this package under a
// local name and swaps it for package st:
//
//	import sync "github.com/llxisdsh/synchrony/mt"
//	// or
//	import sync "github.com/llxisdsh/synchrony/st"
package mt

import (
	"github.com/llxisdsh/synchrony"
)

// Flavor is the flavor every type in this package is instantiated with.
type Flavor = synchrony.Sync

type (
	Flag                 = synchrony.Flag[Flavor]
	WakerSlot            = synchrony.WakerSlot[Flavor]
	Shared[T any]        = synchrony.Shared[Flavor, T]
	BiLock[T any]        = synchrony.BiLock[Flavor, T]
	BiLockAcquire[T any] = synchrony.BiLockAcquire[Flavor, T]
	BiLockGuard[T any]   = synchrony.BiLockGuard[Flavor, T]
	Mutex[T any]         = synchrony.Mutex[Flavor, T]
	MutexGuard[T any]    = synchrony.MutexGuard[Flavor, T]
	Event                = synchrony.Event[Flavor]
	EventListener        = synchrony.EventListener[Flavor]
)

// Atomic family.
type (
	Bool           = synchrony.Bool[Flavor]
	Int32          = synchrony.Int32[Flavor]
	Uint32         = synchrony.Uint32[Flavor]
	Int64          = synchrony.Int64[Flavor]
	Uint64         = synchrony.Uint64[Flavor]
	Pointer[T any] = synchrony.Pointer[Flavor, T]
)

// NewFlag creates a flag holding initial.
func NewFlag(initial bool) *Flag {
	return synchrony.NewFlag[Flavor](initial)
}

// NewWakerSlot creates an empty slot.
func NewWakerSlot() *WakerSlot {
	return synchrony.NewWakerSlot[Flavor]()
}

// NewShared allocates a cell holding v and returns its first handle.
func NewShared[T any](v T) *Shared[T] {
	return synchrony.NewShared[Flavor](v)
}

// NewSharedFunc is like NewShared with a release hook.
func NewSharedFunc[T any](v T, release func(T)) *Shared[T] {
	return synchrony.NewSharedFunc[Flavor](v, release)
}

// NewBiLock wraps data in a lock and returns its two handles.
func NewBiLock[T any](data T) (*BiLock[T], *BiLock[T]) {
	return synchrony.NewBiLock[Flavor](data)
}

// NewMutex creates an unlocked Mutex holding v.
func NewMutex[T any](v T) *Mutex[T] {
	return synchrony.NewMutex[Flavor](v)
}

// NewEvent creates an Event.
func NewEvent() *Event {
	return synchrony.NewEvent[Flavor]()
}
