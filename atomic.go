package synchrony

import (
	"unsafe"
)

// The atomic family forwards to the flavor: real atomics for Sync, plain
// fields for Unsync. Zero values are ready to use. A stored value persists
// until the next store; there is no other invariant.
//
// Go atomics are sequentially consistent, so unlike the memory-ordering
// parameters of some other languages' atomics, none are accepted here.

// Bool is a boolean cell.
type Bool[F Flavor] struct {
	_ noCopy
	v uint32
}

// Load returns the current value.
func (x *Bool[F]) Load() bool {
	var f F
	return f.load32(&x.v) != 0
}

// Store sets the value.
func (x *Bool[F]) Store(val bool) {
	var f F
	f.store32(&x.v, b32(val))
}

// Swap sets the value and returns the previous one.
func (x *Bool[F]) Swap(new bool) (old bool) {
	var f F
	return f.swap32(&x.v, b32(new)) != 0
}

// CompareAndSwap sets the value to new if it currently equals old.
func (x *Bool[F]) CompareAndSwap(old, new bool) (swapped bool) {
	var f F
	return f.cas32(&x.v, b32(old), b32(new))
}

// Int32 is an int32 cell.
type Int32[F Flavor] struct {
	_ noCopy
	v uint32
}

// Load returns the current value.
func (x *Int32[F]) Load() int32 {
	var f F
	return int32(f.load32(&x.v))
}

// Store sets the value.
func (x *Int32[F]) Store(val int32) {
	var f F
	f.store32(&x.v, uint32(val))
}

// Swap sets the value and returns the previous one.
func (x *Int32[F]) Swap(new int32) (old int32) {
	var f F
	return int32(f.swap32(&x.v, uint32(new)))
}

// CompareAndSwap sets the value to new if it currently equals old.
func (x *Int32[F]) CompareAndSwap(old, new int32) (swapped bool) {
	var f F
	return f.cas32(&x.v, uint32(old), uint32(new))
}

// Add adds delta and returns the new value.
func (x *Int32[F]) Add(delta int32) (new int32) {
	var f F
	return int32(f.add32(&x.v, uint32(delta)))
}

// Uint32 is a uint32 cell.
type Uint32[F Flavor] struct {
	_ noCopy
	v uint32
}

// Load returns the current value.
func (x *Uint32[F]) Load() uint32 {
	var f F
	return f.load32(&x.v)
}

// Store sets the value.
func (x *Uint32[F]) Store(val uint32) {
	var f F
	f.store32(&x.v, val)
}

// Swap sets the value and returns the previous one.
func (x *Uint32[F]) Swap(new uint32) (old uint32) {
	var f F
	return f.swap32(&x.v, new)
}

// CompareAndSwap sets the value to new if it currently equals old.
func (x *Uint32[F]) CompareAndSwap(old, new uint32) (swapped bool) {
	var f F
	return f.cas32(&x.v, old, new)
}

// Add adds delta and returns the new value.
// To subtract c, use Add(^uint32(c-1)).
func (x *Uint32[F]) Add(delta uint32) (new uint32) {
	var f F
	return f.add32(&x.v, delta)
}

// Int64 is an int64 cell.
//
// The 64-bit word is the first field so it stays 8-byte aligned on 32-bit
// platforms; keep Int64 as the first field of any struct embedding it.
type Int64[F Flavor] struct {
	_ noCopy
	v uint64
}

// Load returns the current value.
func (x *Int64[F]) Load() int64 {
	var f F
	return int64(f.load64(&x.v))
}

// Store sets the value.
func (x *Int64[F]) Store(val int64) {
	var f F
	f.store64(&x.v, uint64(val))
}

// Swap sets the value and returns the previous one.
func (x *Int64[F]) Swap(new int64) (old int64) {
	var f F
	return int64(f.swap64(&x.v, uint64(new)))
}

// CompareAndSwap sets the value to new if it currently equals old.
func (x *Int64[F]) CompareAndSwap(old, new int64) (swapped bool) {
	var f F
	return f.cas64(&x.v, uint64(old), uint64(new))
}

// Add adds delta and returns the new value.
func (x *Int64[F]) Add(delta int64) (new int64) {
	var f F
	return int64(f.add64(&x.v, uint64(delta)))
}

// Uint64 is a uint64 cell. The alignment note on Int64 applies.
type Uint64[F Flavor] struct {
	_ noCopy
	v uint64
}

// Load returns the current value.
func (x *Uint64[F]) Load() uint64 {
	var f F
	return f.load64(&x.v)
}

// Store sets the value.
func (x *Uint64[F]) Store(val uint64) {
	var f F
	f.store64(&x.v, val)
}

// Swap sets the value and returns the previous one.
func (x *Uint64[F]) Swap(new uint64) (old uint64) {
	var f F
	return f.swap64(&x.v, new)
}

// CompareAndSwap sets the value to new if it currently equals old.
func (x *Uint64[F]) CompareAndSwap(old, new uint64) (swapped bool) {
	var f F
	return f.cas64(&x.v, old, new)
}

// Add adds delta and returns the new value.
func (x *Uint64[F]) Add(delta uint64) (new uint64) {
	var f F
	return f.add64(&x.v, delta)
}

// Pointer is a *T cell.
type Pointer[F Flavor, T any] struct {
	_ noCopy
	v unsafe.Pointer
}

// Load returns the current value.
func (x *Pointer[F, T]) Load() *T {
	var f F
	return (*T)(f.loadPtr(&x.v))
}

// Store sets the value.
func (x *Pointer[F, T]) Store(val *T) {
	var f F
	f.storePtr(&x.v, unsafe.Pointer(val))
}

// Swap sets the value and returns the previous one.
func (x *Pointer[F, T]) Swap(new *T) (old *T) {
	var f F
	return (*T)(f.swapPtr(&x.v, unsafe.Pointer(new)))
}

// CompareAndSwap sets the value to new if it currently equals old.
func (x *Pointer[F, T]) CompareAndSwap(old, new *T) (swapped bool) {
	var f F
	return f.casPtr(&x.v, unsafe.Pointer(old), unsafe.Pointer(new))
}
