//go:build !synchrony_cachelinesize_32 && !synchrony_cachelinesize_64 && !synchrony_cachelinesize_128 && !synchrony_cachelinesize_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is used in structure padding to keep the lock bit of a
// BiLock away from its waiter slot and payload.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
