//go:build synchrony_cachelinesize_32

package opt

// CacheLineSize_ is fixed by the synchrony_cachelinesize_32 build tag.
const CacheLineSize_ uintptr = 32
