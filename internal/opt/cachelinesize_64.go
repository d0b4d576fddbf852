//go:build synchrony_cachelinesize_64

package opt

// CacheLineSize_ is fixed by the synchrony_cachelinesize_64 build tag.
const CacheLineSize_ uintptr = 64
