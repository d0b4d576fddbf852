//go:build synchrony_cachelinesize_128

package opt

// CacheLineSize_ is fixed by the synchrony_cachelinesize_128 build tag.
const CacheLineSize_ uintptr = 128
