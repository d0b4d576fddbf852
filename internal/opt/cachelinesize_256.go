//go:build synchrony_cachelinesize_256

package opt

// CacheLineSize_ is fixed by the synchrony_cachelinesize_256 build tag.
const CacheLineSize_ uintptr = 256
