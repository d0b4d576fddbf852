//go:build synchrony_unsync

package synchrony

// Default is Unsync: the module was built with -tags=synchrony_unsync.
type Default = Unsync

// DefaultIsSync reports whether Default is the thread-safe flavor.
const DefaultIsSync = false
