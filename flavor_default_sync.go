//go:build !synchrony_unsync

package synchrony

// Default is the flavor selected at compile time. It is Sync unless the
// module is built with -tags=synchrony_unsync.
type Default = Sync

// DefaultIsSync reports whether Default is the thread-safe flavor.
const DefaultIsSync = true
