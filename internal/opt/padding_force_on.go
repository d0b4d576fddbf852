//go:build synchrony_enable_padding

package opt

// PaddingMult_ is 1: padding is force-enabled via the
// synchrony_enable_padding build tag.
// Use: go build -tags=synchrony_enable_padding
const PaddingMult_ = 1
