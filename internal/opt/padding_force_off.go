//go:build synchrony_disable_padding

package opt

// PaddingMult_ is 0: padding is force-disabled via the
// synchrony_disable_padding build tag.
// Use: go build -tags=synchrony_disable_padding
const PaddingMult_ = 0
