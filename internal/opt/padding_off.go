//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !synchrony_disable_padding && !synchrony_enable_padding

package opt

// PaddingMult_ multiplies every padding array in the module.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PaddingMult_ = 0
