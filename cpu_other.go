//go:build !amd64 || purego

package fft

// hasSIMDSupport is always false off amd64 (or under the purego build tag):
// there is no AVX2/FMA to gate on, matching gopus's
// celt/kissfft32_opt_stub.go fallback convention.
func hasSIMDSupport() bool { return false }
