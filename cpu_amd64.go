//go:build amd64 && !purego

package fft

import "golang.org/x/sys/cpu"

// hasSIMDSupport reports whether the host can run the AVX2+FMA kernels and
// split-radix path (spec section 4.6). Grounded in gopus's
// celt/kissfft32_opt_amd64.go and internal/celt/imdct_amd64.go, both of which
// gate their AVX2 code paths on this exact pair of cpu.X86 feature bits.
func hasSIMDSupport() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA3
}
