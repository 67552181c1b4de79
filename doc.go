// Package fft computes the Discrete Fourier Transform of power-of-two length
// complex sequences using split-radix decomposition.
//
// # Basic usage
//
//	half := fft.NewButterfly4(fft.Forward)
//	quarter := fft.NewButterfly2(fft.Forward)
//	sr, err := fft.NewSplitRadix(8, fft.Forward, half, quarter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scratch := make([]complex64, sr.InplaceScratchLen())
//	sr.ProcessInPlace(buf, scratch)
//
// Call New to get the fastest transform available on the host for a given
// length and direction; it builds a SIMD-backed split-radix tree when the
// host has AVX2+FMA and falls back to the scalar tree otherwise.
//
// # Precision
//
// Transform32 operates on []complex64, Transform64 on []complex128. The two
// are separate interfaces, not a generic one, because the SIMD lane widths
// and scalar arithmetic genuinely differ per precision.
//
// # Thread safety
//
// A Transform32/Transform64 is immutable once constructed and is safe for
// concurrent use by multiple goroutines, provided each call's buffer and
// scratch slices are not shared across concurrent calls.
//
// # Reference
//
// Ported from the split-radix and AVX mixed-radix algorithms in RustFFT
// (github.com/ejmahler/RustFFT), src/algorithm/split_radix.rs.
package fft
