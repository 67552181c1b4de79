//go:build amd64 && !purego

package fft

// Fixed-size kernels for N in {8, 16, 32, 64}, spec section 4.4, AVX2+FMA
// gated. kernel8 and kernel16 are genuine vectorized leaves built from the
// vec8 primitives in simdops_amd64.go, ported from the Mixed-Radix
// factorizations in original_source/src/algorithm/split_radix.rs
// (lines 605-1117):
//
//   - kernel8 (MixedRadixAvx4x2 in the Rust source) is computed here as a
//     radix-2 DIF step (s = x[0:4]+x[4:8], d = (x[0:4]-x[4:8])*W8^i)
//     feeding two 4-point DFTs. The Rust source instead runs a single
//     butterfly8_avx_f32! using _mm256_permute2f128_ps to cross lanes
//     between two registers — a trick this module cannot reproduce without
//     hand-written assembly (see DESIGN.md's "No hand-written assembly").
//     The radix-2-DIF form computes the identical length-8 DFT
//     (X[2k] = DFT4(x[n]+x[n+4])[k], X[2k+1] = DFT4((x[n]-x[n+4])W8^n)[k])
//     using only the lane-local butterfly4Core32 this package already
//     trusts, so it is used here instead.
//   - kernel16 (MixedRadixAvx4x4) is column_butterfly4 -> per-row twiddle
//     multiply -> transpose_4x4 -> column_butterfly4, which needs no
//     lane-crossing trick at all: columnButterfly4 is exactly
//     butterfly4Core32 applied independently per lane (same mid0/mid2/
//     mid1/mid3 shape, same rotate90 twiddle), so this is a direct,
//     unsimplified port.
//
// kernel32 (MixedRadixAvx4x8) and kernel64 (MixedRadixAvx8x8) in the Rust
// source extend the same shape across 8 "rows" (2 vec8 registers per radix-4
// leg) purely for register-pressure reasons the source itself comments on;
// algebraically they compute the same split-radix recombination as
// NewSplitRadixSIMD over the same half/quarter leaves. Rather than re-derive
// and hand-verify a second lane-crossing register schedule with no
// toolchain to check it against, this module builds kernel32/kernel64 by
// composing the vectorized recombination (NewSplitRadixSIMD, itself a
// direct port of perform_fft_f32 — see splitradix_simd_amd64.go) over the
// vectorized kernel16/kernel8 leaves: every stage involved is still
// genuinely vectorized, just assembled from the two building blocks already
// ported exactly rather than unrolled a third and fourth time.

type kernel8_32 struct {
	dir Direction
	tw  vec8 // [1, W8^1, W8^2, W8^3]
}

// NewKernel8 returns the length-8 fixed-size kernel.
func NewKernel8(dir Direction) (Transform32, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	var tw vec8
	setLaneVec8(&tw, 0, 1)
	for k := 1; k < 4; k++ {
		setLaneVec8(&tw, k, Twiddle32(k, 8, dir))
	}
	return kernel8_32{dir: dir, tw: tw}, nil
}

func (k kernel8_32) Len() int                { return 8 }
func (k kernel8_32) Direction() Direction    { return k.dir }
func (k kernel8_32) InplaceScratchLen() int  { return 0 }
func (k kernel8_32) OutOfPlaceScratchLen() int { return 0 }

func (k kernel8_32) transform(input, output []complex64) {
	x := loadVec8(input, 0)
	y := loadVec8(input, 4)
	s := addVec8(x, y)
	dPre := subVec8(x, y)
	d := complexMultiply(k.tw, dPre)

	S0, S1, S2, S3 := butterfly4Core32(laneVec8(s, 0), laneVec8(s, 1), laneVec8(s, 2), laneVec8(s, 3), k.dir)
	D0, D1, D2, D3 := butterfly4Core32(laneVec8(d, 0), laneVec8(d, 1), laneVec8(d, 2), laneVec8(d, 3), k.dir)

	output[0], output[2], output[4], output[6] = S0, S1, S2, S3
	output[1], output[3], output[5], output[7] = D0, D1, D2, D3
}

func (k kernel8_32) ProcessInPlace(buf, scratch []complex64) error {
	if err := checkLen("Kernel8.ProcessInPlace", len(buf), 8); err != nil {
		return err
	}
	var tmp [8]complex64
	copy(tmp[:], buf)
	k.transform(tmp[:], buf)
	return nil
}

func (k kernel8_32) ProcessOutOfPlace(input, output, scratch []complex64) error {
	if err := checkLen("Kernel8.ProcessOutOfPlace", len(input), 8); err != nil {
		return err
	}
	if err := checkLen("Kernel8.ProcessOutOfPlace", len(output), 8); err != nil {
		return err
	}
	k.transform(input, output)
	return nil
}

func (k kernel8_32) ProcessInPlaceBatch(buf, scratch []complex64) error {
	if err := checkBatch("Kernel8.ProcessInPlaceBatch", len(buf), 8); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += 8 {
		if err := k.ProcessInPlace(buf[off:off+8], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (k kernel8_32) ProcessOutOfPlaceBatch(input, output, scratch []complex64) error {
	if err := checkBatch("Kernel8.ProcessOutOfPlaceBatch", len(input), 8); err != nil {
		return err
	}
	if err := checkLen("Kernel8.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += 8 {
		if err := k.ProcessOutOfPlace(input[off:off+8], output[off:off+8], scratch); err != nil {
			return err
		}
	}
	return nil
}

type kernel16_32 struct {
	dir          Direction
	tw1, tw2, tw3 vec8
}

// NewKernel16 returns the length-16 fixed-size kernel.
func NewKernel16(dir Direction) (Transform32, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	build := func(k1 int) vec8 {
		var v vec8
		for n2 := 0; n2 < 4; n2++ {
			setLaneVec8(&v, n2, Twiddle32(n2*k1, 16, dir))
		}
		return v
	}
	return kernel16_32{dir: dir, tw1: build(1), tw2: build(2), tw3: build(3)}, nil
}

func (k kernel16_32) Len() int                { return 16 }
func (k kernel16_32) Direction() Direction    { return k.dir }
func (k kernel16_32) InplaceScratchLen() int  { return 0 }
func (k kernel16_32) OutOfPlaceScratchLen() int { return 0 }

func (k kernel16_32) transform(input, output []complex64) {
	row0 := loadVec8(input, 0)
	row1 := loadVec8(input, 4)
	row2 := loadVec8(input, 8)
	row3 := loadVec8(input, 12)

	a0, a1, a2, a3 := columnButterfly4(row0, row1, row2, row3, k.dir)
	b0 := a0
	b1 := complexMultiply(a1, k.tw1)
	b2 := complexMultiply(a2, k.tw2)
	b3 := complexMultiply(a3, k.tw3)

	c0, c1, c2, c3 := transpose4x4(b0, b1, b2, b3)
	d0, d1, d2, d3 := columnButterfly4(c0, c1, c2, c3, k.dir)

	storeVec8(output, 0, d0)
	storeVec8(output, 4, d1)
	storeVec8(output, 8, d2)
	storeVec8(output, 12, d3)
}

func (k kernel16_32) ProcessInPlace(buf, scratch []complex64) error {
	if err := checkLen("Kernel16.ProcessInPlace", len(buf), 16); err != nil {
		return err
	}
	var tmp [16]complex64
	copy(tmp[:], buf)
	k.transform(tmp[:], buf)
	return nil
}

func (k kernel16_32) ProcessOutOfPlace(input, output, scratch []complex64) error {
	if err := checkLen("Kernel16.ProcessOutOfPlace", len(input), 16); err != nil {
		return err
	}
	if err := checkLen("Kernel16.ProcessOutOfPlace", len(output), 16); err != nil {
		return err
	}
	k.transform(input, output)
	return nil
}

func (k kernel16_32) ProcessInPlaceBatch(buf, scratch []complex64) error {
	if err := checkBatch("Kernel16.ProcessInPlaceBatch", len(buf), 16); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += 16 {
		if err := k.ProcessInPlace(buf[off:off+16], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (k kernel16_32) ProcessOutOfPlaceBatch(input, output, scratch []complex64) error {
	if err := checkBatch("Kernel16.ProcessOutOfPlaceBatch", len(input), 16); err != nil {
		return err
	}
	if err := checkLen("Kernel16.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += 16 {
		if err := k.ProcessOutOfPlace(input[off:off+16], output[off:off+16], scratch); err != nil {
			return err
		}
	}
	return nil
}

// NewKernel32 returns the length-32 fixed-size kernel: NewSplitRadixSIMD
// recombining a kernel16 half with a kernel8 quarter. See the file doc
// comment for why this composes rather than hand-unrolling MixedRadixAvx4x8.
func NewKernel32(dir Direction) (Transform32, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	half, err := NewKernel16(dir)
	if err != nil {
		return nil, err
	}
	quarter, err := NewKernel8(dir)
	if err != nil {
		return nil, err
	}
	return NewSplitRadixSIMD(32, dir, half, quarter)
}

// NewKernel64 returns the length-64 fixed-size kernel: NewSplitRadixSIMD
// recombining a kernel32 half with a kernel16 quarter.
func NewKernel64(dir Direction) (Transform32, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	half, err := NewKernel32(dir)
	if err != nil {
		return nil, err
	}
	quarter, err := NewKernel16(dir)
	if err != nil {
		return nil, err
	}
	return NewSplitRadixSIMD(64, dir, half, quarter)
}

// NewKernel8_64, NewKernel16_64, NewKernel32_64, NewKernel64_64 mirror the
// above over complex128. Per the double-precision kernel decision in
// DESIGN.md (a 256-bit register holds two complex128 lanes against four
// complex64 lanes, halving the payoff of a fully separate unrolled ladder),
// these compose onto the generic scalar recursion rather than a two-lane
// register port of the above.

func NewKernel8_64(dir Direction) (Transform64, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	return NewSplitRadix64(8, dir, NewButterfly4_64(dir), NewButterfly2_64(dir))
}

func NewKernel16_64(dir Direction) (Transform64, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	half, err := NewSplitRadix64(8, dir, NewButterfly4_64(dir), NewButterfly2_64(dir))
	if err != nil {
		return nil, err
	}
	return NewSplitRadix64(16, dir, half, NewButterfly4_64(dir))
}

func NewKernel32_64(dir Direction) (Transform64, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	k8, err := NewSplitRadix64(8, dir, NewButterfly4_64(dir), NewButterfly2_64(dir))
	if err != nil {
		return nil, err
	}
	k16, err := NewSplitRadix64(16, dir, k8, NewButterfly4_64(dir))
	if err != nil {
		return nil, err
	}
	k8b, err := NewSplitRadix64(8, dir, NewButterfly4_64(dir), NewButterfly2_64(dir))
	if err != nil {
		return nil, err
	}
	return NewSplitRadix64(32, dir, k16, k8b)
}

func NewKernel64_64(dir Direction) (Transform64, error) {
	if !hasSIMDSupport() {
		return nil, ErrFeatureUnavailable
	}
	k32, err := NewKernel32_64(dir)
	if err != nil {
		return nil, err
	}
	k8, err := NewSplitRadix64(8, dir, NewButterfly4_64(dir), NewButterfly2_64(dir))
	if err != nil {
		return nil, err
	}
	k16, err := NewSplitRadix64(16, dir, k8, NewButterfly4_64(dir))
	if err != nil {
		return nil, err
	}
	return NewSplitRadix64(64, dir, k32, k16)
}
