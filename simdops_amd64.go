//go:build amd64 && !purego

package fft

// vec8 is the lane view spec section 3 describes for the AVX2+FMA path: the
// 8 float32 lanes a single YMM register would hold, packed as 4 complex64
// values (lane i at offset [2i, 2i+1] = (real, imag)). This module has no
// hand-written assembly (see DESIGN.md — the retrieved corpus carries zero
// .s files to ground one on, and the toolchain is never run to verify one),
// so every primitive below is the portable-Go register choreography over
// that same 8-lane layout: the same data movement and arithmetic
// original_source/src/algorithm/split_radix.rs's AVX macros perform, without
// the actual vpermilps/vunpck/vfmaddsub instructions. Named after the macros
// they port: complexMultiply/complexConjMultiply (complex_multiply_f32!/
// complex_conj_multiply_f32!), rotate90Vec8/rotate90AlternatingVec8
// (butterfly4_twiddle_avx_f32!/butterfly4_twiddle_alternating_avx_f32!),
// columnButterfly2/columnButterfly4 (column_butterfly2_avx_f32!/
// column_butterfly4_avx_f32!), transpose4x4 (transpose_4x4_f32!), and
// splitEvens (split_evens_f32!, used only by the SIMD split-radix
// decimation).
type vec8 [8]float32

func loadVec8(buf []complex64, off int) vec8 {
	var v vec8
	for i := 0; i < 4; i++ {
		c := buf[off+i]
		v[2*i], v[2*i+1] = real(c), imag(c)
	}
	return v
}

func storeVec8(buf []complex64, off int, v vec8) {
	for i := 0; i < 4; i++ {
		buf[off+i] = complex(v[2*i], v[2*i+1])
	}
}

func laneVec8(v vec8, i int) complex64 { return complex(v[2*i], v[2*i+1]) }

func setLaneVec8(v *vec8, i int, c complex64) {
	v[2*i], v[2*i+1] = real(c), imag(c)
}

func addVec8(a, b vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func subVec8(a, b vec8) vec8 {
	var r vec8
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// columnButterfly2 computes 4 parallel butterfly-2s: one per lane, using
// that lane's value from row0 and row1. Ports column_butterfly2_avx_f32!.
func columnButterfly2(row0, row1 vec8) (vec8, vec8) {
	return addVec8(row0, row1), subVec8(row0, row1)
}

// columnButterfly2NegateRow1 is column_butterfly2_avx_f32! with row1
// negated first — used where a prior step already owes the result an
// overall sign flip (column_butterfly2_negaterow1_avx_f32!).
func columnButterfly2NegateRow1(row0, row1 vec8) (vec8, vec8) {
	return subVec8(row0, row1), addVec8(row0, row1)
}

// complexMultiply multiplies left and right lane-wise. Ports
// complex_multiply_f32!, minus the moveldup/movehdup/fmaddsub dance: the
// duplicate-real, duplicate-imaginary, shuffle and fused multiply-add-
// subtract there compute exactly (lr*rr - li*ri, lr*ri + li*rr) per lane.
func complexMultiply(left, right vec8) vec8 {
	var r vec8
	for i := 0; i < 4; i++ {
		lr, li := left[2*i], left[2*i+1]
		rr, ri := right[2*i], right[2*i+1]
		r[2*i] = lr*rr - li*ri
		r[2*i+1] = lr*ri + li*rr
	}
	return r
}

// complexConjMultiply multiplies conj(left) by right lane-wise. Ports
// complex_conj_multiply_f32! (the fmsubadd variant of the same dance).
func complexConjMultiply(left, right vec8) vec8 {
	var r vec8
	for i := 0; i < 4; i++ {
		lr, li := left[2*i], -left[2*i+1]
		rr, ri := right[2*i], right[2*i+1]
		r[2*i] = lr*rr - li*ri
		r[2*i+1] = lr*ri + li*rr
	}
	return r
}

// rotate90Vec8 applies the butterfly-4 twiddle (multiply by -j forward, +j
// inverse) to all 4 lanes. Ports butterfly4_twiddle_avx_f32!.
func rotate90Vec8(v vec8, dir Direction) vec8 {
	var r vec8
	for i := 0; i < 4; i++ {
		z := rotate90_32(laneVec8(v, i), dir)
		setLaneVec8(&r, i, z)
	}
	return r
}

// rotate90AlternatingVec8 applies the same rotation to the odd lanes (1, 3) only,
// passing lanes 0 and 2 through unchanged. Ports
// butterfly4_twiddle_alternating_avx_f32!.
func rotate90AlternatingVec8(v vec8, dir Direction) vec8 {
	r := v
	for _, i := range [2]int{1, 3} {
		setLaneVec8(&r, i, rotate90_32(laneVec8(v, i), dir))
	}
	return r
}

// columnButterfly4 computes 4 parallel butterfly-4s, one per lane, from
// rows 0..3. Ports column_butterfly4_avx_f32!. The two final
// columnButterfly2 passes yield bins (0, 2) and (1, 3); the return
// statement reorders them so the results come back in natural bin order
// (bin 0, bin 1, bin 2, bin 3).
func columnButterfly4(row0, row1, row2, row3 vec8, dir Direction) (vec8, vec8, vec8, vec8) {
	mid0, mid2 := columnButterfly2(row0, row2)
	mid1, mid3pre := columnButterfly2(row1, row3)
	mid3 := rotate90Vec8(mid3pre, dir)
	out0, out1 := columnButterfly2(mid0, mid1)
	out2, out3 := columnButterfly2(mid2, mid3)
	return out0, out2, out1, out3
}

// transpose4x4 transposes a 4x4 grid of complex lanes held across 4 vec8
// registers: col[j] holds row j's 4 lanes in, and the result's row[i] holds
// column i's 4 lanes out. Ports transpose_4x4_f32! (unpacklo/unpackhi +
// permute + permute2f128, here just direct lane reindexing).
func transpose4x4(col0, col1, col2, col3 vec8) (vec8, vec8, vec8, vec8) {
	rows := [4]vec8{col0, col1, col2, col3}
	var out [4]vec8
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			setLaneVec8(&out[i], j, laneVec8(rows[j], i))
		}
	}
	return out[0], out[1], out[2], out[3]
}

// splitEvens takes two vec8 registers holding 8 consecutive complex
// samples (chunk0 = samples 0..3, chunk1 = samples 4..7) and deinterleaves
// them into the 4 even-indexed and 4 odd-indexed samples. Ports
// split_evens_f32!, the primitive the SIMD split-radix decimation loop
// uses three times per iteration (twice to separate evens from odds, once
// more to split the odds into the two quarter streams).
func splitEvens(chunk0, chunk1 vec8) (evens, odds vec8) {
	var all [8]complex64
	for i := 0; i < 4; i++ {
		all[i] = laneVec8(chunk0, i)
		all[4+i] = laneVec8(chunk1, i)
	}
	for i := 0; i < 4; i++ {
		setLaneVec8(&evens, i, all[2*i])
		setLaneVec8(&odds, i, all[2*i+1])
	}
	return
}

// columnButterfly8 computes 4 parallel butterfly-8s from 8 rows, one
// output per lane. Ports column_butterfly8_avx_f32!'s DIT merge of two
// column_butterfly4 results (even-indexed rows, odd-indexed rows) via the
// radix-2 identity X[k] = E[k] + W8^k*O[k], X[k+4] = E[k] - W8^k*O[k];
// twiddles holds W8^1 broadcast across all 4 lanes, matching
// twiddles_butterfly8 in the Rust source, since W8^0 needs no multiply and
// W8^2 reduces to rotate90 (both handled the same way the macro does: no
// multiply for the k=0 term, rotate90 for k=2, and conj-multiply-plus-
// negate for k=3, folded into columnButterfly2NegateRow1).
func columnButterfly8(rows [8]vec8, twiddle vec8, dir Direction) [8]vec8 {
	mid0, mid2, mid4, mid6 := columnButterfly4(rows[0], rows[2], rows[4], rows[6], dir)
	mid1, mid3, mid5, mid7 := columnButterfly4(rows[1], rows[3], rows[5], rows[7], dir)

	mid3Tw := complexMultiply(twiddle, mid3)
	mid5Tw := rotate90Vec8(mid5, dir)
	mid7TwNeg := complexConjMultiply(twiddle, mid7)

	f0, f1 := columnButterfly2(mid0, mid1)
	f2, f3 := columnButterfly2(mid2, mid3Tw)
	f4, f5 := columnButterfly2(mid4, mid5Tw)
	f6, f7 := columnButterfly2NegateRow1(mid6, mid7TwNeg)

	return [8]vec8{f0, f2, f4, f6, f1, f3, f5, f7}
}
