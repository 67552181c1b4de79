package fft

// Generic scalar split-radix transform, per spec section 4.2. A length-N
// transform is built from one length-N/2 "half" transform over the
// even-indexed samples and two length-N/4 "quarter" transforms over the two
// odd-indexed streams: O1 at indices 1 mod 4 in natural order, and O3 at
// indices 3 mod 4 but rotated so that b[N-1] lands at O3[0] (so O3[i] =
// b[(4i-1) mod N]) — this rotation is what lets the recombination use
// conj(Wk) for the O3 term instead of a second independently-computed
// twiddle table. Recombined with Wk for O1, conj(Wk) for O3, and a
// 90-degree rotation of their difference.
//
// This keeps a precomputed conj(Wk) table (tw3) alongside the Wk table
// (tw1) rather than computing the conjugate inline in the hot loop; the
// extra table costs O(N/4) memory once at construction.
//
// The odd streams O1/O3 live in caller-supplied external scratch (N/4 each,
// N/2 total), matching the N/2 budget split_radix.rs states for this path.
// The even stream never gets its own scratch slot: it is compacted in place
// into the front half of whichever buffer (buf, for ProcessInPlace, or
// output, for ProcessOutOfPlace) the caller gave us, exactly the way
// split_radix.rs's scalar path packs evens into the first half of its own
// buffer — and the tail of that same buffer, freed up by the compaction,
// becomes the scratch the half/quarter inner transforms run against. The
// in-place compaction loop (buf[i] = buf[2*i] for i ascending) is safe
// without a temporary: the read index 2*i is never less than the write
// index i, so no iteration overwrites a sample a later iteration still
// needs.

type splitRadix32 struct {
	n, halfLen, quarterLen int
	dir                    Direction
	half, quarter          Transform32
	tw1, tw3               []complex64
}

// NewSplitRadix builds a length-n scalar split-radix transform from a
// length-n/2 half transform and a length-n/4 quarter transform, both already
// built for direction dir. n must be a multiple of 4 and at least 8.
func NewSplitRadix(n int, dir Direction, half, quarter Transform32) (Transform32, error) {
	if n < 8 || n%4 != 0 {
		return nil, &Error{Code: ErrBadLength, Op: "NewSplitRadix", Expected: 0, Observed: n}
	}
	if half.Len() != n/2 {
		return nil, &Error{Code: ErrInnerMismatch, Op: "NewSplitRadix", Expected: n / 2, Observed: half.Len()}
	}
	if quarter.Len() != n/4 {
		return nil, &Error{Code: ErrInnerMismatch, Op: "NewSplitRadix", Expected: n / 4, Observed: quarter.Len()}
	}
	if half.Direction() != dir || quarter.Direction() != dir {
		return nil, &Error{Code: ErrInnerMismatch, Op: "NewSplitRadix"}
	}
	quarterLen := n / 4
	tw1 := quarterTwiddles32(quarterLen, dir)
	tw3 := make([]complex64, quarterLen)
	for i := 0; i < quarterLen; i++ {
		tw3[i] = complex(real(tw1[i]), -imag(tw1[i])) // conj(Wk)
	}
	return &splitRadix32{
		n: n, halfLen: n / 2, quarterLen: quarterLen,
		dir: dir, half: half, quarter: quarter,
		tw1: tw1, tw3: tw3,
	}, nil
}

func (s *splitRadix32) Len() int             { return s.n }
func (s *splitRadix32) Direction() Direction { return s.dir }

func (s *splitRadix32) scratchLen() int { return s.halfLen }

func (s *splitRadix32) InplaceScratchLen() int    { return s.scratchLen() }
func (s *splitRadix32) OutOfPlaceScratchLen() int { return s.scratchLen() }

// extractOdds copies O1 (front quarterLen of scratch) and O3 (back
// quarterLen) out of src in the rotated order the recombination expects.
// Pure extraction, no processing: it must run before anything touches
// src's upper half (the even-compaction step below reads that same range),
// and before the buffer tail it will later reuse as inner scratch is
// overwritten.
func (s *splitRadix32) extractOdds(src, scratch []complex64) (odds1, odds3 []complex64) {
	quarterLen := s.quarterLen
	odds1 = scratch[:quarterLen]
	odds3 = scratch[quarterLen : 2*quarterLen]

	n := s.n
	odds1[0] = src[1]
	odds3[0] = src[n-1]
	for i := 1; i < quarterLen; i++ {
		odds1[i] = src[4*i+1]
		odds3[i] = src[4*i-1]
	}
	return
}

// compactEvens packs the even-indexed samples of src into the front
// halfLen entries of dst (dst may alias src, as ProcessInPlace's buf does;
// see the top-of-file note on why this is safe without a temporary).
func (s *splitRadix32) compactEvens(src, dst []complex64) {
	for i := 0; i < s.halfLen; i++ {
		dst[i] = src[2*i]
	}
}

func (s *splitRadix32) combine(evens, odds1, odds3, output []complex64) {
	halfLen, quarterLen := s.halfLen, s.quarterLen
	for i := 0; i < quarterLen; i++ {
		e0 := evens[i]
		e1 := evens[i+quarterLen]
		t1 := s.tw1[i] * odds1[i]
		t3 := s.tw3[i] * odds3[i]
		sum := t1 + t3
		diff := rotate90_32(t1-t3, s.dir)
		output[i] = e0 + sum
		output[i+halfLen] = e0 - sum
		output[i+quarterLen] = e1 + diff
		output[i+quarterLen+halfLen] = e1 - diff
	}
}

func (s *splitRadix32) ProcessOutOfPlace(input, output, scratch []complex64) error {
	if err := checkLen("SplitRadix.ProcessOutOfPlace", len(input), s.n); err != nil {
		return err
	}
	if err := checkLen("SplitRadix.ProcessOutOfPlace", len(output), s.n); err != nil {
		return err
	}
	if err := checkScratch("SplitRadix.ProcessOutOfPlace", len(scratch), s.scratchLen()); err != nil {
		return err
	}
	odds1, odds3 := s.extractOdds(input, scratch)
	s.compactEvens(input, output)
	evens := output[:s.halfLen]
	inner := output[s.halfLen:s.n]
	if err := s.half.ProcessInPlace(evens, inner[:s.half.InplaceScratchLen()]); err != nil {
		return err
	}
	qInner := inner[:s.quarter.InplaceScratchLen()]
	if err := s.quarter.ProcessInPlace(odds1, qInner); err != nil {
		return err
	}
	if err := s.quarter.ProcessInPlace(odds3, qInner); err != nil {
		return err
	}
	s.combine(evens, odds1, odds3, output)
	return nil
}

// ProcessInPlace extracts buf's odd streams into scratch before touching
// buf at all, then compacts buf's even stream into its own front half,
// runs all three inner transforms (using buf's now-free tail as scratch
// for both the half transform and, sequentially, the two quarter
// transforms — safe because none of those three calls overlaps in time),
// and recombines directly back into buf.
func (s *splitRadix32) ProcessInPlace(buf, scratch []complex64) error {
	if err := checkLen("SplitRadix.ProcessInPlace", len(buf), s.n); err != nil {
		return err
	}
	if err := checkScratch("SplitRadix.ProcessInPlace", len(scratch), s.scratchLen()); err != nil {
		return err
	}
	odds1, odds3 := s.extractOdds(buf, scratch)
	s.compactEvens(buf, buf)
	evens := buf[:s.halfLen]
	inner := buf[s.halfLen:s.n]
	if err := s.half.ProcessInPlace(evens, inner[:s.half.InplaceScratchLen()]); err != nil {
		return err
	}
	qInner := inner[:s.quarter.InplaceScratchLen()]
	if err := s.quarter.ProcessInPlace(odds1, qInner); err != nil {
		return err
	}
	if err := s.quarter.ProcessInPlace(odds3, qInner); err != nil {
		return err
	}
	s.combine(evens, odds1, odds3, buf)
	return nil
}

func (s *splitRadix32) ProcessOutOfPlaceBatch(input, output, scratch []complex64) error {
	if err := checkBatch("SplitRadix.ProcessOutOfPlaceBatch", len(input), s.n); err != nil {
		return err
	}
	if err := checkLen("SplitRadix.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += s.n {
		if err := s.ProcessOutOfPlace(input[off:off+s.n], output[off:off+s.n], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (s *splitRadix32) ProcessInPlaceBatch(buf, scratch []complex64) error {
	if err := checkBatch("SplitRadix.ProcessInPlaceBatch", len(buf), s.n); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += s.n {
		if err := s.ProcessInPlace(buf[off:off+s.n], scratch); err != nil {
			return err
		}
	}
	return nil
}

// --- complex128 mirror ---

type splitRadix64 struct {
	n, halfLen, quarterLen int
	dir                    Direction
	half, quarter          Transform64
	tw1, tw3               []complex128
}

// NewSplitRadix64 is NewSplitRadix's double-precision counterpart.
func NewSplitRadix64(n int, dir Direction, half, quarter Transform64) (Transform64, error) {
	if n < 8 || n%4 != 0 {
		return nil, &Error{Code: ErrBadLength, Op: "NewSplitRadix64", Expected: 0, Observed: n}
	}
	if half.Len() != n/2 {
		return nil, &Error{Code: ErrInnerMismatch, Op: "NewSplitRadix64", Expected: n / 2, Observed: half.Len()}
	}
	if quarter.Len() != n/4 {
		return nil, &Error{Code: ErrInnerMismatch, Op: "NewSplitRadix64", Expected: n / 4, Observed: quarter.Len()}
	}
	if half.Direction() != dir || quarter.Direction() != dir {
		return nil, &Error{Code: ErrInnerMismatch, Op: "NewSplitRadix64"}
	}
	quarterLen := n / 4
	tw1 := quarterTwiddles64(quarterLen, dir)
	tw3 := make([]complex128, quarterLen)
	for i := 0; i < quarterLen; i++ {
		tw3[i] = complex(real(tw1[i]), -imag(tw1[i])) // conj(Wk)
	}
	return &splitRadix64{
		n: n, halfLen: n / 2, quarterLen: quarterLen,
		dir: dir, half: half, quarter: quarter,
		tw1: tw1, tw3: tw3,
	}, nil
}

func (s *splitRadix64) Len() int             { return s.n }
func (s *splitRadix64) Direction() Direction { return s.dir }

func (s *splitRadix64) scratchLen() int { return s.halfLen }

func (s *splitRadix64) InplaceScratchLen() int    { return s.scratchLen() }
func (s *splitRadix64) OutOfPlaceScratchLen() int { return s.scratchLen() }

func (s *splitRadix64) extractOdds(src, scratch []complex128) (odds1, odds3 []complex128) {
	quarterLen := s.quarterLen
	odds1 = scratch[:quarterLen]
	odds3 = scratch[quarterLen : 2*quarterLen]

	odds1[0] = src[1]
	odds3[0] = src[s.n-1]
	for i := 1; i < quarterLen; i++ {
		odds1[i] = src[4*i+1]
		odds3[i] = src[4*i-1]
	}
	return
}

func (s *splitRadix64) compactEvens(src, dst []complex128) {
	for i := 0; i < s.halfLen; i++ {
		dst[i] = src[2*i]
	}
}

func (s *splitRadix64) combine(evens, odds1, odds3, output []complex128) {
	halfLen, quarterLen := s.halfLen, s.quarterLen
	for i := 0; i < quarterLen; i++ {
		e0 := evens[i]
		e1 := evens[i+quarterLen]
		t1 := s.tw1[i] * odds1[i]
		t3 := s.tw3[i] * odds3[i]
		sum := t1 + t3
		diff := rotate90_64(t1-t3, s.dir)
		output[i] = e0 + sum
		output[i+halfLen] = e0 - sum
		output[i+quarterLen] = e1 + diff
		output[i+quarterLen+halfLen] = e1 - diff
	}
}

func (s *splitRadix64) ProcessOutOfPlace(input, output, scratch []complex128) error {
	if err := checkLen("SplitRadix.ProcessOutOfPlace", len(input), s.n); err != nil {
		return err
	}
	if err := checkLen("SplitRadix.ProcessOutOfPlace", len(output), s.n); err != nil {
		return err
	}
	if err := checkScratch("SplitRadix.ProcessOutOfPlace", len(scratch), s.scratchLen()); err != nil {
		return err
	}
	odds1, odds3 := s.extractOdds(input, scratch)
	s.compactEvens(input, output)
	evens := output[:s.halfLen]
	inner := output[s.halfLen:s.n]
	if err := s.half.ProcessInPlace(evens, inner[:s.half.InplaceScratchLen()]); err != nil {
		return err
	}
	qInner := inner[:s.quarter.InplaceScratchLen()]
	if err := s.quarter.ProcessInPlace(odds1, qInner); err != nil {
		return err
	}
	if err := s.quarter.ProcessInPlace(odds3, qInner); err != nil {
		return err
	}
	s.combine(evens, odds1, odds3, output)
	return nil
}

func (s *splitRadix64) ProcessInPlace(buf, scratch []complex128) error {
	if err := checkLen("SplitRadix.ProcessInPlace", len(buf), s.n); err != nil {
		return err
	}
	if err := checkScratch("SplitRadix.ProcessInPlace", len(scratch), s.scratchLen()); err != nil {
		return err
	}
	odds1, odds3 := s.extractOdds(buf, scratch)
	s.compactEvens(buf, buf)
	evens := buf[:s.halfLen]
	inner := buf[s.halfLen:s.n]
	if err := s.half.ProcessInPlace(evens, inner[:s.half.InplaceScratchLen()]); err != nil {
		return err
	}
	qInner := inner[:s.quarter.InplaceScratchLen()]
	if err := s.quarter.ProcessInPlace(odds1, qInner); err != nil {
		return err
	}
	if err := s.quarter.ProcessInPlace(odds3, qInner); err != nil {
		return err
	}
	s.combine(evens, odds1, odds3, buf)
	return nil
}

func (s *splitRadix64) ProcessOutOfPlaceBatch(input, output, scratch []complex128) error {
	if err := checkBatch("SplitRadix.ProcessOutOfPlaceBatch", len(input), s.n); err != nil {
		return err
	}
	if err := checkLen("SplitRadix.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += s.n {
		if err := s.ProcessOutOfPlace(input[off:off+s.n], output[off:off+s.n], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (s *splitRadix64) ProcessInPlaceBatch(buf, scratch []complex128) error {
	if err := checkBatch("SplitRadix.ProcessInPlaceBatch", len(buf), s.n); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += s.n {
		if err := s.ProcessInPlace(buf[off:off+s.n], scratch); err != nil {
			return err
		}
	}
	return nil
}
