package fft

// New builds the fastest available length-n transform for direction dir: a
// recursive split-radix tree bottoming out at the radix-2/radix-4 scalar
// leaves, using the AVX2+FMA-gated split-radix recombination (spec section
// 4.3) wherever a subtree's length is divisible by 16 and the host supports
// it, and the plain scalar recombination (section 4.2) everywhere else.
//
// This is deliberately thin, per spec section 2: it knows exactly the two
// families this package implements, not a general multi-strategy planner.
// n must be a power of two no smaller than 2.
func New(n int, dir Direction) (Transform32, error) {
	if !isPowerOfTwo(n) || n < 2 {
		return nil, &Error{Code: ErrBadLength, Op: "New", Expected: 0, Observed: n}
	}
	switch n {
	case 2:
		return NewButterfly2(dir), nil
	case 4:
		return NewButterfly4(dir), nil
	}
	half, err := New(n/2, dir)
	if err != nil {
		return nil, err
	}
	quarter, err := New(n/4, dir)
	if err != nil {
		return nil, err
	}
	if n%16 == 0 && hasSIMDSupport() {
		sr, err := NewSplitRadixSIMD(n, dir, half, quarter)
		if err == nil {
			return sr, nil
		}
		if err != ErrFeatureUnavailable {
			return nil, err
		}
	}
	return NewSplitRadix(n, dir, half, quarter)
}

// New64 mirrors New over complex128.
func New64(n int, dir Direction) (Transform64, error) {
	if !isPowerOfTwo(n) || n < 2 {
		return nil, &Error{Code: ErrBadLength, Op: "New64", Expected: 0, Observed: n}
	}
	switch n {
	case 2:
		return NewButterfly2_64(dir), nil
	case 4:
		return NewButterfly4_64(dir), nil
	}
	half, err := New64(n/2, dir)
	if err != nil {
		return nil, err
	}
	quarter, err := New64(n/4, dir)
	if err != nil {
		return nil, err
	}
	if n%16 == 0 && hasSIMDSupport() {
		sr, err := NewSplitRadixSIMD64(n, dir, half, quarter)
		if err == nil {
			return sr, nil
		}
		if err != ErrFeatureUnavailable {
			return nil, err
		}
	}
	return NewSplitRadix64(n, dir, half, quarter)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
