package fft

import "math"

// Twiddle32 returns Wk = exp(-2*pi*i*k*s/n) in single precision, where
// s = +1 for Forward and s = -1 for Inverse (spec section 4.1). The phase is
// always computed in float64 before narrowing, so the maximum absolute error
// stays under 2^-22 for n <= 2^30, matching both gopus's computeTwiddles
// (celt/kissfft32.go) and go-aac's computeTwiddle (internal/fft/cfft.go),
// which both keep the trig call in float64 regardless of the output width.
func Twiddle32(k, n int, dir Direction) complex64 {
	re, im := twiddlePhase(k, n, dir)
	return complex(float32(re), float32(im))
}

// Twiddle64 is Twiddle32's double-precision counterpart.
func Twiddle64(k, n int, dir Direction) complex128 {
	re, im := twiddlePhase(k, n, dir)
	return complex(re, im)
}

func twiddlePhase(k, n int, dir Direction) (re, im float64) {
	angle := -2.0 * math.Pi * dir.sign() * float64(k) / float64(n)
	s, c := math.Sincos(angle)
	return c, s
}

// rotate90_32 applies the 90-degree rotation used to combine the split-radix
// quarter-difference term: j*z for Inverse, -j*z for Forward (spec 4.2).
func rotate90_32(z complex64, dir Direction) complex64 {
	re, im := real(z), imag(z)
	if dir == Inverse {
		return complex(-im, re)
	}
	return complex(im, -re)
}

func rotate90_64(z complex128, dir Direction) complex128 {
	re, im := real(z), imag(z)
	if dir == Inverse {
		return complex(-im, re)
	}
	return complex(im, -re)
}

// quarterTwiddles32 builds the quarterLen-element twiddle table a
// split-radix transform of length quarterLen*4 needs for its recombination
// stage: Wk for k in [0, quarterLen).
func quarterTwiddles32(quarterLen int, dir Direction) []complex64 {
	n := quarterLen * 4
	tab := make([]complex64, quarterLen)
	for k := 0; k < quarterLen; k++ {
		tab[k] = Twiddle32(k, n, dir)
	}
	return tab
}

func quarterTwiddles64(quarterLen int, dir Direction) []complex128 {
	n := quarterLen * 4
	tab := make([]complex128, quarterLen)
	for k := 0; k < quarterLen; k++ {
		tab[k] = Twiddle64(k, n, dir)
	}
	return tab
}
