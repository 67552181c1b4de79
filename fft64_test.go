package fft

import (
	"math"
	"math/rand"
	"testing"
)

const tol64 = 1e-9

func maxAbsDiff64(a, b []complex128) float64 {
	var max float64
	for i := range a {
		d := a[i] - b[i]
		m := math.Hypot(real(d), imag(d))
		if m > max {
			max = m
		}
	}
	return max
}

func randComplex128(n int, r *rand.Rand) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(r.NormFloat64(), r.NormFloat64())
	}
	return out
}

func newScalarTree64(n int, dir Direction) (Transform64, error) {
	switch n {
	case 2:
		return NewButterfly2_64(dir), nil
	case 4:
		return NewButterfly4_64(dir), nil
	}
	half, err := newScalarTree64(n/2, dir)
	if err != nil {
		return nil, err
	}
	quarter, err := newScalarTree64(n/4, dir)
	if err != nil {
		return nil, err
	}
	return NewSplitRadix64(n, dir, half, quarter)
}

func TestCorrectnessVsDFT64(t *testing.T) {
	for _, n := range []int{8, 16, 32, 64, 128} {
		for _, dir := range []Direction{Forward, Inverse} {
			t.Run("", func(t *testing.T) {
				tr, err := newScalarTree64(n, dir)
				if err != nil {
					t.Fatalf("build n=%d: %v", n, err)
				}
				scratch := make([]complex128, tr.InplaceScratchLen())
				for k := 0; k < n; k++ {
					in := make([]complex128, n)
					in[k] = 1
					want := DFTReference64(in, dir)

					buf := append([]complex128(nil), in...)
					if err := tr.ProcessInPlace(buf, scratch); err != nil {
						t.Fatalf("n=%d dir=%v k=%d: %v", n, dir, k, err)
					}
					if d := maxAbsDiff64(buf, want); d > tol64 {
						t.Errorf("n=%d dir=%v k=%d: max diff %g", n, dir, k, d)
					}
				}
			})
		}
	}
}

func TestRoundTrip64(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, n := range []int{8, 16, 32, 64, 128} {
		t.Run("", func(t *testing.T) {
			fwd, err := newScalarTree64(n, Forward)
			if err != nil {
				t.Fatal(err)
			}
			inv, err := newScalarTree64(n, Inverse)
			if err != nil {
				t.Fatal(err)
			}
			scratch := make([]complex128, fwd.InplaceScratchLen())

			orig := randComplex128(n, r)
			buf := append([]complex128(nil), orig...)
			if err := fwd.ProcessInPlace(buf, scratch); err != nil {
				t.Fatal(err)
			}
			if err := inv.ProcessInPlace(buf, scratch); err != nil {
				t.Fatal(err)
			}
			for i := range buf {
				buf[i] /= complex(float64(n), 0)
			}
			if d := maxAbsDiff64(buf, orig); d > tol64 {
				t.Errorf("n=%d: round-trip max diff %g", n, d)
			}
		})
	}
}

func TestDispatch64MatchesScalar(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for _, n := range []int{8, 16, 32, 64, 128} {
		t.Run("", func(t *testing.T) {
			fast, err := New64(n, Forward)
			if err != nil {
				t.Fatalf("New64(%d): %v", n, err)
			}
			scalar, err := newScalarTree64(n, Forward)
			if err != nil {
				t.Fatal(err)
			}
			x := randComplex128(n, r)
			a := append([]complex128(nil), x...)
			b := append([]complex128(nil), x...)
			if err := fast.ProcessInPlace(a, make([]complex128, fast.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}
			if err := scalar.ProcessInPlace(b, make([]complex128, scalar.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}
			if d := maxAbsDiff64(a, b); d > tol64 {
				t.Errorf("n=%d: dispatch vs scalar max diff %g", n, d)
			}
		})
	}
}
