package fft

import (
	"math/rand"
	"testing"
)

// TestDispatchMatchesScalar checks that New's output (which may select the
// AVX2+FMA path on a capable host) agrees with the pure-scalar tree, so the
// SIMD-gated fast path is never silently wrong relative to the reference
// implementation it specializes.
func TestDispatchMatchesScalar(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{8, 16, 32, 64, 128, 256} {
		t.Run("", func(t *testing.T) {
			fast, err := New(n, Forward)
			if err != nil {
				t.Fatalf("New(%d): %v", n, err)
			}
			scalar, err := newScalarTree(n, Forward)
			if err != nil {
				t.Fatalf("newScalarTree(%d): %v", n, err)
			}
			if fast.Len() != n || scalar.Len() != n {
				t.Fatalf("Len mismatch")
			}

			x := randComplex64(n, r)
			a := append([]complex64(nil), x...)
			b := append([]complex64(nil), x...)

			if err := fast.ProcessInPlace(a, make([]complex64, fast.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}
			if err := scalar.ProcessInPlace(b, make([]complex64, scalar.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}
			if d := maxAbsDiff32(a, b); d > tol32 {
				t.Errorf("n=%d: dispatch vs scalar max diff %g", n, d)
			}
		})
	}
}

func TestDispatchRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, -1, 3, 5, 6, 100} {
		if _, err := New(n, Forward); err == nil {
			t.Errorf("New(%d): expected error", n)
		}
		if _, err := New64(n, Forward); err == nil {
			t.Errorf("New64(%d): expected error", n)
		}
	}
}

func TestOutOfPlaceMatchesInPlace(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for _, n := range []int{8, 32, 128} {
		t.Run("", func(t *testing.T) {
			tr, err := newScalarTree(n, Forward)
			if err != nil {
				t.Fatal(err)
			}
			x := randComplex64(n, r)

			inplace := append([]complex64(nil), x...)
			if err := tr.ProcessInPlace(inplace, make([]complex64, tr.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}

			outofplace := make([]complex64, n)
			input := append([]complex64(nil), x...)
			if err := tr.ProcessOutOfPlace(input, outofplace, make([]complex64, tr.OutOfPlaceScratchLen())); err != nil {
				t.Fatal(err)
			}

			if d := maxAbsDiff32(inplace, outofplace); d > tol32 {
				t.Errorf("n=%d: in-place vs out-of-place max diff %g", n, d)
			}
		})
	}
}

// TestKernelConstructorsAgreeWithScalar checks the named fixed-size kernels
// (where the host supports AVX2+FMA) against the generic scalar tree of the
// same length.
func TestKernelConstructorsAgreeWithScalar(t *testing.T) {
	type ctor struct {
		n int
		f func(Direction) (Transform32, error)
	}
	ctors := []ctor{
		{8, NewKernel8}, {16, NewKernel16}, {32, NewKernel32}, {64, NewKernel64},
	}
	r := rand.New(rand.NewSource(9))
	for _, c := range ctors {
		t.Run("", func(t *testing.T) {
			tr, err := c.f(Forward)
			if err == ErrFeatureUnavailable {
				t.Skip("host lacks AVX2+FMA")
			}
			if err != nil {
				t.Fatal(err)
			}
			scalar, err := newScalarTree(c.n, Forward)
			if err != nil {
				t.Fatal(err)
			}
			x := randComplex64(c.n, r)
			a := append([]complex64(nil), x...)
			b := append([]complex64(nil), x...)
			if err := tr.ProcessInPlace(a, make([]complex64, tr.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}
			if err := scalar.ProcessInPlace(b, make([]complex64, scalar.InplaceScratchLen())); err != nil {
				t.Fatal(err)
			}
			if d := maxAbsDiff32(a, b); d > tol32 {
				t.Errorf("n=%d: kernel vs scalar max diff %g", c.n, d)
			}
		})
	}
}

func TestFeatureUnavailableIsSentinel(t *testing.T) {
	if hasSIMDSupport() {
		t.Skip("host has AVX2+FMA, sentinel path not exercised by construction")
	}
	if _, err := NewKernel8(Forward); err != ErrFeatureUnavailable {
		t.Errorf("expected ErrFeatureUnavailable, got %v", err)
	}
	if _, err := NewSplitRadixSIMD(16, Forward, nil, nil); err != ErrFeatureUnavailable {
		t.Errorf("expected ErrFeatureUnavailable, got %v", err)
	}
}
