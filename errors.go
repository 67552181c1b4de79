package fft

import "fmt"

// Code identifies the kind of contract violation an Error reports.
//
// Ported in spirit from llehouerou-go-aac's errors.go: a small typed code
// plus a message table, rather than ad-hoc error strings scattered through
// the package.
type Code int

const (
	// ErrLengthMismatch means an input, output, or buffer slice did not
	// have exactly the transform's declared length.
	ErrLengthMismatch Code = iota + 1
	// ErrScratchTooSmall means the supplied scratch slice was shorter than
	// the transform's advertised scratch requirement.
	ErrScratchTooSmall
	// ErrBatchTooSmall means a batched call's buffer length was not an
	// integer multiple of the transform's length.
	ErrBatchTooSmall
	// ErrInnerMismatch means two inner transform handles passed to a
	// split-radix constructor are inconsistent (length ratio or direction).
	ErrInnerMismatch
	// ErrBadLength means a constructor received a length its algorithm
	// cannot handle (e.g. split-radix SIMD with N not divisible by 16).
	ErrBadLength
)

var codeMessages = map[Code]string{
	ErrLengthMismatch:  "length mismatch",
	ErrScratchTooSmall: "scratch buffer too small",
	ErrBatchTooSmall:   "batch length is not a multiple of the transform length",
	ErrInnerMismatch:   "inner transform handles are inconsistent",
	ErrBadLength:       "length unsupported by this algorithm",
}

func (c Code) String() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "unknown fft error"
}

// Error reports a contract violation: a fatal, non-recoverable programming
// error per spec (wrong-sized buffers, incompatible inner transforms, an
// unsupported length at construction time). It is returned, never panicked,
// so the caller decides how to surface "abort with a diagnostic".
type Error struct {
	Code     Code
	Op       string // operation that detected the violation, e.g. "ProcessInPlace"
	Expected int
	Observed int
}

func (e *Error) Error() string {
	if e.Expected == 0 && e.Observed == 0 {
		return fmt.Sprintf("fft: %s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("fft: %s: %s: expected %d, got %d", e.Op, e.Code, e.Expected, e.Observed)
}

// featureError is the recoverable error returned by a SIMD constructor when
// the host lacks the required CPU features. Callers are expected to fall
// back to a scalar equivalent, per spec section 7.
type featureError struct {
	feature string
}

func (e *featureError) Error() string {
	return fmt.Sprintf("fft: required CPU feature unavailable: %s", e.feature)
}

// ErrFeatureUnavailable is returned by SIMD constructors (NewKernel8,
// NewKernel16, NewKernel32, NewKernel64, NewSplitRadixSIMD, and their
// complex128 counterparts) when the host does not have both 256-bit AVX2
// and FMA. It is a sentinel value: compare with errors.Is.
var ErrFeatureUnavailable = &featureError{feature: "avx2+fma"}
