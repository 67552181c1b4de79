//go:build !amd64 || purego

package fft

// Off amd64 (or under purego), every fixed-size kernel constructor is
// unavailable: these are the AVX2+FMA fast paths, and there is no scalar
// substitute advertised under the same name (callers needing a length-8/16/
// 32/64 transform without SIMD build the same composition themselves from
// NewSplitRadix, NewButterfly4 and NewButterfly2, same as New/New64 do).

func NewKernel8(dir Direction) (Transform32, error)  { return nil, ErrFeatureUnavailable }
func NewKernel16(dir Direction) (Transform32, error) { return nil, ErrFeatureUnavailable }
func NewKernel32(dir Direction) (Transform32, error) { return nil, ErrFeatureUnavailable }
func NewKernel64(dir Direction) (Transform32, error) { return nil, ErrFeatureUnavailable }

func NewKernel8_64(dir Direction) (Transform64, error)  { return nil, ErrFeatureUnavailable }
func NewKernel16_64(dir Direction) (Transform64, error) { return nil, ErrFeatureUnavailable }
func NewKernel32_64(dir Direction) (Transform64, error) { return nil, ErrFeatureUnavailable }
func NewKernel64_64(dir Direction) (Transform64, error) { return nil, ErrFeatureUnavailable }
