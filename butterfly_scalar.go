package fft

// Scalar leaf butterflies, sizes 2 and 4, per spec section 4.5. These seed
// the split-radix recursion and carry no SIMD requirement, so they are
// always constructible. Ported from the radix-2 combination structure in
// RustFFT's column_butterfly4_avx_f32 macro (original_source/src/algorithm/
// split_radix.rs), stripped of vectorization, which is itself the same
// radix-4-via-two-radix-2s shape as llehouerou-go-aac's passf4pos/neg
// (internal/fft/cfft.go).

type butterfly2_32 struct{ dir Direction }

// NewButterfly2 returns the 2-point scalar leaf transform.
func NewButterfly2(dir Direction) Transform32 { return butterfly2_32{dir: dir} }

func (b butterfly2_32) Len() int                { return 2 }
func (b butterfly2_32) Direction() Direction    { return b.dir }
func (b butterfly2_32) InplaceScratchLen() int  { return 0 }
func (b butterfly2_32) OutOfPlaceScratchLen() int { return 0 }

func (b butterfly2_32) ProcessInPlace(buf, scratch []complex64) error {
	if err := checkLen("Butterfly2.ProcessInPlace", len(buf), 2); err != nil {
		return err
	}
	x0, x1 := buf[0], buf[1]
	buf[0] = x0 + x1
	buf[1] = x0 - x1
	return nil
}

func (b butterfly2_32) ProcessOutOfPlace(input, output, scratch []complex64) error {
	if err := checkLen("Butterfly2.ProcessOutOfPlace", len(input), 2); err != nil {
		return err
	}
	if err := checkLen("Butterfly2.ProcessOutOfPlace", len(output), 2); err != nil {
		return err
	}
	x0, x1 := input[0], input[1]
	output[0] = x0 + x1
	output[1] = x0 - x1
	return nil
}

func (b butterfly2_32) ProcessInPlaceBatch(buf, scratch []complex64) error {
	if err := checkBatch("Butterfly2.ProcessInPlaceBatch", len(buf), 2); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += 2 {
		if err := b.ProcessInPlace(buf[off:off+2], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (b butterfly2_32) ProcessOutOfPlaceBatch(input, output, scratch []complex64) error {
	if err := checkBatch("Butterfly2.ProcessOutOfPlaceBatch", len(input), 2); err != nil {
		return err
	}
	if err := checkLen("Butterfly2.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += 2 {
		if err := b.ProcessOutOfPlace(input[off:off+2], output[off:off+2], scratch); err != nil {
			return err
		}
	}
	return nil
}

type butterfly4_32 struct{ dir Direction }

// NewButterfly4 returns the 4-point scalar leaf transform.
func NewButterfly4(dir Direction) Transform32 { return butterfly4_32{dir: dir} }

func (b butterfly4_32) Len() int                { return 4 }
func (b butterfly4_32) Direction() Direction    { return b.dir }
func (b butterfly4_32) InplaceScratchLen() int  { return 0 }
func (b butterfly4_32) OutOfPlaceScratchLen() int { return 0 }

func butterfly4Core32(x0, x1, x2, x3 complex64, dir Direction) (complex64, complex64, complex64, complex64) {
	mid0 := x0 + x2
	mid2 := x0 - x2
	mid1 := x1 + x3
	mid3 := rotate90_32(x1-x3, dir)
	return mid0 + mid1, mid2 + mid3, mid0 - mid1, mid2 - mid3
}

func (b butterfly4_32) ProcessInPlace(buf, scratch []complex64) error {
	if err := checkLen("Butterfly4.ProcessInPlace", len(buf), 4); err != nil {
		return err
	}
	buf[0], buf[1], buf[2], buf[3] = butterfly4Core32(buf[0], buf[1], buf[2], buf[3], b.dir)
	return nil
}

func (b butterfly4_32) ProcessOutOfPlace(input, output, scratch []complex64) error {
	if err := checkLen("Butterfly4.ProcessOutOfPlace", len(input), 4); err != nil {
		return err
	}
	if err := checkLen("Butterfly4.ProcessOutOfPlace", len(output), 4); err != nil {
		return err
	}
	output[0], output[1], output[2], output[3] = butterfly4Core32(input[0], input[1], input[2], input[3], b.dir)
	return nil
}

func (b butterfly4_32) ProcessInPlaceBatch(buf, scratch []complex64) error {
	if err := checkBatch("Butterfly4.ProcessInPlaceBatch", len(buf), 4); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += 4 {
		if err := b.ProcessInPlace(buf[off:off+4], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (b butterfly4_32) ProcessOutOfPlaceBatch(input, output, scratch []complex64) error {
	if err := checkBatch("Butterfly4.ProcessOutOfPlaceBatch", len(input), 4); err != nil {
		return err
	}
	if err := checkLen("Butterfly4.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += 4 {
		if err := b.ProcessOutOfPlace(input[off:off+4], output[off:off+4], scratch); err != nil {
			return err
		}
	}
	return nil
}

// --- complex128 mirrors ---

type butterfly2_64 struct{ dir Direction }

// NewButterfly2_64 returns the double-precision 2-point scalar leaf transform.
func NewButterfly2_64(dir Direction) Transform64 { return butterfly2_64{dir: dir} }

func (b butterfly2_64) Len() int                  { return 2 }
func (b butterfly2_64) Direction() Direction      { return b.dir }
func (b butterfly2_64) InplaceScratchLen() int    { return 0 }
func (b butterfly2_64) OutOfPlaceScratchLen() int { return 0 }

func (b butterfly2_64) ProcessInPlace(buf, scratch []complex128) error {
	if err := checkLen("Butterfly2.ProcessInPlace", len(buf), 2); err != nil {
		return err
	}
	x0, x1 := buf[0], buf[1]
	buf[0] = x0 + x1
	buf[1] = x0 - x1
	return nil
}

func (b butterfly2_64) ProcessOutOfPlace(input, output, scratch []complex128) error {
	if err := checkLen("Butterfly2.ProcessOutOfPlace", len(input), 2); err != nil {
		return err
	}
	if err := checkLen("Butterfly2.ProcessOutOfPlace", len(output), 2); err != nil {
		return err
	}
	x0, x1 := input[0], input[1]
	output[0] = x0 + x1
	output[1] = x0 - x1
	return nil
}

func (b butterfly2_64) ProcessInPlaceBatch(buf, scratch []complex128) error {
	if err := checkBatch("Butterfly2.ProcessInPlaceBatch", len(buf), 2); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += 2 {
		if err := b.ProcessInPlace(buf[off:off+2], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (b butterfly2_64) ProcessOutOfPlaceBatch(input, output, scratch []complex128) error {
	if err := checkBatch("Butterfly2.ProcessOutOfPlaceBatch", len(input), 2); err != nil {
		return err
	}
	if err := checkLen("Butterfly2.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += 2 {
		if err := b.ProcessOutOfPlace(input[off:off+2], output[off:off+2], scratch); err != nil {
			return err
		}
	}
	return nil
}

type butterfly4_64 struct{ dir Direction }

// NewButterfly4_64 returns the double-precision 4-point scalar leaf transform.
func NewButterfly4_64(dir Direction) Transform64 { return butterfly4_64{dir: dir} }

func (b butterfly4_64) Len() int                  { return 4 }
func (b butterfly4_64) Direction() Direction      { return b.dir }
func (b butterfly4_64) InplaceScratchLen() int    { return 0 }
func (b butterfly4_64) OutOfPlaceScratchLen() int { return 0 }

func butterfly4Core64(x0, x1, x2, x3 complex128, dir Direction) (complex128, complex128, complex128, complex128) {
	mid0 := x0 + x2
	mid2 := x0 - x2
	mid1 := x1 + x3
	mid3 := rotate90_64(x1-x3, dir)
	return mid0 + mid1, mid2 + mid3, mid0 - mid1, mid2 - mid3
}

func (b butterfly4_64) ProcessInPlace(buf, scratch []complex128) error {
	if err := checkLen("Butterfly4.ProcessInPlace", len(buf), 4); err != nil {
		return err
	}
	buf[0], buf[1], buf[2], buf[3] = butterfly4Core64(buf[0], buf[1], buf[2], buf[3], b.dir)
	return nil
}

func (b butterfly4_64) ProcessOutOfPlace(input, output, scratch []complex128) error {
	if err := checkLen("Butterfly4.ProcessOutOfPlace", len(input), 4); err != nil {
		return err
	}
	if err := checkLen("Butterfly4.ProcessOutOfPlace", len(output), 4); err != nil {
		return err
	}
	output[0], output[1], output[2], output[3] = butterfly4Core64(input[0], input[1], input[2], input[3], b.dir)
	return nil
}

func (b butterfly4_64) ProcessInPlaceBatch(buf, scratch []complex128) error {
	if err := checkBatch("Butterfly4.ProcessInPlaceBatch", len(buf), 4); err != nil {
		return err
	}
	for off := 0; off < len(buf); off += 4 {
		if err := b.ProcessInPlace(buf[off:off+4], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (b butterfly4_64) ProcessOutOfPlaceBatch(input, output, scratch []complex128) error {
	if err := checkBatch("Butterfly4.ProcessOutOfPlaceBatch", len(input), 4); err != nil {
		return err
	}
	if err := checkLen("Butterfly4.ProcessOutOfPlaceBatch", len(output), len(input)); err != nil {
		return err
	}
	for off := 0; off < len(input); off += 4 {
		if err := b.ProcessOutOfPlace(input[off:off+4], output[off:off+4], scratch); err != nil {
			return err
		}
	}
	return nil
}
