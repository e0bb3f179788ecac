package splitfft

// SplitComplex is a non-owning view of complex data stored as two parallel
// real-valued slices rather than interleaved pairs. The view does not own
// its backing storage; the caller does.
//
// Logical element i lives at slice index base+i*Stride of both Re and Im,
// where base is 0 for a positive stride and (N-1)*(-Stride) for a negative
// one. A negative stride therefore traverses the backing storage from its
// last used element toward its first, which is how a time-reversed vector
// is expressed without copying.
type SplitComplex[F Float] struct {
	Re []F
	Im []F

	// Stride is the distance in elements between consecutive logical
	// elements. It must not be zero.
	Stride int

	// N is the logical length of the vector.
	N int
}

// NewSplitComplex builds a view of n logical elements over re and im.
// Both slices must hold at least 1+(n-1)*|stride| elements.
func NewSplitComplex[F Float](re, im []F, stride, n int) (SplitComplex[F], error) {
	if re == nil || im == nil {
		return SplitComplex[F]{}, ErrNilVector
	}

	if stride == 0 {
		return SplitComplex[F]{}, ErrInvalidStride
	}

	if n < 1 {
		return SplitComplex[F]{}, ErrLengthMismatch
	}

	need := 1 + (n-1)*abs(stride)
	if len(re) < need || len(im) < need {
		return SplitComplex[F]{}, ErrLengthMismatch
	}

	return SplitComplex[F]{Re: re, Im: im, Stride: stride, N: n}, nil
}

// base returns the slice index of logical element 0.
func (v SplitComplex[F]) base() int {
	if v.Stride < 0 {
		return (v.N - 1) * -v.Stride
	}

	return 0
}

// At returns logical element i of the view.
func (v SplitComplex[F]) At(i int) (re, im F) {
	k := v.base() + i*v.Stride
	return v.Re[k], v.Im[k]
}

// SetAt stores logical element i of the view.
func (v SplitComplex[F]) SetAt(i int, re, im F) {
	k := v.base() + i*v.Stride
	v.Re[k] = re
	v.Im[k] = im
}

// Zero clears all logical elements of the view.
func (v SplitComplex[F]) Zero() {
	for i := range v.N {
		v.SetAt(i, 0, 0)
	}
}

// validate checks the view invariants shared by every operation that
// consumes a SplitComplex.
func (v SplitComplex[F]) validate() error {
	if v.Re == nil || v.Im == nil {
		return ErrNilVector
	}

	if v.Stride == 0 {
		return ErrInvalidStride
	}

	if v.N < 1 {
		return ErrLengthMismatch
	}

	need := 1 + (v.N-1)*abs(v.Stride)
	if len(v.Re) < need || len(v.Im) < need {
		return ErrLengthMismatch
	}

	return nil
}

// PackReal moves a real signal into the split layout expected by the real
// transforms: even-indexed samples into Re, odd-indexed samples into Im.
// The signal is read at the given element stride, consuming 2*dst.N
// samples. This is the split-representation equivalent of reinterpreting
// the signal as interleaved complex data.
func PackReal[F Float](signal []F, stride int, dst SplitComplex[F]) error {
	if err := dst.validate(); err != nil {
		return err
	}

	if signal == nil {
		return ErrNilVector
	}

	if stride == 0 {
		return ErrInvalidStride
	}

	count := 2 * dst.N

	base := 0
	if stride < 0 {
		base = (count - 1) * -stride
	}

	if len(signal) < 1+(count-1)*abs(stride) {
		return ErrLengthMismatch
	}

	for i := range dst.N {
		re := signal[base+(2*i)*stride]
		im := signal[base+(2*i+1)*stride]
		dst.SetAt(i, re, im)
	}

	return nil
}

// UnpackReal is the inverse of PackReal: it interleaves a split vector
// back into a flat sequence, Re elements at even positions and Im elements
// at odd positions, written at the given element stride.
func UnpackReal[F Float](src SplitComplex[F], dst []F, stride int) error {
	if err := src.validate(); err != nil {
		return err
	}

	if dst == nil {
		return ErrNilVector
	}

	if stride == 0 {
		return ErrInvalidStride
	}

	count := 2 * src.N

	base := 0
	if stride < 0 {
		base = (count - 1) * -stride
	}

	if len(dst) < 1+(count-1)*abs(stride) {
		return ErrLengthMismatch
	}

	for i := range src.N {
		re, im := src.At(i)
		dst[base+(2*i)*stride] = re
		dst[base+(2*i+1)*stride] = im
	}

	return nil
}

// Scale multiplies every logical element of v by factor. Useful for the
// 1/N normalization the transforms deliberately leave to the caller.
func Scale[F Float](v SplitComplex[F], factor F) {
	for i := range v.N {
		re, im := v.At(i)
		v.SetAt(i, re*factor, im*factor)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
