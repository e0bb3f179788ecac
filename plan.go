package splitfft

import "github.com/cwbudde/splitfft/internal/fftmath"

// maxLog2 bounds the supported transform sizes. 2^24 complex elements is
// far beyond what a single-threaded radix-2 pass handles sensibly.
const maxLog2 = 24

// Plan holds the precomputed state for transforms of one size: cosine and
// sine twiddle tables and the bit-reversal permutations. A Plan built for
// n serves complex transforms of length n and real transforms of n real
// samples (split vectors of length n/2).
//
// A Plan is immutable after construction and may be shared read-only
// between goroutines. The buffers passed to individual calls must not be
// shared during a call; that contract is the caller's.
type Plan[F Float] struct {
	n     int
	log2n int

	// cos[j], sin[j] hold cos/sin(2*pi*j/n) for j < n/2. Every butterfly
	// stage indexes these at a stage-dependent step, so one table pair
	// serves all stages, including those of the half-size transform used
	// by the real FFT.
	cos []F
	sin []F

	bitrev     []int // permutation for length n
	bitrevHalf []int // permutation for length n/2, real transforms
}

// NewPlan precomputes the twiddle tables and bit-reversal permutation for
// transforms of size n. n must be a power of two, 2 <= n <= 1<<24;
// anything else returns ErrInvalidLength.
func NewPlan[F Float](n int) (*Plan[F], error) {
	if n < 2 || n > 1<<maxLog2 || !fftmath.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	cos, sin := fftmath.SplitTwiddles[F](n)

	return &Plan[F]{
		n:          n,
		log2n:      fftmath.Log2(n),
		cos:        cos,
		sin:        sin,
		bitrev:     fftmath.BitReversalIndices(n),
		bitrevHalf: fftmath.BitReversalIndices(n / 2),
	}, nil
}

// Len returns the transform size the plan was built for.
func (p *Plan[F]) Len() int {
	return p.n
}

// Log2Len returns the base-2 logarithm of the transform size.
func (p *Plan[F]) Log2Len() int {
	return p.log2n
}

// checkComplex validates a vector for the full-length complex transforms.
func (p *Plan[F]) checkComplex(v SplitComplex[F]) error {
	if err := v.validate(); err != nil {
		return err
	}

	if v.N != p.n {
		return ErrLengthMismatch
	}

	return nil
}

// checkReal validates a vector for the packed real transforms, which
// operate on n/2 split elements.
func (p *Plan[F]) checkReal(v SplitComplex[F]) error {
	if err := v.validate(); err != nil {
		return err
	}

	if v.N != p.n/2 {
		return ErrLengthMismatch
	}

	return nil
}
