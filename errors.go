package splitfft

import "errors"

// Sentinel errors returned by plan construction and transform operations.
var (
	// ErrInvalidLength is returned when the transform size is not valid.
	// The length must be a power of 2 with 2 <= n <= 1<<24.
	ErrInvalidLength = errors.New("splitfft: invalid FFT length")

	// ErrNilVector is returned when a vector with nil backing storage is
	// passed to a transform or pack operation.
	ErrNilVector = errors.New("splitfft: nil vector storage")

	// ErrLengthMismatch is returned when a vector's length disagrees with
	// the plan size, or backing storage is too short for length and stride.
	ErrLengthMismatch = errors.New("splitfft: vector length mismatch")

	// ErrInvalidStride is returned when a zero stride is supplied. A zero
	// stride would make every access alias the same element.
	ErrInvalidStride = errors.New("splitfft: invalid stride")
)
