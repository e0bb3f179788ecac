package splitfft

import vecmath "github.com/cwbudde/algo-vecmath"

// MagnitudeSpectrum writes sqrt(Re[i]^2+Im[i]^2) for each element of v
// into dst. The block operations run over contiguous storage, so v must
// have unit stride.
func MagnitudeSpectrum(dst []float64, v SplitComplex[float64]) error {
	if err := v.validate(); err != nil {
		return err
	}

	if v.Stride != 1 {
		return ErrInvalidStride
	}

	if len(dst) < v.N {
		return ErrLengthMismatch
	}

	vecmath.Magnitude(dst[:v.N], v.Re[:v.N], v.Im[:v.N])

	return nil
}

// PowerSpectrum writes Re[i]^2+Im[i]^2 for each element of v into dst.
// v must have unit stride.
func PowerSpectrum(dst []float64, v SplitComplex[float64]) error {
	if err := v.validate(); err != nil {
		return err
	}

	if v.Stride != 1 {
		return ErrInvalidStride
	}

	if len(dst) < v.N {
		return ErrLengthMismatch
	}

	vecmath.Power(dst[:v.N], v.Re[:v.N], v.Im[:v.N])

	return nil
}
