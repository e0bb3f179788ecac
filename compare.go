package splitfft

import "math"

// Tone describes one analytically known sinusoid: a frequency expressed
// as a (usually integer) DFT bin index and a phase in radians.
type Tone struct {
	Frequency float64
	Phase     float64
}

// SynthesizeReal fills n samples of dst (at the given element stride)
// with a sum of unit-amplitude cosines, one per tone:
//
//	dst[i] = sum of cos(2*pi*i*f/n + phase)
//
// With distinct integer frequencies 0 < f < n/2 the packed real forward
// transform of this signal has exactly one non-negligible bin per tone,
// at index f, with value (n*cos(phase), n*sin(phase)).
func SynthesizeReal[F Float](dst []F, stride, n int, tones []Tone) {
	base := 0
	if stride < 0 {
		base = (n - 1) * -stride
	}

	for i := range n {
		acc := 0.0
		for _, tone := range tones {
			acc += math.Cos(2*math.Pi*float64(i)*tone.Frequency/float64(n) + tone.Phase)
		}

		dst[base+i*stride] = F(acc)
	}
}

// SynthesizeComplex fills v with a sum of complex exponentials, cosines
// into Re and sines into Im. The forward transform of this signal
// concentrates each tone entirely in bin round(f), even for f >= n/2.
func SynthesizeComplex[F Float](v SplitComplex[F], tones []Tone) {
	n := v.N

	for i := range n {
		re := 0.0
		im := 0.0

		for _, tone := range tones {
			angle := 2*math.Pi*float64(i)*tone.Frequency/float64(n) + tone.Phase
			re += math.Cos(angle)
			im += math.Sin(angle)
		}

		v.SetAt(i, F(re), F(im))
	}
}

// ExpectedSpectrum writes the analytically exact unnormalized spectrum of
// a tone sum of length n into v: all bins zero except bin round(f) of
// each tone, which receives (n*cos(phase), n*sin(phase)). v may be
// shorter than n when only the packed half spectrum is being checked.
func ExpectedSpectrum[F Float](v SplitComplex[F], n int, tones []Tone) {
	v.Zero()

	for _, tone := range tones {
		bin := int(math.Round(tone.Frequency))
		if bin < 0 || bin >= v.N {
			continue
		}

		re := float64(n) * math.Cos(tone.Phase)
		im := float64(n) * math.Sin(tone.Phase)
		v.SetAt(bin, F(re), F(im))
	}
}

// CompareRelativeError reports the relative root-mean-square error
// between two complex vectors over elements 0..length-1:
//
//	sqrt(sum |expected-observed|^2 / sum |expected|^2)
//
// Accumulation is in float64 regardless of F. This is a reporting
// operation only: it never fails, and judging the result against a
// threshold is the caller's business. A zero expected vector yields NaN
// (0/0) or +Inf, which propagate to the caller unjudged.
func CompareRelativeError[F Float](expected, observed SplitComplex[F], length int) float64 {
	var errSum, magSum float64

	for i := range length {
		er, ei := expected.At(i)
		or, oi := observed.At(i)

		re := float64(er)
		im := float64(ei)
		magSum += re*re + im*im

		re = float64(er) - float64(or)
		im = float64(ei) - float64(oi)
		errSum += re*re + im*im
	}

	return math.Sqrt(errSum / magSum)
}
