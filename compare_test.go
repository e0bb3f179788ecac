package splitfft

import (
	"math"
	"testing"
)

func TestCompareRelativeErrorIdentical(t *testing.T) {
	t.Parallel()

	v := newUnitSplit[float64](t, 16)
	fillRandomSplit(v, 1)

	if rel := CompareRelativeError(v, v, v.N); rel != 0 {
		t.Errorf("CompareRelativeError(v, v) = %g, want 0", rel)
	}
}

func TestCompareRelativeErrorKnownValue(t *testing.T) {
	t.Parallel()

	expected := newUnitSplit[float64](t, 2)
	observed := newUnitSplit[float64](t, 2)

	// |expected|^2 sums to 25, the error vector to 1, so the relative
	// error is sqrt(1/25) = 0.2.
	expected.SetAt(0, 3, 0)
	expected.SetAt(1, 0, 4)
	observed.SetAt(0, 3, 1)
	observed.SetAt(1, 0, 4)

	assertApproxf(t, CompareRelativeError(expected, observed, 2), 0.2, 1e-15, "relative error")
}

func TestCompareRelativeErrorZeroExpected(t *testing.T) {
	t.Parallel()

	expected := newUnitSplit[float64](t, 4)
	observed := newUnitSplit[float64](t, 4)

	// 0/0: the comparison reports, it does not judge.
	if rel := CompareRelativeError(expected, observed, 4); !math.IsNaN(rel) {
		t.Errorf("CompareRelativeError(0, 0) = %g, want NaN", rel)
	}

	observed.SetAt(0, 1, 0)

	if rel := CompareRelativeError(expected, observed, 4); !math.IsInf(rel, 1) {
		t.Errorf("CompareRelativeError(0, x) = %g, want +Inf", rel)
	}
}

func TestSynthesizeRealSingleTone(t *testing.T) {
	t.Parallel()

	const n = 8

	dst := make([]float64, n)
	SynthesizeReal(dst, 1, n, []Tone{{Frequency: 1, Phase: 0}})

	for i := range n {
		want := math.Cos(2 * math.Pi * float64(i) / n)
		assertApproxf(t, dst[i], want, 1e-15, "sample")
	}
}

func TestSynthesizeRealNegativeStride(t *testing.T) {
	t.Parallel()

	const n = 8

	forward := make([]float64, n)
	backward := make([]float64, n)

	tones := []Tone{{Frequency: 2, Phase: 0.3}}

	SynthesizeReal(forward, 1, n, tones)
	SynthesizeReal(backward, -1, n, tones)

	for i := range n {
		assertApproxf(t, backward[n-1-i], forward[i], 0, "reversed sample")
	}
}

func TestExpectedSpectrumPlacesBins(t *testing.T) {
	t.Parallel()

	const n = 64

	v := newUnitSplit[float64](t, n/2)
	fillRandomSplit(v, 9) // ExpectedSpectrum must clear this

	tones := []Tone{
		{Frequency: 5, Phase: 0},
		{Frequency: 11, Phase: math.Pi / 2},
		{Frequency: 40, Phase: 0}, // beyond the half spectrum, skipped
	}

	ExpectedSpectrum(v, n, tones)

	for i := range v.N {
		re, im := v.At(i)

		switch i {
		case 5:
			assertApproxf(t, re, n, 1e-12, "bin 5 re")
			assertApproxf(t, im, 0, 1e-12, "bin 5 im")
		case 11:
			assertApproxf(t, re, 0, 1e-12, "bin 11 re")
			assertApproxf(t, im, n, 1e-12, "bin 11 im")
		default:
			if re != 0 || im != 0 {
				t.Fatalf("bin %d = (%v, %v), want zero", i, re, im)
			}
		}
	}
}
