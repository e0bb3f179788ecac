package splitfft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files.

func newUnitSplit[F Float](t *testing.T, n int) SplitComplex[F] {
	t.Helper()

	v, err := NewSplitComplex(make([]F, n), make([]F, n), 1, n)
	if err != nil {
		t.Fatalf("NewSplitComplex(n=%d) returned error: %v", n, err)
	}

	return v
}

func newStridedSplit[F Float](t *testing.T, n, stride int) SplitComplex[F] {
	t.Helper()

	size := 1 + (n-1)*abs(stride)

	v, err := NewSplitComplex(make([]F, size), make([]F, size), stride, n)
	if err != nil {
		t.Fatalf("NewSplitComplex(n=%d, stride=%d) returned error: %v", n, stride, err)
	}

	return v
}

func fillRandomSplit[F Float](v SplitComplex[F], seed int64) {
	rng := rand.New(rand.NewSource(seed))

	for i := range v.N {
		v.SetAt(i, F(rng.Float64()*2-1), F(rng.Float64()*2-1))
	}
}

func cloneSplit[F Float](t *testing.T, v SplitComplex[F]) SplitComplex[F] {
	t.Helper()

	out := newUnitSplit[F](t, v.N)
	copySplit(out, v)

	return out
}

// maxSplitDiff returns the largest absolute component difference between
// two vectors of equal length.
func maxSplitDiff[F Float](a, b SplitComplex[F]) float64 {
	maxDiff := 0.0

	for i := range a.N {
		ar, ai := a.At(i)
		br, bi := b.At(i)

		if d := math.Abs(float64(ar) - float64(br)); d > maxDiff {
			maxDiff = d
		}

		if d := math.Abs(float64(ai) - float64(bi)); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}

func assertSplitClose[F Float](t *testing.T, got, want SplitComplex[F], tol float64, context string) {
	t.Helper()

	if got.N != want.N {
		t.Fatalf("%s: length mismatch: got %d, want %d", context, got.N, want.N)
	}

	for i := range want.N {
		gr, gi := got.At(i)
		wr, wi := want.At(i)

		dr := math.Abs(float64(gr) - float64(wr))
		di := math.Abs(float64(gi) - float64(wi))

		if dr > tol || di > tol {
			t.Fatalf("%s: element %d: got (%v, %v), want (%v, %v), tol %v",
				context, i, gr, gi, wr, wi, tol)
		}
	}
}

func assertApproxf(t *testing.T, got, want, tol float64, context string) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %v, want %v (diff %v > tol %v)", context, got, want, math.Abs(got-want), tol)
	}
}
