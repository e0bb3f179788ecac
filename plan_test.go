package splitfft

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewPlanInvalidSizes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-4, 0, 1, 3, 100, 1000, 1<<24 + 1, 1 << 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			if _, err := NewPlan[float64](n); !errors.Is(err, ErrInvalidLength) {
				t.Fatalf("NewPlan(%d) error = %v, want ErrInvalidLength", n, err)
			}
		})
	}
}

func TestNewPlanValidSizes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 1024, 1 << 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			plan, err := NewPlan[float64](n)
			if err != nil {
				t.Fatalf("NewPlan(%d) returned error: %v", n, err)
			}

			if plan.Len() != n {
				t.Errorf("Len() = %d, want %d", plan.Len(), n)
			}

			if 1<<plan.Log2Len() != n {
				t.Errorf("Log2Len() = %d, want log2(%d)", plan.Log2Len(), n)
			}
		})
	}
}

func TestPlanRejectsMismatchedVector(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[float64](8)
	if err != nil {
		t.Fatalf("NewPlan(8) returned error: %v", err)
	}

	short := newUnitSplit[float64](t, 4)
	if err := plan.Forward(short); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Forward(len 4) error = %v, want ErrLengthMismatch", err)
	}

	// The real transforms expect n/2 split elements.
	full := newUnitSplit[float64](t, 8)
	if err := plan.ForwardReal(full); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("ForwardReal(len 8) error = %v, want ErrLengthMismatch", err)
	}

	half := newUnitSplit[float64](t, 4)
	if err := plan.ForwardReal(half); err != nil {
		t.Errorf("ForwardReal(len 4) returned error: %v", err)
	}
}

func TestPlanRejectsZeroStride(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[float64](8)
	if err != nil {
		t.Fatalf("NewPlan(8) returned error: %v", err)
	}

	v := SplitComplex[float64]{
		Re:     make([]float64, 8),
		Im:     make([]float64, 8),
		Stride: 0,
		N:      8,
	}

	if err := plan.Forward(v); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("Forward(stride 0) error = %v, want ErrInvalidStride", err)
	}

	if err := plan.Inverse(v); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("Inverse(stride 0) error = %v, want ErrInvalidStride", err)
	}
}

func TestPlanRejectsNilStorage(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[float64](8)
	if err != nil {
		t.Fatalf("NewPlan(8) returned error: %v", err)
	}

	v := SplitComplex[float64]{Re: nil, Im: make([]float64, 8), Stride: 1, N: 8}
	if err := plan.Forward(v); !errors.Is(err, ErrNilVector) {
		t.Errorf("Forward(nil re) error = %v, want ErrNilVector", err)
	}
}
