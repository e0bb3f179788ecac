// Package fftmath provides the integer and trigonometric building blocks
// for radix-2 transforms: power-of-two checks, bit-reversal permutations,
// and split cosine/sine twiddle tables.
package fftmath

import (
	"math"

	"github.com/cwbudde/splitfft/internal/fftypes"
)

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReversalIndices returns the bit-reversal permutation indices for a
// size-n radix-2 FFT.
func BitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// SplitTwiddles returns cosine and sine tables for the angles 2*pi*j/n,
// j = 0..n/2-1, in the split layout used by the transform engine.
// The values are computed in float64 and rounded once to F.
func SplitTwiddles[F fftypes.Float](n int) (cos, sin []F) {
	if n < 2 {
		return nil, nil
	}

	half := n / 2
	cos = make([]F, half)
	sin = make([]F, half)

	for j := range half {
		angle := 2 * math.Pi * float64(j) / float64(n)
		cos[j] = F(math.Cos(angle))
		sin[j] = F(math.Sin(angle))
	}

	return cos, sin
}
