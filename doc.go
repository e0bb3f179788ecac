// Package splitfft implements radix-2 fast Fourier transforms on the
// split (de-interleaved) complex representation, where complex data lives
// in two parallel real-valued arrays instead of interleaved pairs.
//
// A Plan precomputes the twiddle factors and bit-reversal permutation for
// one power-of-two size and is immutable afterwards; build it once and
// share it read-only across as many transform calls (and goroutines) as
// needed. Transforms are available complex-to-complex and real-to-complex,
// in place and out of place, over arbitrarily strided views.
//
// # Scaling convention
//
// Transforms are unnormalized in both directions: Forward produces the
// plain DFT sums, and Inverse(Forward(x)) yields N*x. The real transforms
// additionally carry a factor of 2 (their forward output is twice the
// mathematical half-spectrum, and the real round trip yields 2N*x).
// Skipping normalization keeps the hot loops free of a scaling pass; use
// Scale when an exact round trip is needed.
//
// The package also provides the direct-form convolution/correlation
// kernel Conv, analytic-spectrum verification helpers (Tone,
// ExpectedSpectrum, CompareRelativeError), and a small timing harness
// (TimeOperation, ConvGigaflops).
package splitfft
