package splitfft

import "time"

// TimeOperation runs op back to back the given number of iterations and
// returns the average wall-clock duration of one call, measured with the
// monotonic clock. The timed loop itself performs no allocation; ops that
// want clean numbers should reuse their buffers the same way.
//
// No correctness checking happens here; this is purely a timing utility.
func TimeOperation(op func(), iterations int) time.Duration {
	if iterations <= 0 {
		return 0
	}

	start := time.Now()

	for range iterations {
		op()
	}

	return time.Since(start) / time.Duration(iterations)
}

// ConvGigaflops converts an average per-call duration of a direct
// convolution into achieved gigaflops. Each output element costs
// filterLen multiplies and filterLen-1 adds, so one call performs
// resultLen*(2*filterLen-1) floating-point operations.
func ConvGigaflops(resultLen, filterLen int, perOp time.Duration) float64 {
	if perOp <= 0 {
		return 0
	}

	flops := float64(resultLen) * float64(2*filterLen-1)

	return flops / perOp.Seconds() * 1e-9
}
