package splitfft

// Conv computes a direct-form sliding dot product of a signal with a
// filter:
//
//	result[i] = sum over j of signal[(i+j)*signalStride] * filter[j*filterStride]
//
// for i in [0, resultLen) and j in [0, filterLen), with every access
// offset so that a negative stride walks its array from the last used
// element toward the first. With a positive filter stride this is
// correlation; passing a negative filter stride runs the filter backward
// and therefore performs true convolution (correlation with the reversed
// kernel equals convolution).
//
// Preconditions are documented rather than checked:
//
//   - the signal must hold at least resultLen+filterLen-1 valid samples
//     at its stride; reading past that is out of bounds
//   - all strides must be nonzero
//   - result must not alias signal or filter
//
// Complexity is O(resultLen*filterLen). This is the direct baseline an
// FFT-based fast convolution would be measured against, not a fast path.
func Conv[F Float](signal []F, signalStride int, filter []F, filterStride int, result []F, resultStride int, resultLen, filterLen int) {
	sbase := 0
	if signalStride < 0 {
		sbase = (resultLen + filterLen - 2) * -signalStride
	}

	fbase := 0
	if filterStride < 0 {
		fbase = (filterLen - 1) * -filterStride
	}

	rbase := 0
	if resultStride < 0 {
		rbase = (resultLen - 1) * -resultStride
	}

	for i := range resultLen {
		var sum F

		si := sbase + i*signalStride
		fi := fbase

		for j := 0; j < filterLen; j++ {
			sum += signal[si] * filter[fi]
			si += signalStride
			fi += filterStride
		}

		result[rbase+i*resultStride] = sum
	}
}
