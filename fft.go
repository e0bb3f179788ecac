package splitfft

// Forward computes the in-place forward DFT of v, which must have length
// equal to the plan size. The output is the unnormalized DFT: no 1/N
// scaling is applied in either direction, so Inverse(Forward(x)) yields
// N*x. Callers needing an exact round trip scale by 1/N themselves (see
// Scale).
func (p *Plan[F]) Forward(v SplitComplex[F]) error {
	if err := p.checkComplex(v); err != nil {
		return err
	}

	p.radix2(v.Re, v.Im, v.base(), v.Stride, p.n, p.bitrev, false)

	return nil
}

// Inverse computes the in-place inverse DFT of v. Like Forward it applies
// no scaling; the result is N times the mathematical inverse.
func (p *Plan[F]) Inverse(v SplitComplex[F]) error {
	if err := p.checkComplex(v); err != nil {
		return err
	}

	p.radix2(v.Re, v.Im, v.base(), v.Stride, p.n, p.bitrev, true)

	return nil
}

// ForwardOut computes the forward DFT of src into dst without mutating
// src. dst and src must not alias; aliasing is a documented precondition
// violation, not a checked error.
func (p *Plan[F]) ForwardOut(dst, src SplitComplex[F]) error {
	return p.transformOut(dst, src, false)
}

// InverseOut computes the unnormalized inverse DFT of src into dst
// without mutating src. dst and src must not alias.
func (p *Plan[F]) InverseOut(dst, src SplitComplex[F]) error {
	return p.transformOut(dst, src, true)
}

func (p *Plan[F]) transformOut(dst, src SplitComplex[F], inverse bool) error {
	if err := p.checkComplex(src); err != nil {
		return err
	}

	if err := p.checkComplex(dst); err != nil {
		return err
	}

	copySplit(dst, src)
	p.radix2(dst.Re, dst.Im, dst.base(), dst.Stride, p.n, p.bitrev, inverse)

	return nil
}

// radix2 runs the in-place radix-2 decimation-in-time transform of m
// elements addressed as base+i*stride. Elements are first permuted into
// bit-reversed order, then combined over log2(m) butterfly stages.
//
// The twiddle tables are indexed at step p.n/(2*span) per butterfly: the
// angle needed at stage span is pi*j/span = 2*pi*(j*n/(2*span))/n, which
// is independent of m. The same full-size tables therefore also serve the
// half-size transform the real FFT runs.
func (p *Plan[F]) radix2(re, im []F, base, stride, m int, bitrev []int, inverse bool) {
	for i, j := range bitrev {
		if j > i {
			ii := base + i*stride
			jj := base + j*stride
			re[ii], re[jj] = re[jj], re[ii]
			im[ii], im[jj] = im[jj], im[ii]
		}
	}

	for span := 1; span < m; span <<= 1 {
		step := p.n / (span << 1)

		for start := 0; start < m; start += span << 1 {
			tw := 0

			for j := start; j < start+span; j++ {
				wr := p.cos[tw]
				wi := p.sin[tw]
				if !inverse {
					wi = -wi
				}

				a := base + j*stride
				b := a + span*stride

				tr := wr*re[b] - wi*im[b]
				ti := wr*im[b] + wi*re[b]

				re[b] = re[a] - tr
				im[b] = im[a] - ti
				re[a] += tr
				im[a] += ti

				tw += step
			}
		}
	}
}

// copySplit copies src's logical elements into dst. Lengths must already
// be validated equal.
func copySplit[F Float](dst, src SplitComplex[F]) {
	for i := range src.N {
		re, im := src.At(i)
		dst.SetAt(i, re, im)
	}
}
