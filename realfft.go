package splitfft

// The real transforms operate on n real samples stored as a split vector
// of n/2 elements (even samples in Re, odd samples in Im; see PackReal).
// The forward output is the packed real spectrum: bins 1..n/2-1 in their
// natural slots, the DC bin's real part in Re[0], and the always-real
// Nyquist bin folded into Im[0]. Hermitian symmetry makes the upper half
// of the full spectrum redundant, so nothing is lost.
//
// The forward output is twice the mathematical half-spectrum (a unit cosine at bin f with phase phi
// produces (N*cos(phi), N*sin(phi)) at bin f), and the forward/inverse
// round trip multiplies the signal by 2N.

// ForwardReal computes the in-place packed real forward transform of v,
// which must hold n/2 split elements for a plan of size n.
func (p *Plan[F]) ForwardReal(v SplitComplex[F]) error {
	if err := p.checkReal(v); err != nil {
		return err
	}

	p.forwardRealInPlace(v)

	return nil
}

// ForwardRealOut computes the packed real forward transform of src into
// dst without mutating src. dst and src must not alias.
func (p *Plan[F]) ForwardRealOut(dst, src SplitComplex[F]) error {
	if err := p.checkReal(src); err != nil {
		return err
	}

	if err := p.checkReal(dst); err != nil {
		return err
	}

	copySplit(dst, src)
	p.forwardRealInPlace(dst)

	return nil
}

// InverseReal transforms a packed real spectrum back into the split
// signal layout, in place. Combined with ForwardReal the round trip
// yields 2N times the original samples; callers wanting the exact signal
// scale by 1/(2N).
func (p *Plan[F]) InverseReal(v SplitComplex[F]) error {
	if err := p.checkReal(v); err != nil {
		return err
	}

	h := p.n / 2

	// Undo the forward recombination. The 2x forward convention is kept
	// rather than cancelled, which is where the round-trip factor of 2N
	// comes from.
	p0r, p0i := v.At(0)
	v.SetAt(0, p0r+p0i, p0r-p0i)

	for k := 1; k < h-k; k++ {
		ar, ai := v.At(k)
		br, bi := v.At(h - k)

		c := p.cos[k]
		s := p.sin[k]

		sr := ar + br
		si := ai - bi
		dr := ar - br
		di := ai + bi

		tr := c*di + s*dr
		ti := c*dr - s*di

		v.SetAt(k, sr-tr, si+ti)
		v.SetAt(h-k, sr+tr, -si+ti)
	}

	if h >= 2 {
		mr, mi := v.At(h / 2)
		v.SetAt(h/2, 2*mr, -2*mi)
	}

	p.radix2(v.Re, v.Im, v.base(), v.Stride, h, p.bitrevHalf, true)

	return nil
}

// forwardRealInPlace runs the half-size complex transform and then
// recombines the result into the packed spectrum. For bin k the full
// spectrum is X[k] = E[k] + W^k*O[k] with E/O the even/odd sub-spectra;
// the loop evaluates 2*X[k] = (Z[k]+conj(Z[h-k])) - i*W^k*(Z[k]-conj(Z[h-k]))
// for the pair (k, h-k) at once. W^k = e^(-2*pi*i*k/n) is exactly entry k
// of the plan's twiddle tables.
func (p *Plan[F]) forwardRealInPlace(v SplitComplex[F]) {
	h := p.n / 2

	p.radix2(v.Re, v.Im, v.base(), v.Stride, h, p.bitrevHalf, false)

	z0r, z0i := v.At(0)
	v.SetAt(0, 2*(z0r+z0i), 2*(z0r-z0i))

	for k := 1; k < h-k; k++ {
		ar, ai := v.At(k)
		br, bi := v.At(h - k)

		c := p.cos[k]
		s := p.sin[k]

		sr := ar + br
		si := ai - bi
		dr := ar - br
		di := ai + bi

		tr := c*di - s*dr
		ti := c*dr + s*di

		v.SetAt(k, sr+tr, si-ti)
		v.SetAt(h-k, sr-tr, -si-ti)
	}

	// Self-conjugate middle bin: 2*X[h/2] = 2*conj(Z[h/2]).
	if h >= 2 {
		mr, mi := v.At(h / 2)
		v.SetAt(h/2, 2*mr, -2*mi)
	}
}
