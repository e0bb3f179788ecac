// Package fftypes holds the numeric type constraints shared by the public
// API and the internal packages.
package fftypes

// Float is the constraint for sample types supported by the transforms.
type Float interface {
	~float32 | ~float64
}
