// Command benchfft verifies the transforms against analytically known
// spectra and reports their throughput: the four FFT variants (real and
// complex, in place and out of place), the direct convolution kernel, and
// a DTMF detection round.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/cwbudde/splitfft"
	"github.com/cwbudde/splitfft/dtmf"
	"github.com/cwbudde/splitfft/internal/cpu"
)

func main() {
	var (
		log2n = flag.Int("log2n", 10, "base-two logarithm of the FFT length")
		iters = flag.Int("iters", 10000, "iterations in each timing loop")
		keys  = flag.String("keys", "159D", "telephone keys for the DTMF demo")
		seed  = flag.Int64("seed", 1, "rng seed for the DTMF demo")
	)
	flag.Parse()

	fmt.Printf("cpu: %s\n", cpu.DetectFeatures())

	if err := run(*log2n, *iters, *keys, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(log2n, iters int, keys string, seed int64) error {
	if log2n < 1 || log2n > 24 {
		return fmt.Errorf("log2n %d out of range: %w", log2n, splitfft.ErrInvalidLength)
	}

	n := 1 << log2n

	plan, err := splitfft.NewPlan[float32](n)
	if err != nil {
		return err
	}

	demoForwardReal(plan, iters)
	demoForwardRealOut(plan, iters)
	demoComplex(plan, iters)
	demoComplexOut(plan, iters)
	demoConvolution(iters)

	return demoDTMF(keys, seed)
}

func micro(d float64) float64 {
	return d * 1e6
}

// demoForwardReal exercises the in-place packed real FFT: verify one
// transform against the analytic spectrum, then time the bare transform
// and the pack+transform+unpack combination.
func demoForwardReal(plan *splitfft.Plan[float32], iters int) {
	n := plan.Len()
	half := n / 2

	fmt.Printf("\nOne-dimensional real FFT of %d elements, in place.\n", n)

	tones := []splitfft.Tone{
		{Frequency: 79, Phase: 0},
		{Frequency: 296, Phase: 0.2 * 2 * math.Pi},
		{Frequency: 143, Phase: 0.6 * 2 * math.Pi},
	}

	signal := make([]float32, n)
	splitfft.SynthesizeReal(signal, 1, n, tones)

	observed, err := splitfft.NewSplitComplex(make([]float32, half), make([]float32, half), 1, half)
	if err != nil {
		panic(err)
	}

	if err := splitfft.PackReal(signal, 1, observed); err != nil {
		panic(err)
	}

	if err := plan.ForwardReal(observed); err != nil {
		panic(err)
	}

	expected, err := splitfft.NewSplitComplex(make([]float32, half), make([]float32, half), 1, half)
	if err != nil {
		panic(err)
	}

	splitfft.ExpectedSpectrum(expected, n, tones)

	fmt.Printf("\trelative error in observed result is %g.\n",
		splitfft.CompareRelativeError(expected, observed, half))

	// Zero the signal before timing; repeated transforms of nonzero data
	// blow up into infinities and NaNs.
	clear(signal)

	if err := splitfft.PackReal(signal, 1, observed); err != nil {
		panic(err)
	}

	avg := splitfft.TimeOperation(func() {
		_ = plan.ForwardReal(observed)
	}, iters)

	fmt.Printf("\tforward real FFT takes %g microseconds.\n", micro(avg.Seconds()))

	avg = splitfft.TimeOperation(func() {
		_ = splitfft.PackReal(signal, 1, observed)
		_ = plan.ForwardReal(observed)
		_ = splitfft.UnpackReal(observed, signal, 1)
	}, iters)

	fmt.Printf("\tforward real FFT with pack and unpack takes %g microseconds.\n",
		micro(avg.Seconds()))
}

// demoForwardRealOut is the out-of-place variant. The input stays
// packed in a separate buffer and is not mutated by the transform.
func demoForwardRealOut(plan *splitfft.Plan[float32], iters int) {
	n := plan.Len()
	half := n / 2

	fmt.Printf("\nOne-dimensional real FFT of %d elements, out of place.\n", n)

	tones := []splitfft.Tone{
		{Frequency: 48, Phase: 1.0 / 3 * 2 * math.Pi},
		{Frequency: 243, Phase: 0.82 * 2 * math.Pi},
		{Frequency: 300, Phase: 0.5 * 2 * math.Pi},
	}

	signal := make([]float32, n)
	splitfft.SynthesizeReal(signal, 1, n, tones)

	buffer, err := splitfft.NewSplitComplex(make([]float32, half), make([]float32, half), 1, half)
	if err != nil {
		panic(err)
	}

	observed, err := splitfft.NewSplitComplex(make([]float32, half), make([]float32, half), 1, half)
	if err != nil {
		panic(err)
	}

	if err := splitfft.PackReal(signal, 1, buffer); err != nil {
		panic(err)
	}

	if err := plan.ForwardRealOut(observed, buffer); err != nil {
		panic(err)
	}

	expected, err := splitfft.NewSplitComplex(make([]float32, half), make([]float32, half), 1, half)
	if err != nil {
		panic(err)
	}

	splitfft.ExpectedSpectrum(expected, n, tones)

	fmt.Printf("\trelative error in observed result is %g.\n",
		splitfft.CompareRelativeError(expected, observed, half))

	buffer.Zero()

	avg := splitfft.TimeOperation(func() {
		_ = plan.ForwardRealOut(observed, buffer)
	}, iters)

	fmt.Printf("\tforward real FFT takes %g microseconds.\n", micro(avg.Seconds()))
}

// demoComplex exercises the in-place complex FFT.
func demoComplex(plan *splitfft.Plan[float32], iters int) {
	n := plan.Len()

	fmt.Printf("\nOne-dimensional complex FFT of %d elements, in place.\n", n)

	tones := []splitfft.Tone{
		{Frequency: 400, Phase: 0.618 * 2 * math.Pi},
		{Frequency: 623, Phase: 0.7 * 2 * math.Pi},
		{Frequency: 931, Phase: 0.125 * 2 * math.Pi},
	}

	signal, err := splitfft.NewSplitComplex(make([]float32, n), make([]float32, n), 1, n)
	if err != nil {
		panic(err)
	}

	splitfft.SynthesizeComplex(signal, tones)

	if err := plan.Forward(signal); err != nil {
		panic(err)
	}

	expected, err := splitfft.NewSplitComplex(make([]float32, n), make([]float32, n), 1, n)
	if err != nil {
		panic(err)
	}

	splitfft.ExpectedSpectrum(expected, n, tones)

	fmt.Printf("\trelative error in observed result is %g.\n",
		splitfft.CompareRelativeError(expected, signal, n))

	signal.Zero()

	avg := splitfft.TimeOperation(func() {
		_ = plan.Forward(signal)
	}, iters)

	fmt.Printf("\tforward complex FFT takes %g microseconds.\n", micro(avg.Seconds()))
}

// demoComplexOut exercises the out-of-place complex FFT.
func demoComplexOut(plan *splitfft.Plan[float32], iters int) {
	n := plan.Len()

	fmt.Printf("\nOne-dimensional complex FFT of %d elements, out of place.\n", n)

	tones := []splitfft.Tone{
		{Frequency: 300, Phase: 0.3 * 2 * math.Pi},
		{Frequency: 450, Phase: 0.45 * 2 * math.Pi},
		{Frequency: 775, Phase: 0.775 * 2 * math.Pi},
	}

	signal, err := splitfft.NewSplitComplex(make([]float32, n), make([]float32, n), 1, n)
	if err != nil {
		panic(err)
	}

	splitfft.SynthesizeComplex(signal, tones)

	observed, err := splitfft.NewSplitComplex(make([]float32, n), make([]float32, n), 1, n)
	if err != nil {
		panic(err)
	}

	if err := plan.ForwardOut(observed, signal); err != nil {
		panic(err)
	}

	expected, err := splitfft.NewSplitComplex(make([]float32, n), make([]float32, n), 1, n)
	if err != nil {
		panic(err)
	}

	splitfft.ExpectedSpectrum(expected, n, tones)

	fmt.Printf("\trelative error in observed result is %g.\n",
		splitfft.CompareRelativeError(expected, observed, n))

	avg := splitfft.TimeOperation(func() {
		_ = plan.ForwardOut(observed, signal)
	}, iters)

	fmt.Printf("\tforward complex FFT takes %g microseconds.\n", micro(avg.Seconds()))
}

// demoConvolution runs the direct convolution at the reference sizes and
// reports achieved gigaflops.
func demoConvolution(iters int) {
	const (
		filterLen = 256
		resultLen = 2048
	)

	// Filter length rounded up to a multiple of four plus the result
	// length: the contractual signal margin.
	signalLen := (filterLen+3)&^3 + resultLen

	fmt.Printf("\nDirect convolution, %d result elements, %d filter taps.\n",
		resultLen, filterLen)

	signal := make([]float32, signalLen)
	filter := make([]float32, filterLen)
	result := make([]float32, resultLen)

	for i := range signal {
		signal[i] = 1
	}

	for i := range filter {
		filter[i] = 1
	}

	// Correlation, then true convolution via the reversed-filter stride.
	splitfft.Conv(signal, 1, filter, 1, result, 1, resultLen, filterLen)
	splitfft.Conv(signal, 1, filter, -1, result, 1, resultLen, filterLen)

	avg := splitfft.TimeOperation(func() {
		splitfft.Conv(signal, 1, filter, 1, result, 1, resultLen, filterLen)
	}, iters)

	fmt.Printf("\ta %d * %d convolution takes %g microseconds,\n", resultLen, filterLen,
		micro(avg.Seconds()))
	fmt.Printf("\twhich is a performance of %g gigaflops.\n",
		splitfft.ConvGigaflops(resultLen, filterLen, avg))
}

// demoDTMF synthesizes each requested key with noise and reports what the
// detector hears.
func demoDTMF(keys string, seed int64) error {
	fmt.Printf("\nDTMF detection at %d Hz, %d samples.\n", dtmf.SampleRate, dtmf.SampleLength)

	detector, err := dtmf.NewDetector()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	signal := make([]float64, dtmf.SampleLength)

	for i := 0; i < len(keys); i++ {
		key := keys[i]

		if err := dtmf.Synthesize(signal, key, rng); err != nil {
			return fmt.Errorf("key %c: %w", key, err)
		}

		found, err := detector.Detect(signal)
		if err != nil {
			return fmt.Errorf("key %c: %w", key, err)
		}

		pair, _ := dtmf.KeyFrequencies(found)
		fmt.Printf("\tsimulated key %c: found frequencies %g and %g for key %c.\n",
			key, pair.Column, pair.Row, found)
	}

	return nil
}
