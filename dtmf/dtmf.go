// Package dtmf synthesizes and detects the Dual-Tone Multi-Frequency
// signals produced by telephone keypads. It exists as a worked example of
// the packed real FFT: a key's two tones are injected into a noisy
// signal, and a detector recovers the key from the transform's power
// spectrum.
package dtmf

import (
	"errors"
	"math"
	"math/rand"

	"github.com/cwbudde/splitfft"
)

const (
	// SampleRate is the sampling frequency in Hz, twice the highest DTMF
	// tone.
	SampleRate = 3266

	// Log2SampleLength is the base-two logarithm of the analysis window.
	Log2SampleLength = 8

	// SampleLength is the number of samples a detector consumes. Less
	// than 0.08 seconds of signal at SampleRate.
	SampleLength = 1 << Log2SampleLength
)

// Keys lists the keypad characters in table order: key Keys[row*4+col]
// sounds columnFrequencies[col] together with rowFrequencies[row].
const Keys = "123A456B789C*0#D"

var (
	columnFrequencies = [4]float64{1209, 1336, 1477, 1633}
	rowFrequencies    = [4]float64{697, 770, 852, 941}
)

// Errors returned by synthesis and detection.
var (
	ErrUnknownKey  = errors.New("dtmf: key not in table")
	ErrShortSignal = errors.New("dtmf: signal shorter than SampleLength")
)

// FrequencyPair holds the two tones of one key.
type FrequencyPair struct {
	Column float64
	Row    float64
}

// KeyFrequencies returns the tone pair assigned to a keypad character.
func KeyFrequencies(key byte) (FrequencyPair, bool) {
	for i := range Keys {
		if Keys[i] == key {
			return FrequencyPair{
				Column: columnFrequencies[i%4],
				Row:    rowFrequencies[i/4],
			}, true
		}
	}

	return FrequencyPair{}, false
}

// Synthesize fills dst[:SampleLength] with the two tones of key at
// pseudo-random phases, buried in noise scaled to four times the tone
// range. The generator is passed explicitly so runs are reproducible and
// independent; there is no process-wide state.
func Synthesize(dst []float64, key byte, rng *rand.Rand) error {
	if len(dst) < SampleLength {
		return ErrShortSignal
	}

	pair, ok := KeyFrequencies(key)
	if !ok {
		return ErrUnknownKey
	}

	for i := range SampleLength {
		dst[i] = 4 * rng.Float64()
	}

	for _, freq := range [2]float64{pair.Column, pair.Row} {
		phase := rng.Float64() // random start time, in cycles
		for i := range SampleLength {
			dst[i] += math.Sin((float64(i)*freq/SampleRate + phase) * 2 * math.Pi)
		}
	}

	return nil
}

// Detector recovers keypad characters from sampled signals. It owns its
// working buffers, so a Detector must not be used from multiple
// goroutines at once; the plan inside is shareable, the buffers are not.
type Detector struct {
	plan  *splitfft.Plan[float64]
	split splitfft.SplitComplex[float64]
	power []float64
}

// NewDetector builds a detector with its transform plan and scratch
// buffers.
func NewDetector() (*Detector, error) {
	plan, err := splitfft.NewPlan[float64](SampleLength)
	if err != nil {
		return nil, err
	}

	half := SampleLength / 2

	split, err := splitfft.NewSplitComplex(make([]float64, half), make([]float64, half), 1, half)
	if err != nil {
		return nil, err
	}

	return &Detector{
		plan:  plan,
		split: split,
		power: make([]float64, half),
	}, nil
}

// Detect analyzes signal[:SampleLength] and returns the keypad character
// whose tone pair dominates the spectrum. A production detector would
// also ask whether DTMF energy is present at all; this one always picks
// the loudest candidates.
func (d *Detector) Detect(signal []float64) (byte, error) {
	if len(signal) < SampleLength {
		return 0, ErrShortSignal
	}

	if err := splitfft.PackReal(signal[:SampleLength], 1, d.split); err != nil {
		return 0, err
	}

	if err := d.plan.ForwardReal(d.split); err != nil {
		return 0, err
	}

	if err := splitfft.PowerSpectrum(d.power, d.split); err != nil {
		return 0, err
	}

	col := d.loudestTone(columnFrequencies)
	row := d.loudestTone(rowFrequencies)

	return Keys[row*4+col], nil
}

// loudestTone returns the index of the candidate frequency with the
// greatest power in the current spectrum.
func (d *Detector) loudestTone(candidates [4]float64) int {
	maxValue := -1.0
	maxIndex := 0

	for i, freq := range candidates {
		if p := d.binPower(freq); p > maxValue {
			maxValue = p
			maxIndex = i
		}
	}

	return maxIndex
}

// binPower returns the spectral power at the bin nearest freq. The top
// column candidate, 1633 Hz, is exactly half of SampleRate: its bin is
// the Nyquist bin, which the packed spectrum folds into Im[0] instead of
// storing past the end of the half spectrum.
func (d *Detector) binPower(freq float64) float64 {
	bin := int(freq/SampleRate*SampleLength + 0.5)

	if bin >= len(d.power) {
		_, ny := d.split.At(0)
		return ny * ny
	}

	return d.power[bin]
}
