package firdesign

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Response computes the complex frequency response of a coefficient
// set at the given frequency (Hz) and sample rate (Hz).
func Response(coeffs []float64, freqHz, fs float64) complex128 {
	w := 2 * math.Pi * freqHz / fs
	var h complex128
	for k, c := range coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given
// frequency. A zero response yields -Inf.
func MagnitudeDB(coeffs []float64, freqHz, fs float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Response(coeffs, freqHz, fs)))
}

// Magnitudes computes the dense magnitude response of a coefficient
// set on a uniform grid. The coefficients are zero-padded to a power
// of two at least gridSize (and at least the coefficient count); the
// returned slice holds |H[k]| for the size/2+1 non-negative-frequency
// bins, so bin k corresponds to fs*k/size.
func Magnitudes(coeffs []float64, gridSize int) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	size := nextPowerOfTwo(gridSize)
	if size < nextPowerOfTwo(len(coeffs)) {
		size = nextPowerOfTwo(len(coeffs))
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("firdesign: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, size)
	for i, c := range coeffs {
		padded[i] = complex(c, 0)
	}
	spec := make([]complex128, size)
	if err := plan.Forward(spec, padded); err != nil {
		return nil, err
	}

	half := size / 2
	re := make([]float64, half+1)
	im := make([]float64, half+1)
	for k := 0; k <= half; k++ {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}
	out := make([]float64, half+1)
	vecmath.Magnitude(out, re, im)
	return out, nil
}
