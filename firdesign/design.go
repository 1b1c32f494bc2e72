package firdesign

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minDesignGrid is the smallest frequency-sampling grid size. Larger
// grids reduce time aliasing of the sampled impulse response.
const minDesignGrid = 1024

// Option configures FIR synthesis.
type Option func(*config)

type config struct {
	order  int
	window Window
}

func defaultConfig() config {
	return config{window: WindowHamming}
}

// WithOrder sets the filter order (order+1 taps). The default order
// equals the transform length passed to [Synthesize].
func WithOrder(order int) Option {
	return func(c *config) {
		c.order = order
	}
}

// WithWindow selects the tap window. The default is [WindowHamming].
func WithWindow(w Window) Option {
	return func(c *config) {
		c.window = w
	}
}

// Synthesize designs FIR coefficients whose magnitude response at the
// given frequencies (Hz) approximates the given linear-scale gains.
//
// freqs must be strictly increasing and non-negative; gains must be
// non-negative and of equal length. n is the transform length the
// response points were derived from; it sets the default filter order.
// Outside the supplied frequency span the target holds the edge
// values, and points above fs/2 never enter the design grid.
//
// The returned slice has order+1 taps and (for the default even order)
// exact linear phase with group delay order/2 samples.
func Synthesize(freqs, gains []float64, n int, fs float64, opts ...Option) ([]float64, error) {
	if fs <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, fs)
	}
	if len(freqs) == 0 {
		return nil, ErrNoPoints
	}
	if len(freqs) != len(gains) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(freqs), len(gains))
	}
	if freqs[0] < 0 {
		return nil, fmt.Errorf("firdesign: frequencies must be non-negative: %g", freqs[0])
	}
	for i := 1; i < len(freqs); i++ {
		if !(freqs[i] > freqs[i-1]) {
			return nil, fmt.Errorf("firdesign: frequencies must be strictly increasing at index %d", i)
		}
	}
	for i, g := range gains {
		if g < 0 || math.IsNaN(g) {
			return nil, fmt.Errorf("%w: %g at index %d", ErrNegativeGain, g, i)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	order := cfg.order
	if order <= 0 {
		order = n
	}
	if order <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	fftSize := nextPowerOfTwo(2 * (order + 1))
	if fftSize < minDesignGrid {
		fftSize = minDesignGrid
	}
	half := fftSize / 2
	delay := float64(order) / 2

	// Linear-phase Hermitian spectrum of the edge-held target.
	spec := make([]complex128, fftSize)
	for k := 0; k <= half; k++ {
		fk := fs * float64(k) / float64(fftSize)
		mag := sampleTarget(freqs, gains, fk)
		phi := -2 * math.Pi * float64(k) * delay / float64(fftSize)

		c := complex(mag*math.Cos(phi), mag*math.Sin(phi))
		if k == half {
			// The Nyquist bin of a real impulse response is real.
			c = complex(mag*math.Cos(phi), 0)
		}
		spec[k] = c
		if k > 0 && k < half {
			spec[fftSize-k] = cmplx.Conj(c)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("firdesign: failed to create FFT plan: %w", err)
	}
	impulse := make([]complex128, fftSize)
	if err := plan.Inverse(impulse, spec); err != nil {
		return nil, err
	}

	taps := make([]float64, order+1)
	win := windowCoeffs(cfg.window, order+1)
	for i := range taps {
		taps[i] = real(impulse[i]) * win[i]
	}
	return taps, nil
}

// sampleTarget evaluates the piecewise-linear target at frequency q,
// holding the edge gains outside the supplied span.
func sampleTarget(freqs, gains []float64, q float64) float64 {
	if q <= freqs[0] {
		return gains[0]
	}
	last := len(freqs) - 1
	if q >= freqs[last] {
		return gains[last]
	}

	j := sort.SearchFloat64s(freqs, q)
	if freqs[j] == q {
		return gains[j]
	}
	f0, f1 := freqs[j-1], freqs[j]
	t := (q - f0) / (f1 - f0)
	return gains[j-1] + t*(gains[j]-gains[j-1])
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
