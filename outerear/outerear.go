package outerear

import (
	"fmt"

	"github.com/cwbudde/algo-auditory/bark"
	"github.com/cwbudde/algo-auditory/firdesign"
)

// Synthesizer converts a set of (frequency, linear gain) response
// points into FIR filter coefficients for a transform of length n at
// sample rate fs. [firdesign.Synthesize] is the default.
type Synthesizer func(freqs, gains []float64, n int, fs float64) ([]float64, error)

// Option configures the a0 computation.
type Option func(*config)

type config struct {
	variant Variant
	barkFn  func(float64) float64
	synth   Synthesizer
	order   int
}

func defaultConfig() config {
	return config{
		variant: VariantFreeField,
		barkFn:  bark.ScaleTraunmueller.FromHz,
	}
}

// WithVariant selects the calibration curve. The default is
// [VariantFreeField].
func WithVariant(v Variant) Option {
	return func(c *config) {
		c.variant = v
	}
}

// WithBarkFunc replaces the Hz-to-Bark mapping applied to the analysis
// grid. The function must return one finite value per audible-band
// frequency. The default is [bark.ScaleTraunmueller].
func WithBarkFunc(fn func(freqHz float64) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.barkFn = fn
		}
	}
}

// WithSynthesizer replaces the FIR synthesis backend.
func WithSynthesizer(s Synthesizer) Option {
	return func(c *config) {
		if s != nil {
			c.synth = s
		}
	}
}

// WithFilterOrder sets the order of the synthesized FIR filter
// (order+1 taps). Zero or negative selects the default, which equals
// the transform length. Ignored when a custom synthesizer is set.
func WithFilterOrder(order int) Option {
	return func(c *config) {
		c.order = order
	}
}

// Result holds the outcome of one a0 computation.
//
// Freqs, Gains and Bins have equal length: one entry per audible-band
// transform bin. Gains are linear-scale a0 values; bins whose Bark
// value falls outside the calibration table are exactly zero.
type Result struct {
	// Coefficients are the synthesized FIR taps. Empty when the
	// analysis grid is empty.
	Coefficients []float64

	// Freqs is the analysis frequency grid in Hz, strictly increasing.
	Freqs []float64

	// Gains is the linear a0 gain at each grid frequency.
	Gains []float64

	// Bins are the 0-based transform bins backing Freqs.
	Bins []int

	SampleRate float64
	Length     int
	Variant    Variant
}

// GainVector expands the grid-restricted gains to a full transform
// length vector: zero everywhere except at the grid bins.
func (r *Result) GainVector() []float64 {
	full := make([]float64, r.Length)
	for i, k := range r.Bins {
		full[k] = r.Gains[i]
	}
	return full
}

// Compute derives the a0 outer-ear compensation for a transform of
// length n at sample rate fs and synthesizes the matching FIR filter.
//
// The computation is deterministic and allocates all state per call;
// concurrent use is safe. An analysis grid too coarse to resolve the
// audible band yields empty slices and no error.
func Compute(fs float64, n int, opts ...Option) (*Result, error) {
	if fs <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, fs)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.variant.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(cfg.variant))
	}
	points, err := table(cfg.variant)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(fs, n)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Freqs:      grid.Freqs,
		Bins:       grid.Bins,
		SampleRate: fs,
		Length:     n,
		Variant:    cfg.variant,
	}
	if grid.Len() == 0 {
		res.Gains = []float64{}
		res.Coefficients = []float64{}
		return res, nil
	}

	barks := make([]float64, grid.Len())
	for i, f := range grid.Freqs {
		barks[i] = cfg.barkFn(f)
	}
	res.Gains = interpLinearGains(points, barks)

	synth := cfg.synth
	if synth == nil {
		order := cfg.order
		synth = func(freqs, gains []float64, n int, fs float64) ([]float64, error) {
			if order > 0 {
				return firdesign.Synthesize(freqs, gains, n, fs, firdesign.WithOrder(order))
			}
			return firdesign.Synthesize(freqs, gains, n, fs)
		}
	}

	res.Coefficients, err = synth(res.Freqs, res.Gains, n, fs)
	if err != nil {
		return nil, fmt.Errorf("outerear: filter synthesis failed: %w", err)
	}
	return res, nil
}
