package bark

import "math"

// Scale identifies an analytic Hz-to-Bark approximation.
type Scale int

const (
	// ScaleTraunmueller is the Traunmüller (1990) approximation
	//
	//	z = 26.81*f/(1960+f) - 0.53
	//
	// with a closed-form inverse. It is the default scale for
	// critical-band-rate lookups in this module.
	ScaleTraunmueller Scale = iota

	// ScaleZwickerTerhardt is the Zwicker & Terhardt (1980) approximation
	//
	//	z = 13*atan(0.00076*f) + 3.5*atan((f/7500)^2)
	//
	// Its inverse has no closed form and is computed by bisection.
	ScaleZwickerTerhardt
)

// String returns a human-readable name for the scale.
func (s Scale) String() string {
	switch s {
	case ScaleTraunmueller:
		return "Traunmueller"
	case ScaleZwickerTerhardt:
		return "ZwickerTerhardt"
	default:
		return "Unknown"
	}
}

// FromHz converts a frequency in Hz to the Bark critical-band rate.
func (s Scale) FromHz(freqHz float64) float64 {
	switch s {
	case ScaleZwickerTerhardt:
		r := freqHz / 7500
		return 13*math.Atan(0.00076*freqHz) + 3.5*math.Atan(r*r)
	default:
		return 26.81*freqHz/(1960+freqHz) - 0.53
	}
}

// ToHz converts a Bark critical-band rate back to frequency in Hz.
//
// For the Traunmüller scale the closed-form inverse is used; it is only
// defined for z < 26.28 and returns +Inf at or above that asymptote.
// For the Zwicker-Terhardt scale the inverse is found by bisection over
// [0, 50 kHz] to sub-millihertz precision.
func (s Scale) ToHz(z float64) float64 {
	switch s {
	case ScaleZwickerTerhardt:
		return invertMonotonic(z, s.FromHz, 0, 50e3)
	default:
		d := 26.28 - z
		if d <= 0 {
			return math.Inf(1)
		}
		return 1960 * (z + 0.53) / d
	}
}

// Values maps each frequency through s.FromHz. The result has the same
// length and order as freqs. A nil input yields a nil result.
func Values(s Scale, freqs []float64) []float64 {
	if freqs == nil {
		return nil
	}
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = s.FromHz(f)
	}
	return out
}

// invertMonotonic solves fn(x) = target for a monotonically increasing fn
// on [lo, hi] by bisection.
func invertMonotonic(target float64, fn func(float64) float64, lo, hi float64) float64 {
	if target <= fn(lo) {
		return lo
	}
	if target >= fn(hi) {
		return hi
	}
	for range 80 {
		mid := 0.5 * (lo + hi)
		if fn(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
