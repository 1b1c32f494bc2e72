package firdesign

import "math"

// Window identifies the tap window applied after frequency sampling.
type Window int

const (
	// WindowHamming is the default tap window (raised cosine with
	// 0.54/0.46 coefficients, ~-53 dB first sidelobe).
	WindowHamming Window = iota

	// WindowHann trades sidelobe level for faster rolloff.
	WindowHann

	// WindowRectangular applies no tapering. Only useful when the
	// target response is already band-limited and smooth.
	WindowRectangular
)

// String returns a human-readable name for the window.
func (w Window) String() string {
	switch w {
	case WindowHamming:
		return "hamming"
	case WindowHann:
		return "hann"
	case WindowRectangular:
		return "rectangular"
	default:
		return "unknown"
	}
}

// windowCoeffs generates the symmetric window of the given length.
func windowCoeffs(w Window, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	switch w {
	case WindowHann:
		for i := range out {
			out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(length-1)))
		}
	case WindowRectangular:
		for i := range out {
			out[i] = 1
		}
	default:
		for i := range out {
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(length-1))
		}
	}
	return out
}
