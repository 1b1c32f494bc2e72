package firdesign

import "errors"

// Design and analysis errors.
var (
	ErrInvalidSampleRate = errors.New("firdesign: sample rate must be positive")
	ErrInvalidOrder      = errors.New("firdesign: filter order must be positive")
	ErrNoPoints          = errors.New("firdesign: at least one response point is required")
	ErrLengthMismatch    = errors.New("firdesign: freqs and gains must have same length")
	ErrNegativeGain      = errors.New("firdesign: magnitude gains must be non-negative")
	ErrEmptyCoefficients = errors.New("firdesign: coefficients must not be empty")
)
