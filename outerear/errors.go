package outerear

import "errors"

// Validation errors.
var (
	ErrInvalidSampleRate = errors.New("outerear: sample rate must be positive")
	ErrInvalidLength     = errors.New("outerear: transform length must be positive")
	ErrUnknownVariant    = errors.New("outerear: unknown curve variant")
)
