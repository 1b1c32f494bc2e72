// Package firdesign synthesizes FIR filter coefficients from a target
// magnitude response specified at arbitrary frequency points.
//
// [Synthesize] uses frequency sampling: the target points are resampled
// onto a dense uniform grid with edge values held, a linear-phase
// Hermitian spectrum is built, inverse-transformed, and the leading
// taps are windowed (Hamming by default). The result is a linear-phase
// filter whose magnitude response approximates the supplied gains.
//
// [Analyze] compares a coefficient set against its design target and
// can serialize the comparison as CSV. Diagnostics are an explicit
// operation; synthesis itself never reports anything.
//
// This package designs coefficients only; applying them to sample
// streams is the caller's concern (any direct-form or FFT-based FIR
// runtime will do).
package firdesign
