package outerear

import "fmt"

// Point is one calibration knot of an a0 curve: the transmission gain
// in dB at a Bark critical-band rate.
type Point struct {
	Bark   float64
	GainDB float64
}

// The calibration tables below are fixed published data and are
// reproduced verbatim; they must not be recomputed or smoothed.
// A −999 dB terminal row stands for minus infinity (full attenuation
// above the audible range) and is ordinary table data.

// freeFieldTable: free-field outer-ear transmission, digitized from
// Fastl & Zwicker, "Psychoacoustics" (3rd ed., 2007).
var freeFieldTable = [...]Point{
	{0, 0},
	{5, 0},
	{10, 0.34},
	{11, 0.73},
	{12, 1.36},
	{13, 2.31},
	{14, 3.42},
	{15, 4.91},
	{16, 6.11},
	{16.5, 6.55},
	{17, 6.41},
	{18, 4.81},
	{18.5, 3.55},
	{19, 2.18},
	{20, -0.65},
	{21, -4.10},
	{21.5, -6.13},
	{22, -8.52},
	{22.5, -11.33},
	{23, -14.44},
	{23.5, -17.84},
	{24, -21.45},
	{25, -999},
}

// diffuseFieldTable: diffuse-field outer-ear transmission, digitized
// from Fastl & Zwicker (2007). Flatter peak than the free-field curve,
// more gain in the 1-2 kHz region.
var diffuseFieldTable = [...]Point{
	{0, 0},
	{5, 0},
	{10, 0.69},
	{11, 1.41},
	{12, 2.27},
	{13, 3.35},
	{14, 4.54},
	{15, 5.53},
	{16, 6.21},
	{16.5, 6.37},
	{17, 6.26},
	{18, 5.41},
	{18.5, 4.72},
	{19, 3.84},
	{20, 1.73},
	{21, -1.13},
	{21.5, -2.87},
	{22, -4.92},
	{22.5, -7.34},
	{23, -10.10},
	{23.5, -13.17},
	{24, -16.51},
	{25, -999},
}

// fluctuationStrengthTable: a0 as used by the fluctuation-strength
// model of Osses et al. (2016), after the classical table of the
// Zwicker loudness procedure.
var fluctuationStrengthTable = [...]Point{
	{0, 0},
	{10, 0},
	{12, 1.15},
	{13, 2.31},
	{14, 3.85},
	{15, 5.62},
	{16, 6.92},
	{16.5, 7.38},
	{17, 6.92},
	{18, 4.23},
	{18.5, 2.31},
	{19, 0},
	{20, -1.43},
	{21, -2.59},
	{21.5, -3.57},
	{22, -5.19},
	{22.5, -7.41},
	{23, -11.3},
	{23.5, -20},
	{24, -40},
	{25, -999},
}

// legacyTable: combined outer-ear plus approximate middle-ear
// transmission carried for backward compatibility with SQAT 1.0
// results. Kept bit-for-bit including its -130 dB terminal row.
var legacyTable = [...]Point{
	{0, -17.5},
	{1, -13.0},
	{2, -10.2},
	{3, -8.3},
	{4, -6.8},
	{5, -5.7},
	{6, -4.8},
	{7, -4.0},
	{8, -3.3},
	{9, -2.7},
	{10, -2.2},
	{11, -1.8},
	{12, -0.9},
	{13, 0.3},
	{14, 1.8},
	{15, 3.6},
	{16, 5.1},
	{16.5, 5.6},
	{17, 5.2},
	{18, 3.0},
	{18.5, 1.5},
	{19, -0.5},
	{20, -2.4},
	{21, -4.1},
	{21.5, -5.4},
	{22, -7.4},
	{22.5, -10.0},
	{23, -14.1},
	{23.5, -22.6},
	{24, -42.2},
	{25, -130},
}

// table returns the shared immutable knots for a variant. Callers must
// not modify the returned slice.
func table(v Variant) ([]Point, error) {
	switch v {
	case VariantFreeField:
		return freeFieldTable[:], nil
	case VariantDiffuseField:
		return diffuseFieldTable[:], nil
	case VariantFluctuationStrength:
		return fluctuationStrengthTable[:], nil
	case VariantLegacy:
		return legacyTable[:], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}

// Table returns a copy of the calibration knots for the given variant,
// ordered by strictly increasing Bark value.
func Table(v Variant) ([]Point, error) {
	src, err := table(v)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(src))
	copy(out, src)
	return out, nil
}
