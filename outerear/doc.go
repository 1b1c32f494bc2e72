// Package outerear computes the a0 outer-ear transmission compensation
// curve used by psychoacoustic loudness and fluctuation-strength models,
// and packages it as a linear-phase FIR filter.
//
// The computation is a pure function of sample rate, transform length
// and curve variant: an audible-band analysis grid is derived from the
// transform resolution, mapped onto the Bark scale, the selected
// calibration table is interpolated at each bin, and the resulting
// linear gains are handed to a frequency-sampling FIR synthesizer.
//
//	res, err := outerear.Compute(44100, 4096)
//	if err != nil { ... }
//	taps := res.Coefficients // apply with any FIR runtime
//
// Four calibration tables are available, selected via [WithVariant]:
// free-field and diffuse-field transmission after Fastl & Zwicker
// (2007), the table used by the Osses (2016) fluctuation-strength
// model, and a legacy table that additionally embeds an approximate
// middle-ear attenuation.
package outerear
