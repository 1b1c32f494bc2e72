// Package bark converts between linear frequency (Hz) and the Bark
// critical-band rate scale.
//
// Two analytic approximations are provided:
//
//   - [ScaleTraunmueller]:    Traunmüller (1990), closed-form inverse
//   - [ScaleZwickerTerhardt]: Zwicker & Terhardt (1980)
//
// Both are total over the audible band. Note that very low frequencies
// map to slightly negative Bark values under the Traunmüller formula;
// consumers interpolating tabulated curves over [0, 24] Bark should
// treat such queries as out of range.
package bark
