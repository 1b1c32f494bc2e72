package outerear

import (
	"fmt"
	"strings"
)

// Variant identifies an a0 calibration curve.
type Variant int

const (
	// VariantFreeField is the free-field outer-ear transmission after
	// Fastl & Zwicker (2007). This is the default variant.
	VariantFreeField Variant = iota

	// VariantDiffuseField is the diffuse-field outer-ear transmission
	// after Fastl & Zwicker (2007).
	VariantDiffuseField

	// VariantFluctuationStrength is the a0 table used by the Osses
	// (2016) fluctuation-strength model.
	VariantFluctuationStrength

	// VariantLegacy is the historical table shipped with early SQAT
	// releases. Unlike the other three it embeds an approximate
	// middle-ear attenuation, so its low-frequency gains are negative.
	VariantLegacy
)

// variantNames holds the canonical lower-case selector names.
var variantNames = [...]string{
	VariantFreeField:           "fastl2007ff",
	VariantDiffuseField:        "fastl2007df",
	VariantFluctuationStrength: "fluctuationstrength_osses2016",
	VariantLegacy:              "sqat1",
}

// String returns the canonical selector name of the variant.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// valid reports whether v names one of the compiled-in tables.
func (v Variant) valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}

// ParseVariant resolves a selector name to its Variant. Matching is
// case-insensitive; surrounding whitespace is ignored. Unknown names
// return an error wrapping [ErrUnknownVariant] rather than a default.
func ParseVariant(name string) (Variant, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if s == n {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Variants returns the canonical names of all compiled-in curve
// variants, in declaration order.
func Variants() []string {
	out := make([]string, len(variantNames))
	copy(out, variantNames[:])
	return out
}
