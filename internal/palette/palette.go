package palette

// VariationCount is the number of style variations every generated color carries
const VariationCount = 3

// ColorVariation is one light/shadow rendering of a base color
type ColorVariation struct {
	Label     string `json:"label" yaml:"label" validate:"required"`
	Highlight string `json:"highlight" yaml:"highlight" validate:"required,rrggbb"`
	Shadow    string `json:"shadow" yaml:"shadow" validate:"required,rrggbb"`
}

// ColorDetail is a single generated color with its variations
type ColorDetail struct {
	Name       string           `json:"name" yaml:"name" validate:"required"`
	Base       string           `json:"base" yaml:"base" validate:"required,rrggbb"`
	Variations []ColorVariation `json:"variations" yaml:"variations" validate:"len=3,dive"`
	Reason     string           `json:"reason" yaml:"reason"`
}

// Recommendation is the themed palette returned by the generation service.
// Twenty colors are requested; consumers must cope with any count >= 1.
type Recommendation struct {
	ThemeName string         `json:"themeName" yaml:"themeName" validate:"required"`
	Colors    []*ColorDetail `json:"colors" yaml:"colors" validate:"required,min=1,dive,required"`
}

// FallbackVariation is used when a color has no variation to render
var FallbackVariation = ColorVariation{Label: "Default", Highlight: "#ffffff", Shadow: "#000000"}

// Variation returns the variation at index i, or FallbackVariation when the
// color has none. Out-of-range indexes fall back to the first variation.
func (c *ColorDetail) Variation(i int) ColorVariation {
	if c == nil || len(c.Variations) == 0 {
		return FallbackVariation
	}
	if i < 0 || i >= len(c.Variations) {
		return c.Variations[0]
	}
	return c.Variations[i]
}

// ClampVariation bounds i to a valid index into c.Variations
func (c *ColorDetail) ClampVariation(i int) int {
	if c == nil || len(c.Variations) == 0 || i < 0 {
		return 0
	}
	if i >= len(c.Variations) {
		return len(c.Variations) - 1
	}
	return i
}

// Color returns the color at index i, or nil when out of range
func (r *Recommendation) Color(i int) *ColorDetail {
	if r == nil || i < 0 || i >= len(r.Colors) {
		return nil
	}
	return r.Colors[i]
}
