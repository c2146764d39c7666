// Package render draws stage shapes as SVG and derives the page colors for
// the current backdrop.
package render

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/colorpick/internal/palette"
	"github.com/thatcatcamp/colorpick/internal/stage"
)

// Shading is the three colors a shape is painted with
type Shading struct {
	Base      string
	Highlight string
	Shadow    string
}

// ShadingFor combines a color's base with one of its variations
func ShadingFor(c *palette.ColorDetail, variation int) Shading {
	v := c.Variation(variation)
	base := "#ffffff"
	if c != nil {
		base = c.Base
	}
	return Shading{Base: base, Highlight: v.Highlight, Shadow: v.Shadow}
}

// ParseShading normalizes all three colors. Missing highlight or shadow
// fall back to the default variation.
func ParseShading(base, highlight, shadow string) (Shading, error) {
	if highlight == "" {
		highlight = palette.FallbackVariation.Highlight
	}
	if shadow == "" {
		shadow = palette.FallbackVariation.Shadow
	}

	var s Shading
	for _, f := range []struct {
		in  string
		out *string
	}{
		{base, &s.Base},
		{highlight, &s.Highlight},
		{shadow, &s.Shadow},
	} {
		hex, err := palette.NormalizeHex(f.in)
		if err != nil {
			return Shading{}, err
		}
		*f.out = hex
	}
	return s, nil
}

// gradientID is stable for a shading so identical spheres share markup
func (s Shading) gradientID() string {
	id := "grad-sphere-" + s.Highlight + s.Base + s.Shadow
	return strings.ToLower(strings.ReplaceAll(id, "#", ""))
}

// Sphere renders a radially shaded circle
func Sphere(s Shading) string {
	id := s.gradientID()
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">`+
		`<defs><radialGradient id="%s" cx="35%%" cy="35%%" r="65%%" fx="30%%" fy="30%%">`+
		`<stop offset="0%%" stop-color="%s"/>`+
		`<stop offset="45%%" stop-color="%s"/>`+
		`<stop offset="100%%" stop-color="%s"/>`+
		`</radialGradient></defs>`+
		`<circle cx="100" cy="100" r="85" fill="url(#%s)"/></svg>`,
		id, s.Highlight, s.Base, s.Shadow, id)
}

// Cube renders an isometric cube: base on the left face, shadow on the
// right and highlight on top.
func Cube(s Shading) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">`+
		`<g transform="translate(100, 110)">`+
		`<path d="M -65 -45 L 0 0 L 0 90 L -65 45 Z" fill="%s"/>`+
		`<path d="M 0 0 L 65 -45 L 65 45 L 0 90 Z" fill="%s"/>`+
		`<path d="M -65 -45 L 0 -90 L 65 -45 L 0 0 Z" fill="%s"/>`+
		`</g></svg>`,
		s.Base, s.Shadow, s.Highlight)
}

// Shape renders shape with s
func Shape(shape stage.Shape, s Shading) (string, error) {
	switch shape {
	case stage.Sphere:
		return Sphere(s), nil
	case stage.Cube:
		return Cube(s), nil
	}
	return "", fmt.Errorf("unknown shape %q", shape)
}

// Object renders a stage object with its active variation
func Object(o stage.Object) (string, error) {
	return Shape(o.Type, ShadingFor(o.Color, o.VariationIndex))
}
