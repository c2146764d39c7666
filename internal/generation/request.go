package generation

import (
	"fmt"
	"strings"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// schema is the subset of the OpenAPI schema object the service accepts
type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	MinItems   int                `json:"minItems,omitempty"`
	MaxItems   int                `json:"maxItems,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// text joins the parts of the first candidate
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func str() *schema { return &schema{Type: "STRING"} }

// recommendationSchema mirrors palette.Recommendation
func recommendationSchema() *schema {
	variation := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"label":     str(),
			"highlight": str(),
			"shadow":    str(),
		},
		Required: []string{"label", "highlight", "shadow"},
	}
	color := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"name": str(),
			"base": str(),
			"variations": {
				Type:     "ARRAY",
				Items:    variation,
				MinItems: 3,
				MaxItems: 3,
			},
			"reason": str(),
		},
		Required: []string{"name", "base", "variations", "reason"},
	}
	return &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"themeName": str(),
			"colors": {
				Type:     "ARRAY",
				Items:    color,
				MinItems: PaletteSize,
				MaxItems: PaletteSize,
			},
		},
		Required: []string{"themeName", "colors"},
	}
}

const promptTemplate = `Expert color theorist. Create a %d-color professional palette for: %q.

Rules:
1. Balance warm and cool colors for a harmonious contrast.
2. Exactly %d unique colors, each base given as #RRGGBB.
3. Each color has exactly 3 variations, in this order:
   - "Natural": realistic lighting.
   - "Dramatic": a clear high-contrast value shift.
   - "Surreal": sophisticated artistic hue shifts.
4. Keep each reason to one short sentence.`

func newRequest(keyword string) generateRequest {
	return generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(promptTemplate, PaletteSize, keyword, PaletteSize)}},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   recommendationSchema(),
		},
	}
}
