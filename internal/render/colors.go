package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Colors is the page color set derived from the stage backdrop
type Colors struct {
	Background     string // Stage backdrop
	Text           string // Readable text on the backdrop
	TextMuted      string // Labels and hints
	Border         string // Stage outline and dividers
	Accent         string // Selection ring and resize handle
	AccentContrast string // Text on top of the accent
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

// DefaultAccent is used when no palette is loaded
const DefaultAccent = "#4f46e5"

// ContrastText returns black or white, whichever reads better on hex
func ContrastText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	if isDark(c) {
		return "#ffffff"
	}
	return "#000000"
}

func isDark(c colorful.Color) bool {
	l, _, _ := c.Lab()
	return l < 0.6
}

// GenerateColors derives the page colors for a backdrop and accent
func GenerateColors(background, accent string) *Colors {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = white
	}
	ac, err := colorful.Hex(accent)
	if err != nil {
		ac, _ = colorful.Hex(DefaultAccent)
	}

	text := black
	if isDark(bg) {
		text = white
	}

	return &Colors{
		Background:     bg.Hex(),
		Text:           text.Hex(),
		TextMuted:      bg.BlendLab(text, 0.6).Clamped().Hex(),
		Border:         bg.BlendLab(text, 0.15).Clamped().Hex(),
		Accent:         ac.Hex(),
		AccentContrast: ContrastText(ac.Hex()),
	}
}
