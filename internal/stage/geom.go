// Package stage holds the composition stage: objects placed on a bounded 2D
// surface in percentage coordinates, and the pointer state machine that
// drags and resizes them.
package stage

import "math"

const (
	// MinSize and MaxSize bound an object's rendered size in pixels
	MinSize = 50.0
	MaxSize = 450.0

	// DefaultSize is the size of newly added objects
	DefaultSize = 140.0
)

// Point is a position in screen pixels or, for objects, in stage percent
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the stage's bounding box in screen pixels
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func Dist(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToStage converts a screen position into clamped stage percent
// coordinates. A degenerate stage maps everything to the origin.
func (r Rect) ToStage(p Point) Point {
	if r.Width <= 0 || r.Height <= 0 {
		return Point{}
	}
	return Point{
		X: clamp((p.X-r.X)/r.Width*100, 0, 100),
		Y: clamp((p.Y-r.Y)/r.Height*100, 0, 100),
	}
}

// ToScreen converts stage percent coordinates into a screen position
func (r Rect) ToScreen(p Point) Point {
	return Point{
		X: p.X/100*r.Width + r.X,
		Y: p.Y/100*r.Height + r.Y,
	}
}

// SizeFromDistance returns the object size for a resize pointer at the
// given distance from the object's center.
func SizeFromDistance(d float64) float64 {
	return clamp(d*2, MinSize, MaxSize)
}
