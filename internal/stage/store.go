package stage

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/thatcatcamp/colorpick/internal/palette"
)

// Shape is how an object is rendered
type Shape string

const (
	Sphere Shape = "sphere"
	Cube   Shape = "cube"
)

// Valid reports whether s is a known shape
func (s Shape) Valid() bool {
	return s == Sphere || s == Cube
}

// Seed positions for the two objects placed after a generation
var (
	PresetA = Point{X: 35, Y: 45}
	PresetB = Point{X: 65, Y: 45}
)

// Object is a colored shape placed on the stage. Color is shared with the
// palette response and must not be modified.
type Object struct {
	ID             string               `json:"id"`
	Color          *palette.ColorDetail `json:"color"`
	VariationIndex int                  `json:"activeVariationIndex"`
	Type           Shape                `json:"type"`
	X              float64              `json:"x"`
	Y              float64              `json:"y"`
	Size           float64              `json:"size"`
}

// Center returns the object's position in stage percent
func (o *Object) Center() Point { return Point{X: o.X, Y: o.Y} }

// Variation returns the variation currently used to shade the object
func (o *Object) Variation() palette.ColorVariation {
	return o.Color.Variation(o.VariationIndex)
}

func (o *Object) normalize() {
	o.X = clamp(o.X, 0, 100)
	o.Y = clamp(o.Y, 0, 100)
	o.Size = clamp(o.Size, MinSize, MaxSize)
	o.VariationIndex = o.Color.ClampVariation(o.VariationIndex)
}

var idSeq atomic.Uint64

func newObjectID() string {
	return fmt.Sprintf("obj-%d-%d", time.Now().UnixNano(), idSeq.Add(1))
}

// Store is the ordered set of stage objects. Order is render order: the
// last object is drawn front-most. Store is not safe for concurrent use.
type Store struct {
	objects []*Object
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Add appends a new object at the stage center with default size
func (s *Store) Add(color *palette.ColorDetail, shape Shape) *Object {
	obj := &Object{
		ID:    newObjectID(),
		Color: color,
		Type:  shape,
		X:     50,
		Y:     50,
		Size:  DefaultSize,
	}
	s.objects = append(s.objects, obj)
	return obj
}

// Remove deletes the object with id, if present
func (s *Store) Remove(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
}

// Update applies fn to the object with id. Position, size and variation are
// clamped back into range afterwards. Returns false if id is absent.
func (s *Store) Update(id string, fn func(o *Object)) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	obj := s.objects[i]
	fn(obj)
	obj.normalize()
	return true
}

// BringToFront moves the object with id to the end of the render order,
// keeping every other object's relative order.
func (s *Store) BringToFront(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	obj := s.objects[i]
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	s.objects = append(s.objects, obj)
	return true
}

// SetVariation switches the object's active variation. Indexes outside the
// color's variations are ignored.
func (s *Store) SetVariation(id string, index int) bool {
	obj := s.Get(id)
	if obj == nil || obj.Color == nil || index < 0 || index >= len(obj.Color.Variations) {
		return false
	}
	obj.VariationIndex = index
	return true
}

// SeedFromPalette replaces the whole stage with a sphere of the first color
// and a cube of the second. Fewer than two colors leaves the stage as is.
func (s *Store) SeedFromPalette(colors []*palette.ColorDetail) bool {
	if len(colors) < 2 {
		return false
	}
	presets := []struct {
		shape Shape
		at    Point
	}{
		{Sphere, PresetA},
		{Cube, PresetB},
	}

	seeded := make([]*Object, 0, len(presets))
	for i, p := range presets {
		seeded = append(seeded, &Object{
			ID:    newObjectID(),
			Color: colors[i],
			Type:  p.shape,
			X:     p.at.X,
			Y:     p.at.Y,
			Size:  DefaultSize,
		})
	}
	s.objects = seeded
	return true
}

// Get returns the object with id, or nil
func (s *Store) Get(id string) *Object {
	if i := s.index(id); i >= 0 {
		return s.objects[i]
	}
	return nil
}

// Objects returns copies of all objects in render order
func (s *Store) Objects() []Object {
	out := make([]Object, len(s.objects))
	for i, o := range s.objects {
		out[i] = *o
	}
	return out
}

// Len returns the number of objects on the stage
func (s *Store) Len() int { return len(s.objects) }

// Clear removes every object
func (s *Store) Clear() { s.objects = nil }

func (s *Store) index(id string) int {
	for i, o := range s.objects {
		if o.ID == id {
			return i
		}
	}
	return -1
}
