// Package world holds the shapes and lights of a scene and answers
// scene-wide intersection and shadow queries.
package world

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	// ErrNilShape is returned when adding a nil shape
	ErrNilShape = errors.New("nil shape")
	// ErrShapeHasParent is returned when adding a shape owned by a group; add the group instead
	ErrShapeHasParent = geometry.ErrShapeHasParent
	// ErrDuplicateShape is returned when adding a shape that is already in the world
	ErrDuplicateShape = errors.New("shape already in world")
	// ErrNoSuchLight is returned by SetLight for an out-of-range index
	ErrNoSuchLight = errors.New("no such light")
)

// Handle addresses a shape owned by a World
type Handle int

// World owns the top-level shapes and the lights of a scene. It is built up
// front and must not be modified while a render is reading it.
type World struct {
	shapes []geometry.Shape
	lights []lights.Light
}

// New creates an empty world
func New() *World {
	return &World{}
}

// Add takes ownership of s and returns its handle. Shapes whose materials
// fail validation are rejected.
func (w *World) Add(s geometry.Shape) (Handle, error) {
	if s == nil {
		return 0, ErrNilShape
	}
	if s.Parent() != nil {
		return 0, fmt.Errorf("world: %w", ErrShapeHasParent)
	}
	if w.Contains(s) {
		return 0, ErrDuplicateShape
	}
	if err := validateMaterials(s); err != nil {
		return 0, fmt.Errorf("world: %w", err)
	}

	w.shapes = append(w.shapes, s)
	return Handle(len(w.shapes) - 1), nil
}

// validateMaterials checks the material of s and, for groups, of every
// descendant, since materials may have been edited in place
func validateMaterials(s geometry.Shape) error {
	if g, ok := s.(*geometry.Group); ok {
		for _, child := range g.Children() {
			if err := validateMaterials(child); err != nil {
				return err
			}
		}
		return nil
	}
	return s.Material().Validate()
}

// Shape returns the shape for h, or nil if h is not a handle of this world
func (w *World) Shape(h Handle) geometry.Shape {
	if h < 0 || int(h) >= len(w.shapes) {
		return nil
	}
	return w.shapes[h]
}

// Shapes returns the top-level shapes in insertion order
func (w *World) Shapes() []geometry.Shape {
	return w.shapes
}

// Contains reports whether s is a top-level shape of the world
func (w *World) Contains(s geometry.Shape) bool {
	for _, existing := range w.shapes {
		if existing == s {
			return true
		}
	}
	return false
}

// AddLight appends a light
func (w *World) AddLight(l lights.Light) error {
	if l == nil {
		return errors.New("world: nil light")
	}
	if err := l.Validate(); err != nil {
		return err
	}
	w.lights = append(w.lights, l)
	return nil
}

// SetLight replaces the light at index i
func (w *World) SetLight(i int, l lights.Light) error {
	if i < 0 || i >= len(w.lights) {
		return fmt.Errorf("world: %w: index %d of %d", ErrNoSuchLight, i, len(w.lights))
	}
	if l == nil {
		return errors.New("world: nil light")
	}
	if err := l.Validate(); err != nil {
		return err
	}
	w.lights[i] = l
	return nil
}

// Lights returns every light in the world
func (w *World) Lights() []lights.Light {
	return w.lights
}

// Light returns the light used for shading and shadows, which is the first one added
func (w *World) Light() (lights.Light, bool) {
	if len(w.lights) == 0 {
		return nil, false
	}
	return w.lights[0], true
}

// Intersect intersects ray with every shape and returns the hits sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, s := range w.shapes {
		xs = append(xs, geometry.Intersect(s, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether something lies between point and the light.
// A world without lights has nothing to cast shadows.
func (w *World) IsShadowed(point core.Tuple) bool {
	light, ok := w.Light()
	if !ok {
		return false
	}

	sample := light.Sample(point)
	ray := core.NewRay(point, sample.Direction)

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < sample.Distance
}
