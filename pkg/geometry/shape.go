package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	// ErrInvalidBounds is returned for a cylinder or cone whose minimum exceeds its maximum
	ErrInvalidBounds = errors.New("minimum exceeds maximum")
	// ErrShapeHasParent is returned when adding a shape that already belongs to a group
	ErrShapeHasParent = errors.New("shape already belongs to a group")
)

// shapeBase holds the state shared by every shape
type shapeBase struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           *Group
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform:        core.Identity4(),
		inverse:          core.Identity4(),
		inverseTranspose: core.Identity4(),
		material:         material.DefaultMaterial(),
	}
}

func (b *shapeBase) Transform() core.Matrix { return b.transform }
func (b *shapeBase) Inverse() core.Matrix   { return b.inverse }

func (b *shapeBase) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	b.inverseTranspose = inv.Transpose()
	return nil
}

// Material returns the shape's material for in-place modification. Edits made
// through the pointer are not validated.
func (b *shapeBase) Material() *material.Material { return &b.material }

func (b *shapeBase) SetMaterial(m material.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}
	b.material = m
	return nil
}

func (b *shapeBase) Parent() *Group     { return b.parent }
func (b *shapeBase) setParent(g *Group) { b.parent = g }

// WorldToObject converts a world point into this shape's object space,
// passing through every enclosing group
func (b *shapeBase) WorldToObject(point core.Tuple) core.Tuple {
	if b.parent != nil {
		point = b.parent.WorldToObject(point)
	}
	return b.inverse.MultiplyTuple(point)
}

func (b *shapeBase) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = b.inverseTranspose.MultiplyTuple(normal)
	normal.W = 0 // translation leaks into w through the transpose
	normal = normal.Normalize()

	if b.parent != nil {
		normal = b.parent.NormalToWorld(normal)
	}
	return normal
}

// Intersect intersects a world-space ray with s. Results are in the shape's
// natural root order, not sorted.
func Intersect(s Shape, ray core.Ray) Intersections {
	return s.LocalIntersect(ray.Transform(s.Inverse()))
}

// NormalAt returns the unit world-space normal of s at a world point
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}
