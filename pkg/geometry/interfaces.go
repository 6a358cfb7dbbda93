package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a surface with its own transform and material that can be hit by rays.
// Intersection and normals are computed in the shape's local frame; Intersect and
// NormalAt handle the conversion to and from world space.
//
// Shape identity is the pointer value held in the interface, so two Shape values
// compare equal only when they refer to the same surface.
type Shape interface {
	material.ObjectSpace

	Transform() core.Matrix
	Inverse() core.Matrix
	// SetTransform stores m with its inverse. Singular transforms are rejected.
	SetTransform(m core.Matrix) error

	// Material returns the stored material for in-place edits. Such edits skip
	// validation; World.Add checks the materials it takes ownership of.
	Material() *material.Material
	// SetMaterial stores m after validating it
	SetMaterial(m material.Material) error

	Parent() *Group
	setParent(g *Group)

	// LocalIntersect intersects a ray already in object space
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the (possibly unnormalized) normal at an object-space point
	LocalNormalAt(point core.Tuple) core.Tuple
	// NormalToWorld maps an object-space normal to a unit world-space normal
	NormalToWorld(normal core.Tuple) core.Tuple
}
