package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// DefaultMaxDepth is the number of reflection/refraction bounces allowed for a camera ray
const DefaultMaxDepth = 4

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a camera ray
	RayColor(ray core.Ray, w *world.World) core.Color
}
