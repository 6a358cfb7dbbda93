package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	shapeBase
}

// NewSphere creates a new unit sphere
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// GlassSphere creates a fully transparent sphere with the refractive index of glass
func GlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{NewIntersection(t1, s), NewIntersection(t2, s)}
}

func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(point.X, point.Y, point.Z)
}
