package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane in object space, facing +y
type Plane struct {
	shapeBase
}

// NewPlane creates a new plane
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	// Parallel or coplanar rays never hit
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
