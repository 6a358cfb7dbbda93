package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every object-space axis
type Cube struct {
	shapeBase
}

// NewCube creates a new cube
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// LocalIntersect uses the slab method: the ray is inside the cube between the
// largest per-axis entry and the smallest per-axis exit
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := max(xtMin, ytMin, ztMin)
	tMax := min(xtMax, ytMax, ztMax)
	if tMin > tMax {
		return nil
	}

	return Intersections{NewIntersection(tMin, c), NewIntersection(tMax, c)}
}

// checkAxis returns the ordered entry and exit t for one slab
func checkAxis(origin, direction float64) (float64, float64) {
	tMin := slabDistance(-1-origin, direction)
	tMax := slabDistance(1-origin, direction)
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// slabDistance divides numerator by direction, returning a signed infinity
// when the ray runs parallel to the slab
func slabDistance(numerator, direction float64) float64 {
	if math.Abs(direction) >= core.Epsilon {
		return numerator / direction
	}
	if numerator < 0 {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	ax, ay, az := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := max(ax, ay, az)

	switch maxc {
	case ax:
		return core.Vector(point.X, 0, 0)
	case ay:
		return core.Vector(0, point.Y, 0)
	default:
		return core.Vector(0, 0, point.Z)
	}
}
