package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder around the object-space y axis, truncated
// to Minimum < y < Maximum and optionally capped at both ends. Infinite bounds
// are never capped.
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewUnboundedCylinder creates an infinite open cylinder
func NewUnboundedCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewCylinder creates a truncated cylinder
func NewCylinder(minimum, maximum float64, closed bool) (*Cylinder, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("cylinder: %w (%g > %g)", ErrInvalidBounds, minimum, maximum)
	}
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   minimum,
		Maximum:   maximum,
		Closed:    closed,
	}, nil
}

func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	// a ~ 0 means the ray is parallel to the axis and can only hit the caps
	a := d.X*d.X + d.Z*d.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*o.X*d.X + 2*o.Z*d.Z
		cc := o.X*o.X + o.Z*o.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		xs = c.appendWithinBounds(xs, ray, t0)
		xs = c.appendWithinBounds(xs, ray, t1)
	}

	return c.intersectCaps(xs, ray)
}

func (c *Cylinder) appendWithinBounds(xs Intersections, ray core.Ray, t float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if c.Minimum < y && y < c.Maximum {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

func (c *Cylinder) intersectCaps(xs Intersections, ray core.Ray) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, bound := range [2]float64{c.Minimum, c.Maximum} {
		if math.IsInf(bound, 0) {
			continue
		}
		t := (bound - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, 1) {
			xs = append(xs, NewIntersection(t, c))
		}
	}
	return xs
}

// withinCap reports whether the ray at t lies inside a disc of the given radius
// around the y axis. The comparison is padded by Epsilon so hits on the rim count.
func withinCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius+core.Epsilon
}

func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-core.Epsilon:
		return core.Vector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+core.Epsilon:
		return core.Vector(0, -1, 0)
	default:
		return core.Vector(point.X, 0, point.Z)
	}
}
