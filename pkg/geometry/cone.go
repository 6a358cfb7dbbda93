package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone around the object-space y axis whose radius at
// height y is |y|. Like Cylinder it can be truncated and capped; an infinite
// bound has no cap even when Closed is set.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewUnboundedCone creates an infinite open double cone
func NewUnboundedCone() *Cone {
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// NewCone creates a truncated cone
func NewCone(minimum, maximum float64, closed bool) (*Cone, error) {
	if minimum > maximum {
		return nil, fmt.Errorf("cone: %w (%g > %g)", ErrInvalidBounds, minimum, maximum)
	}
	return &Cone{
		shapeBase: newShapeBase(),
		Minimum:   minimum,
		Maximum:   maximum,
		Closed:    closed,
	}, nil
}

func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// Ray lies along the surface, no lateral hit

	case math.Abs(a) < core.Epsilon:
		// Parallel to one half of the cone: the quadratic degenerates to linear
		xs = c.appendWithinBounds(xs, ray, -cc/(2*b))

	default:
		disc := b*b - 4*a*cc
		if disc < 0 && disc > -core.Epsilon {
			disc = 0 // tangent rays lose the double root to rounding
		}
		if disc >= 0 {
			sqrtD := math.Sqrt(disc)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			xs = c.appendWithinBounds(xs, ray, t0)
			xs = c.appendWithinBounds(xs, ray, t1)
		}
	}

	return c.intersectCaps(xs, ray)
}

func (c *Cone) appendWithinBounds(xs Intersections, ray core.Ray, t float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if c.Minimum < y && y < c.Maximum {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

func (c *Cone) intersectCaps(xs Intersections, ray core.Ray) Intersections {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	// Cap radius equals the cap height
	for _, bound := range [2]float64{c.Minimum, c.Maximum} {
		if math.IsInf(bound, 0) {
			continue
		}
		t := (bound - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, math.Abs(bound)) {
			xs = append(xs, NewIntersection(t, c))
		}
	}
	return xs
}

func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon:
		return core.Vector(0, 1, 0)
	case dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon:
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.Vector(point.X, y, point.Z)
}
