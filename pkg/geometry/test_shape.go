package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// TestShape never reports hits but remembers the last object-space ray it was
// given, which makes the world-to-object conversion observable
type TestShape struct {
	shapeBase
	SavedRay core.Ray
}

// NewTestShape creates a new test shape
func NewTestShape() *TestShape {
	return &TestShape{shapeBase: newShapeBase()}
}

func (s *TestShape) LocalIntersect(ray core.Ray) Intersections {
	s.SavedRay = ray
	return nil
}

func (s *TestShape) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(point.X, point.Y, point.Z)
}
