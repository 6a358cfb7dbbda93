package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotPoint is returned when a tuple used as a position has w != 1
	ErrNotPoint = errors.New("tuple is not a point")
	// ErrNotVector is returned when a tuple used as a direction has w != 0
	ErrNotVector = errors.New("tuple is not a vector")
)

// Tuple is a homogeneous 4-component value. Points have W=1, vectors W=0.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a position tuple (w=1)
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a direction tuple (w=0)
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// CheckPoint returns ErrNotPoint unless t is a point
func CheckPoint(t Tuple) error {
	if !t.IsPoint() {
		return fmt.Errorf("%w: %v", ErrNotPoint, t)
	}
	return nil
}

// CheckVector returns ErrNotVector unless t is a vector
func CheckVector(t Tuple) error {
	if !t.IsVector() {
		return fmt.Errorf("%w: %v", ErrNotVector, t)
	}
	return nil
}

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of a vector. The w component is ignored.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit vector in the same direction
func (t Tuple) Normalize() Tuple {
	length := t.Magnitude()
	if length == 0 {
		return Vector(0, 0, 0)
	}
	return Vector(t.X/length, t.Y/length, t.Z/length)
}

// Dot returns the dot product of two vectors
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns t reflected around normal: t - normal*2*dot(t, normal)
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals compares all four components within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}

func (t Tuple) String() string {
	switch t.W {
	case 0:
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	case 1:
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}
