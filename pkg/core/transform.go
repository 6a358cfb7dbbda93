package core

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	return NewMatrix4([4][4]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling returns a matrix that scales along each axis
func Scaling(x, y, z float64) Matrix {
	return NewMatrix4([4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotationX returns a rotation of r radians around the x axis
func RotationX(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix4([4][4]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a rotation of r radians around the y axis
func RotationY(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix4([4][4]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a rotation of r radians around the z axis
func RotationZ(r float64) Matrix {
	cos, sin := math.Cos(r), math.Sin(r)
	return NewMatrix4([4][4]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix4([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// Chain composes transforms so that the first argument is applied first.
// Chain(a, b, c) == c * b * a.
func Chain(transforms ...Matrix) Matrix {
	out := Identity4()
	for _, t := range transforms {
		out = t.Multiply(out)
	}
	return out
}

// ViewTransform orients the world relative to an eye at from looking toward to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix4([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
