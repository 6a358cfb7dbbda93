package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern produces a color as a function of a point in pattern space
type Pattern interface {
	// PatternAt samples the pattern at a point already in pattern space
	PatternAt(point core.Tuple) core.Color

	Transform() core.Matrix
	Inverse() core.Matrix
	// SetTransform stores the transform and its inverse. Singular transforms are rejected.
	SetTransform(m core.Matrix) error
}

// ObjectSpace converts world-space points into an object's local frame.
// Shapes implement it so patterns can be evaluated relative to the decorated surface.
type ObjectSpace interface {
	WorldToObject(point core.Tuple) core.Tuple
}
