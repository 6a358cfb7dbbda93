package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// patternTransform holds the pattern-to-object transform shared by every pattern
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func identityTransform() patternTransform {
	return patternTransform{transform: core.Identity4(), inverse: core.Identity4()}
}

func (pt *patternTransform) Transform() core.Matrix { return pt.transform }
func (pt *patternTransform) Inverse() core.Matrix   { return pt.inverse }

// SetTransform stores m and its inverse
func (pt *patternTransform) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	pt.transform = m
	pt.inverse = inv
	return nil
}

// PatternAtShape samples pattern at a world point on object. The point is taken
// into object space first and then into pattern space, so the pattern can be
// scaled or rotated independently of the surface. A nil object means the
// object and world frames coincide.
func PatternAtShape(pattern Pattern, object ObjectSpace, worldPoint core.Tuple) core.Color {
	objectPoint := worldPoint
	if object != nil {
		objectPoint = object.WorldToObject(worldPoint)
	}
	patternPoint := pattern.Inverse().MultiplyTuple(objectPoint)
	return pattern.PatternAt(patternPoint)
}

// remEuclid returns the non-negative remainder of x / m
func remEuclid(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func lerp(a, b core.Color, t float64) core.Color {
	return a.Add(b.Subtract(a).Multiply(t))
}

// StripePattern alternates between A and B every unit along x
type StripePattern struct {
	patternTransform
	A, B core.Color
}

// NewStripePattern creates a new stripe pattern
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{patternTransform: identityTransform(), A: a, B: b}
}

func (p *StripePattern) PatternAt(point core.Tuple) core.Color {
	if math.Floor(remEuclid(point.X, 2)) == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B over each unit of x
type GradientPattern struct {
	patternTransform
	A, B core.Color
}

// NewGradientPattern creates a new gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{patternTransform: identityTransform(), A: a, B: b}
}

func (p *GradientPattern) PatternAt(point core.Tuple) core.Color {
	return lerp(p.A, p.B, point.X-math.Floor(point.X))
}

// CheckersPattern alternates A and B on the sum of the absolute coordinates
type CheckersPattern struct {
	patternTransform
	A, B core.Color
}

// NewCheckersPattern creates a new checkers pattern
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{patternTransform: identityTransform(), A: a, B: b}
}

func (p *CheckersPattern) PatternAt(point core.Tuple) core.Color {
	v := math.Abs(point.X) + math.Abs(point.Y) + math.Abs(point.Z)
	if math.Floor(remEuclid(v, 2)) == 0 {
		return p.A
	}
	return p.B
}

// RingPattern alternates A and B in concentric rings around the y axis
type RingPattern struct {
	patternTransform
	A, B core.Color
}

// NewRingPattern creates a new ring pattern
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{patternTransform: identityTransform(), A: a, B: b}
}

func (p *RingPattern) PatternAt(point core.Tuple) core.Color {
	radius := math.Hypot(point.X, point.Z)
	if math.Floor(remEuclid(radius, 2)) == 0 {
		return p.A
	}
	return p.B
}

// RadialGradientPattern blends from A to B along the distance from the y axis
type RadialGradientPattern struct {
	patternTransform
	A, B core.Color
}

// NewRadialGradientPattern creates a new radial gradient pattern
func NewRadialGradientPattern(a, b core.Color) *RadialGradientPattern {
	return &RadialGradientPattern{patternTransform: identityTransform(), A: a, B: b}
}

func (p *RadialGradientPattern) PatternAt(point core.Tuple) core.Color {
	v := remEuclid(math.Hypot(point.X, point.Z), 2)
	return lerp(p.A, p.B, v-math.Floor(v))
}

// TestPattern returns the pattern-space point as a color. Used to observe
// the transforms applied before sampling.
type TestPattern struct {
	patternTransform
}

// NewTestPattern creates a new test pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{patternTransform: identityTransform()}
}

func (p *TestPattern) PatternAt(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}
