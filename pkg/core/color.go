package core

import "fmt"

// Color is an unclamped RGB triple. Clamping happens only when encoding output.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Equals compares channels within Epsilon
func (c Color) Equals(other Color) bool {
	return ApproxEqual(c.R, other.R) && ApproxEqual(c.G, other.G) && ApproxEqual(c.B, other.B)
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}
