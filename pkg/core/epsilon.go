package core

import "math"

// Epsilon is the tolerance used for geometric comparisons and for nudging
// secondary ray origins off a surface.
const Epsilon = 1e-4

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return ApproxEqualTol(a, b, Epsilon)
}

// ApproxEqualTol reports whether a and b differ by less than tolerance.
// Equal infinities compare equal.
func ApproxEqualTol(a, b, tolerance float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < tolerance
}
