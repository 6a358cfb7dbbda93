package geometry

import (
	"cmp"
	"slices"
)

// Intersection records where along a ray a shape was hit
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of ray/shape intersections
type Intersections []Intersection

// NewIntersections collects xs into a list sorted by t
func NewIntersections(xs ...Intersection) Intersections {
	list := Intersections(xs)
	list.Sort()
	return list
}

// Sort orders the list by ascending t, keeping the relative order of equal t values
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the visible intersection: the one with the smallest non-negative t.
// The list does not need to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
