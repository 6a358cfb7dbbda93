package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Group is a collection of shapes sharing a common transform. Children are
// positioned relative to the group, and groups can be nested.
type Group struct {
	shapeBase
	children []Shape
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{shapeBase: newShapeBase()}
}

// AddChild adds s to the group and records the group as its parent
func (g *Group) AddChild(s Shape) error {
	if s == nil {
		return errors.New("group: nil shape")
	}
	if s.Parent() != nil {
		return fmt.Errorf("group: %w", ErrShapeHasParent)
	}
	if other, ok := s.(*Group); ok && other.contains(g) {
		return errors.New("group: adding the group would create a cycle")
	}

	s.setParent(g)
	g.children = append(g.children, s)
	return nil
}

// Children returns the group's direct children
func (g *Group) Children() []Shape {
	return g.children
}

// contains reports whether target is g or one of its descendants
func (g *Group) contains(target *Group) bool {
	if g == target {
		return true
	}
	for _, child := range g.children {
		if sub, ok := child.(*Group); ok && sub.contains(target) {
			return true
		}
	}
	return false
}

// LocalIntersect concatenates the hits of every child. The result is not sorted.
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	return xs
}

// LocalNormalAt panics: normals are always computed on the concrete child that was hit
func (g *Group) LocalNormalAt(point core.Tuple) core.Tuple {
	panic("geometry: LocalNormalAt called on a Group")
}
