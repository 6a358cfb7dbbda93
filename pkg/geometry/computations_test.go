package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPrepareComputations(t *testing.T) {
	t.Run("outside hit", func(t *testing.T) {
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		s := NewSphere()
		i := NewIntersection(4, s)
		comps := PrepareComputations(i, r, Intersections{i})

		if comps.T != i.T || comps.Object != s {
			t.Errorf("Computations lost the intersection: %+v", comps)
		}
		if !comps.Point.Equals(core.Point(0, 0, -1)) {
			t.Errorf("Expected point(0, 0, -1), got %v", comps.Point)
		}
		if !comps.EyeV.Equals(core.Vector(0, 0, -1)) {
			t.Errorf("Expected eye vector(0, 0, -1), got %v", comps.EyeV)
		}
		if !comps.NormalV.Equals(core.Vector(0, 0, -1)) {
			t.Errorf("Expected normal vector(0, 0, -1), got %v", comps.NormalV)
		}
		if comps.Inside {
			t.Error("Expected hit from the outside")
		}
	})

	t.Run("inside hit", func(t *testing.T) {
		r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		i := NewIntersection(1, NewSphere())
		comps := PrepareComputations(i, r, Intersections{i})

		if !comps.Point.Equals(core.Point(0, 0, 1)) {
			t.Errorf("Expected point(0, 0, 1), got %v", comps.Point)
		}
		if !comps.EyeV.Equals(core.Vector(0, 0, -1)) {
			t.Errorf("Expected eye vector(0, 0, -1), got %v", comps.EyeV)
		}
		if !comps.Inside {
			t.Error("Expected hit from the inside")
		}
		// normal is inverted to face the eye
		if !comps.NormalV.Equals(core.Vector(0, 0, -1)) {
			t.Errorf("Expected normal vector(0, 0, -1), got %v", comps.NormalV)
		}
	})

	t.Run("over point", func(t *testing.T) {
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		s := NewSphere()
		if err := s.SetTransform(core.Translation(0, 0, 1)); err != nil {
			t.Fatal(err)
		}
		i := NewIntersection(5, s)
		comps := PrepareComputations(i, r, Intersections{i})

		if comps.OverPoint.Z >= -core.Epsilon/2 {
			t.Errorf("Over point %v is not above the surface", comps.OverPoint)
		}
		if comps.Point.Z <= comps.OverPoint.Z {
			t.Errorf("Point %v should be below over point %v", comps.Point, comps.OverPoint)
		}
	})

	t.Run("under point", func(t *testing.T) {
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		s := GlassSphere()
		if err := s.SetTransform(core.Translation(0, 0, 1)); err != nil {
			t.Fatal(err)
		}
		i := NewIntersection(5, s)
		comps := PrepareComputations(i, r, Intersections{i})

		if comps.UnderPoint.Z <= core.Epsilon/2 {
			t.Errorf("Under point %v is not below the surface", comps.UnderPoint)
		}
		if comps.Point.Z >= comps.UnderPoint.Z {
			t.Errorf("Point %v should be above under point %v", comps.Point, comps.UnderPoint)
		}
	})

	t.Run("reflection vector", func(t *testing.T) {
		s2 := math.Sqrt2 / 2
		r := core.NewRay(core.Point(0, 1, -1), core.Vector(0, -s2, s2))
		i := NewIntersection(math.Sqrt2, NewPlane())
		comps := PrepareComputations(i, r, Intersections{i})

		if !comps.ReflectV.Equals(core.Vector(0, s2, s2)) {
			t.Errorf("Expected reflect vector(0, %f, %f), got %v", s2, s2, comps.ReflectV)
		}
	})
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := GlassSphere()
	b := GlassSphere()
	c := GlassSphere()
	if err := a.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetTransform(core.Translation(0, 0, -0.25)); err != nil {
		t.Fatal(err)
	}
	if err := c.SetTransform(core.Translation(0, 0, 0.25)); err != nil {
		t.Fatal(err)
	}
	a.Material().RefractiveIndex = 1.5
	b.Material().RefractiveIndex = 2.0
	c.Material().RefractiveIndex = 2.5

	r := core.NewRay(core.Point(0, 0, -4), core.Vector(0, 0, 1))
	xs := NewIntersections(
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	)

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}
	for i, want := range expected {
		comps := PrepareComputations(xs[i], r, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("Intersection %d: expected n1=%v n2=%v, got n1=%v n2=%v",
				i, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

func TestPrepareComputations_HitMissingFromList(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	s := GlassSphere()
	comps := PrepareComputations(NewIntersection(4, s), r, nil)
	if comps.N1 != 1.0 || comps.N2 != 1.0 {
		t.Errorf("Expected vacuum on both sides, got n1=%v n2=%v", comps.N1, comps.N2)
	}
}
