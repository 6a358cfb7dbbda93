package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expected  []float64
	}{
		{"two points", core.Point(0, 0, -5), core.Vector(0, 0, 1), []float64{4, 6}},
		{"tangent", core.Point(0, 1, -5), core.Vector(0, 0, 1), []float64{5, 5}},
		{"miss", core.Point(0, 2, -5), core.Vector(0, 0, 1), nil},
		{"origin inside", core.Point(0, 0, 0), core.Vector(0, 0, 1), []float64{-1, 1}},
		{"sphere behind ray", core.Point(0, 0, 5), core.Vector(0, 0, 1), []float64{-6, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			xs := Intersect(s, core.NewRay(tt.origin, tt.direction))
			expectTs(t, xs, tt.expected...)
			for _, x := range xs {
				if x.Object != s {
					t.Errorf("Expected intersection object to be the sphere, got %v", x.Object)
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	scaled := NewSphere()
	if err := scaled.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expectTs(t, Intersect(scaled, r), 3, 7)

	translated := NewSphere()
	if err := translated.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expectTs(t, Intersect(translated, r))
}

func TestSphere_Normal(t *testing.T) {
	k := math.Sqrt(3) / 3
	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{"y axis", core.Point(0, 1, 0), core.Vector(0, 1, 0)},
		{"z axis", core.Point(0, 0, 1), core.Vector(0, 0, 1)},
		{"nonaxial", core.Point(k, k, k), core.Vector(k, k, k)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NormalAt(NewSphere(), tt.point)
			if !n.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
			if !n.Equals(n.Normalize()) {
				t.Errorf("Normal %v is not normalized", n)
			}
		})
	}
}

func TestGlassSphere(t *testing.T) {
	s := GlassSphere()
	if !s.Transform().Equals(core.Identity4()) {
		t.Errorf("Expected identity transform, got\n%v", s.Transform())
	}
	if s.Material().Transparency != 1.0 {
		t.Errorf("Expected transparency 1.0, got %f", s.Material().Transparency)
	}
	if s.Material().RefractiveIndex != 1.5 {
		t.Errorf("Expected refractive index 1.5, got %f", s.Material().RefractiveIndex)
	}
}
