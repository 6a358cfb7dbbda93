package geometry

import (
	"testing"
)

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()
	tests := []struct {
		name     string
		ts       []float64
		expected float64
		found    bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"unsorted mixed", []float64{5, 7, -3, 2}, 2, true},
		{"zero counts as visible", []float64{-0.5, 0, 3}, 0, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var xs Intersections
			for _, v := range tt.ts {
				xs = append(xs, NewIntersection(v, s))
			}

			hit, ok := xs.Hit()
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if ok && hit.T != tt.expected {
				t.Errorf("Expected hit at t=%f, got t=%f", tt.expected, hit.T)
			}
			if ok && hit.Object != s {
				t.Error("Hit lost its object")
			}
		})
	}
}

func TestIntersections_Sort(t *testing.T) {
	s1 := NewSphere()
	s2 := NewSphere()
	xs := NewIntersections(
		NewIntersection(5, s1),
		NewIntersection(-1, s1),
		NewIntersection(2, s1),
		NewIntersection(2, s2),
	)

	expected := []float64{-1, 2, 2, 5}
	for i, want := range expected {
		if xs[i].T != want {
			t.Errorf("Position %d: expected t=%f, got t=%f", i, want, xs[i].T)
		}
	}
	// equal t values keep their insertion order
	if xs[1].Object != s1 || xs[2].Object != s2 {
		t.Error("Sort is not stable for equal t values")
	}
}
