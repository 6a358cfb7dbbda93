package core

import (
	"math"
	"testing"
)

func TestTransforms_ApplyToTuples(t *testing.T) {
	halfQuarter := math.Pi / 4
	quarter := math.Pi / 2
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform Matrix
		input     Tuple
		expected  Tuple
	}{
		{"translate point", Translation(5, -3, 2), Point(-3, 4, 5), Point(2, 1, 7)},
		{"translation ignores vectors", Translation(5, -3, 2), Vector(-3, 4, 5), Vector(-3, 4, 5)},
		{"scale point", Scaling(2, 3, 4), Point(-4, 6, 8), Point(-8, 18, 32)},
		{"scale vector", Scaling(2, 3, 4), Vector(-4, 6, 8), Vector(-8, 18, 32)},
		{"reflection by negative scale", Scaling(-1, 1, 1), Point(2, 3, 4), Point(-2, 3, 4)},
		{"rotate x eighth", RotationX(halfQuarter), Point(0, 1, 0), Point(0, s2, s2)},
		{"rotate x quarter", RotationX(quarter), Point(0, 1, 0), Point(0, 0, 1)},
		{"rotate y eighth", RotationY(halfQuarter), Point(0, 0, 1), Point(s2, 0, s2)},
		{"rotate y quarter", RotationY(quarter), Point(0, 0, 1), Point(1, 0, 0)},
		{"rotate z eighth", RotationZ(halfQuarter), Point(0, 1, 0), Point(-s2, s2, 0)},
		{"rotate z quarter", RotationZ(quarter), Point(0, 1, 0), Point(-1, 0, 0)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), Point(2, 3, 4), Point(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), Point(2, 3, 4), Point(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), Point(2, 3, 4), Point(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), Point(2, 3, 4), Point(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 4), Point(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 4), Point(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transform.MultiplyTuple(tt.input); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransforms_InverseOfTranslation(t *testing.T) {
	inv, err := Translation(5, -3, 2).Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := inv.MultiplyTuple(Point(-3, 4, 5)); !got.Equals(Point(-8, 7, 3)) {
		t.Errorf("Expected point(-8, 7, 3), got %v", got)
	}
}

func TestTransforms_Chain(t *testing.T) {
	p := Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	stepwise := c.MultiplyTuple(b.MultiplyTuple(a.MultiplyTuple(p)))
	chained := Chain(a, b, c).MultiplyTuple(p)

	if !stepwise.Equals(Point(15, 0, 7)) {
		t.Errorf("Expected point(15, 0, 7), got %v", stepwise)
	}
	if !chained.Equals(stepwise) {
		t.Errorf("Chained transform %v differs from stepwise %v", chained, stepwise)
	}
}

func TestViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{
			name:     "default orientation",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, -1),
			up:       Vector(0, 1, 0),
			expected: Identity4(),
		},
		{
			name:     "looking in positive z",
			from:     Point(0, 0, 0),
			to:       Point(0, 0, 1),
			up:       Vector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "moves the world",
			from:     Point(0, 0, 8),
			to:       Point(0, 0, 0),
			up:       Vector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "arbitrary view",
			from: Point(1, 3, 2),
			to:   Point(4, -2, 8),
			up:   Vector(1, 1, 0),
			expected: NewMatrix4([4][4]float64{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0},
				{0, 0, 0, 1},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewTransform(tt.from, tt.to, tt.up); !got.Equals(tt.expected) {
				t.Errorf("Expected\n%v\ngot\n%v", tt.expected, got)
			}
		})
	}
}
