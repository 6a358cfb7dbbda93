package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Construction(t *testing.T) {
	intensity := core.NewColor(1, 1, 1)
	position := core.Point(0, 0, 0)
	light := NewPointLight(position, intensity)

	if !light.Position.Equals(position) {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
	if light.Type() != LightTypePoint {
		t.Errorf("Expected type %q, got %q", LightTypePoint, light.Type())
	}
}

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.Point(0, 10, 0), core.NewColor(0.5, 0.5, 0.5))

	tests := []struct {
		name              string
		point             core.Tuple
		expectedDirection core.Tuple
		expectedDistance  float64
	}{
		{"directly below", core.Point(0, 0, 0), core.Vector(0, 1, 0), 10},
		{"diagonal", core.Point(10, 0, 0), core.Vector(-math.Sqrt2/2, math.Sqrt2/2, 0), 10 * math.Sqrt2},
		{"above the light", core.Point(0, 20, 0), core.Vector(0, -1, 0), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := light.Sample(tt.point)
			if !sample.Direction.Equals(tt.expectedDirection) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDirection, sample.Direction)
			}
			if !core.ApproxEqual(sample.Distance, tt.expectedDistance) {
				t.Errorf("Expected distance %f, got %f", tt.expectedDistance, sample.Distance)
			}
			if !sample.Intensity.Equals(light.Intensity) {
				t.Errorf("Expected intensity %v, got %v", light.Intensity, sample.Intensity)
			}
		})
	}
}

func TestPointLight_Validate(t *testing.T) {
	tests := []struct {
		name    string
		light   *PointLight
		wantErr bool
	}{
		{"valid", NewPointLight(core.Point(-10, 10, -10), core.NewColor(1, 1, 1)), false},
		{"vector position", NewPointLight(core.Vector(-10, 10, -10), core.NewColor(1, 1, 1)), true},
		{"negative intensity", NewPointLight(core.Point(0, 0, 0), core.NewColor(1, -0.1, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.light.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidLight) {
				t.Errorf("Expected ErrInvalidLight, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
