package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func TestNewCamera(t *testing.T) {
	c, err := NewCamera(160, 120, math.Pi/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.HSize != 160 || c.VSize != 120 || c.FieldOfView != math.Pi/2 {
		t.Errorf("Unexpected camera fields %+v", c)
	}
	if !c.Transform().Equals(core.Identity4()) {
		t.Errorf("Expected identity transform, got %v", c.Transform())
	}
}

func TestNewCamera_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
		fov          float64
	}{
		{"zero width", 0, 10, math.Pi / 2},
		{"negative height", 10, -1, math.Pi / 2},
		{"zero field of view", 10, 10, 0},
		{"field of view of pi", 10, 10, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCamera(tt.hsize, tt.vsize, tt.fov); !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(tt.hsize, tt.vsize, math.Pi/2)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !core.ApproxEqual(c.PixelSize(), 0.01) {
				t.Errorf("Expected pixel size 0.01, got %v", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	tests := []struct {
		name      string
		transform core.Matrix
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "through the center of the canvas",
			transform: core.Identity4(),
			px:        100, py: 50,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, -1),
		},
		{
			name:      "through a corner of the canvas",
			transform: core.Identity4(),
			px:        0, py: 0,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "when the camera is transformed",
			transform: core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)),
			px:        100, py: 50,
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(math.Sqrt2/2, 0, -math.Sqrt2/2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(201, 101, math.Pi/2)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err := c.SetTransform(tt.transform); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			r := c.RayForPixel(tt.px, tt.py)
			if !r.Origin.Equals(tt.origin) {
				t.Errorf("Expected origin %v, got %v", tt.origin, r.Origin)
			}
			if !r.Direction.Equals(tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, r.Direction)
			}
		})
	}
}

func TestCamera_SetTransform_Singular(t *testing.T) {
	c, err := NewCamera(10, 10, math.Pi/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := c.SetTransform(core.Scaling(1, 0, 1)); !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
	if !c.Transform().Equals(core.Identity4()) {
		t.Error("Singular transform should leave the previous transform in place")
	}
}

func TestCamera_LookAt(t *testing.T) {
	from, to, up := core.Point(1, 3, 2), core.Point(4, -2, 8), core.Vector(1, 1, 0)

	c, err := NewCamera(10, 10, math.Pi/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := c.LookAt(from, to, up); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !c.Transform().Equals(core.ViewTransform(from, to, up)) {
		t.Errorf("Expected view transform, got %v", c.Transform())
	}
}

func TestCamera_LookAt_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		from     core.Tuple
		to       core.Tuple
		up       core.Tuple
		expected error
	}{
		{"from is a vector", core.Vector(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0), core.ErrNotPoint},
		{"to is a vector", core.Point(0, 0, -5), core.Vector(0, 0, 0), core.Vector(0, 1, 0), core.ErrNotPoint},
		{"up is a point", core.Point(0, 0, -5), core.Point(0, 0, 0), core.Point(0, 1, 0), core.ErrNotVector},
		{"eye on target", core.Point(1, 1, 1), core.Point(1, 1, 1), core.Vector(0, 1, 0), ErrInvalidCamera},
		{"up along sight", core.Point(0, 5, 0), core.Point(0, 0, 0), core.Vector(0, 1, 0), ErrInvalidCamera},
		{"zero up", core.Point(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 0, 0), ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(10, 10, math.Pi/2)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if err := c.LookAt(tt.from, tt.to, tt.up); !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
			if !c.Transform().Equals(core.Identity4()) {
				t.Error("Rejected view should leave the previous transform in place")
			}
		})
	}
}

func TestCamera_Resized(t *testing.T) {
	c, err := NewCamera(11, 11, math.Pi/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	view := core.ViewTransform(core.Point(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0))
	if err := c.SetTransform(view); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	resized, err := c.Resized(200, 125)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resized.HSize != 200 || resized.VSize != 125 {
		t.Errorf("Expected 200x125, got %dx%d", resized.HSize, resized.VSize)
	}
	if !resized.Transform().Equals(view) {
		t.Errorf("Expected transform to be kept, got %v", resized.Transform())
	}
	if !core.ApproxEqual(resized.PixelSize(), 0.01) {
		t.Errorf("Expected pixel size 0.01, got %v", resized.PixelSize())
	}
}

// defaultWorldCamera returns the 11x11 camera looking at the default world from (0, 0, -5)
func defaultWorldCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := NewCamera(11, 11, math.Pi/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	view := core.ViewTransform(core.Point(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0))
	if err := c.SetTransform(view); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return c
}

func TestRender_DefaultWorld(t *testing.T) {
	img := Render(defaultWorldCamera(t), world.Default())

	if img.Width != 11 || img.Height != 11 {
		t.Fatalf("Expected 11x11 canvas, got %dx%d", img.Width, img.Height)
	}
	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if got := img.PixelAt(5, 5); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	camera := defaultWorldCamera(t)
	w := world.Default()

	first := Render(camera, w).ToPPM()
	second := Render(camera, w).ToPPM()
	if first != second {
		t.Error("Rendering the same world twice produced different output")
	}
}
