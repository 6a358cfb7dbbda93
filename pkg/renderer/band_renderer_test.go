package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// constantIntegrator returns the same color for every ray
type constantIntegrator struct {
	color     core.Color
	callCount int
}

func (ci *constantIntegrator) RayColor(ray core.Ray, w *world.World) core.Color {
	ci.callCount++
	return ci.color
}

func TestNewBandGrid(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		bandHeight int
		expected   []image.Rectangle
	}{
		{
			name:  "uneven split",
			width: 10, height: 35, bandHeight: 16,
			expected: []image.Rectangle{
				image.Rect(0, 0, 10, 16),
				image.Rect(0, 16, 10, 32),
				image.Rect(0, 32, 10, 35),
			},
		},
		{
			name:  "band taller than image",
			width: 4, height: 3, bandHeight: 16,
			expected: []image.Rectangle{image.Rect(0, 0, 4, 3)},
		},
		{
			name:  "non-positive band height uses one band",
			width: 4, height: 3, bandHeight: 0,
			expected: []image.Rectangle{image.Rect(0, 0, 4, 3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := NewBandGrid(tt.width, tt.height, tt.bandHeight)
			if len(bands) != len(tt.expected) {
				t.Fatalf("Expected %d bands, got %d", len(tt.expected), len(bands))
			}
			for i, band := range bands {
				if band.ID != i {
					t.Errorf("Band %d has ID %d", i, band.ID)
				}
				if band.Bounds != tt.expected[i] {
					t.Errorf("Band %d: expected %v, got %v", i, tt.expected[i], band.Bounds)
				}
			}
		})
	}
}

func TestBandRenderer_RenderBounds(t *testing.T) {
	camera, err := NewCamera(6, 4, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	red := core.NewColor(1, 0, 0)
	ci := &constantIntegrator{color: red}
	br := NewBandRenderer(camera, world.New(), ci)

	c := canvas.New(6, 4)
	stats := br.RenderBounds(image.Rect(0, 1, 6, 3), c)

	if stats.TotalPixels != 12 || stats.TotalBands != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if ci.callCount != 12 {
		t.Errorf("Expected 12 integrator calls, got %d", ci.callCount)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			expected := core.Color{}
			if y == 1 || y == 2 {
				expected = red
			}
			if got := c.PixelAt(x, y); got != expected {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
			}
		}
	}
}
