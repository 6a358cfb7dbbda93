package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestAverageLuminance(t *testing.T) {
	// Red 0.2126 + green 0.7152 + blue 0.0722 + black 0 averages to 0.25
	c := canvas.New(2, 2)
	c.WritePixel(0, 0, core.NewColor(1, 0, 0))
	c.WritePixel(1, 0, core.NewColor(0, 1, 0))
	c.WritePixel(0, 1, core.NewColor(0, 0, 1))

	if avg := AverageLuminance(c); !core.ApproxEqual(avg, 0.25) {
		t.Errorf("Expected average luminance 0.25, got %f", avg)
	}
}

func TestAverageLuminance_ClampsBrightPixels(t *testing.T) {
	c := canvas.New(1, 1)
	c.WritePixel(0, 0, core.NewColor(3, 3, 3))

	if avg := AverageLuminance(c); !core.ApproxEqual(avg, 1.0) {
		t.Errorf("Expected average luminance 1.0, got %f", avg)
	}
	if avg := AverageLuminance(canvas.New(0, 0)); avg != 0 {
		t.Errorf("Expected 0 for an empty canvas, got %f", avg)
	}
}

func TestRenderStats_Merge(t *testing.T) {
	stats := RenderStats{Workers: 4, Duration: time.Second}
	stats.Merge(RenderStats{TotalPixels: 10, TotalBands: 1})
	stats.Merge(RenderStats{TotalPixels: 5, TotalBands: 1})

	if stats.TotalPixels != 15 || stats.TotalBands != 2 {
		t.Errorf("Unexpected merged stats %+v", stats)
	}
	if stats.Workers != 4 || stats.Duration != time.Second {
		t.Errorf("Merge should not change workers or duration, got %+v", stats)
	}
}
