package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	TotalBands  int           // Number of bands rendered
	Workers     int           // Number of workers used
	Duration    time.Duration // Wall-clock render time
}

// Merge adds the pixel and band counts of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalBands += other.TotalBands
}

// AverageLuminance returns the mean Rec. 709 luminance of the clamped canvas colors
func AverageLuminance(c *canvas.Canvas) float64 {
	if c.Width == 0 || c.Height == 0 {
		return 0
	}

	var total float64
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y).Clamp(0, 1)
			total += 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
		}
	}
	return total / float64(c.Width*c.Height)
}
