package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Band is a horizontal strip of the image rendered as one task
type Band struct {
	ID     int             // Index from the top of the image
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewBandGrid splits the image into full-width bands of at most bandHeight rows
func NewBandGrid(width, height, bandHeight int) []*Band {
	if bandHeight <= 0 {
		bandHeight = height
	}

	var bands []*Band
	for y0 := 0; y0 < height; y0 += bandHeight {
		y1 := min(y0+bandHeight, height) // Don't exceed image bounds
		bands = append(bands, &Band{
			ID:     len(bands),
			Bounds: image.Rect(0, y0, width, y1),
		})
	}
	return bands
}

// BandRenderer renders pixel regions with an integrator. It only reads the
// camera and world, so one renderer may be shared by several goroutines.
type BandRenderer struct {
	camera     *Camera
	world      *world.World
	integrator integrator.Integrator
}

// NewBandRenderer creates a new band renderer
func NewBandRenderer(camera *Camera, w *world.World, integratorInst integrator.Integrator) *BandRenderer {
	return &BandRenderer{
		camera:     camera,
		world:      w,
		integrator: integratorInst,
	}
}

// RenderBounds writes the color of every pixel within bounds to c
func (br *BandRenderer) RenderBounds(bounds image.Rectangle, c *canvas.Canvas) RenderStats {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := br.camera.RayForPixel(x, y)
			c.WritePixel(x, y, br.integrator.RayColor(ray, br.world))
		}
	}

	return RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		TotalBands:  1,
	}
}
