package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	Workers    int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Reflection/refraction bounces per camera ray
	BandHeight int // Rows per task
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers:    0,
		MaxDepth:   integrator.DefaultMaxDepth,
		BandHeight: 16,
	}
}

// Render traces every pixel in row-major order on the calling goroutine with
// the default recursion depth
func Render(camera *Camera, w *world.World) *canvas.Canvas {
	c := canvas.New(camera.HSize, camera.VSize)
	br := NewBandRenderer(camera, w, integrator.NewWhittedIntegrator(integrator.DefaultMaxDepth))
	br.RenderBounds(c.Bounds(), c)
	return c
}

// Raytracer renders a world through a camera using a pool of workers
type Raytracer struct {
	camera *Camera
	world  *world.World
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(camera *Camera, w *world.World, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		camera: camera,
		world:  w,
		config: config,
		logger: logger,
	}
}

// RenderParallel renders the image in horizontal bands on a worker pool. The
// world must not be modified until it returns. The result matches Render for
// the same depth. Cancelling ctx stops the render between bands.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	startTime := time.Now()

	c := canvas.New(rt.camera.HSize, rt.camera.VSize)
	bands := NewBandGrid(c.Width, c.Height, rt.config.BandHeight)
	br := NewBandRenderer(rt.camera, rt.world, integrator.NewWhittedIntegrator(rt.config.MaxDepth))

	pool := NewWorkerPool(br, len(bands), rt.config.Workers)
	pool.Start(ctx)
	defer pool.Stop()

	rt.logger.Printf("Rendering %dx%d in %d bands (using %d workers)...\n",
		c.Width, c.Height, len(bands), pool.GetNumWorkers())

	for i, band := range bands {
		pool.SubmitTask(BandTask{Band: band, TaskID: i, Canvas: c})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	for range bands {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			rt.logger.Printf("Rendering cancelled after %d of %d bands\n", stats.TotalBands, len(bands))
			return nil, RenderStats{}, result.Error
		}
		stats.Merge(result.Stats)
	}

	stats.Duration = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d pixels)\n", stats.Duration, stats.TotalPixels)

	return c, stats, nil
}
