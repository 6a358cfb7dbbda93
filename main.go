package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the command line settings
type options struct {
	sceneID    string
	configPath string
	outDir     string // Overrides output.dir when set
	format     string // Overrides output.format when set
	workers    int    // Overrides render.workers when >= 0
}

func main() {
	// Parse command line flags
	opts := options{}
	flag.StringVar(&opts.sceneID, "scene", "default", "Built-in scene, yaml:<name> or path to a .yaml scene file")
	flag.StringVar(&opts.configPath, "config", "", "Path to a YAML render config")
	flag.StringVar(&opts.outDir, "out", "", "Output directory (overrides config)")
	flag.StringVar(&opts.format, "format", "", "Output format: 'ppm' or 'png' (overrides config)")
	flag.IntVar(&opts.workers, "workers", -1, "Number of parallel workers, 0 = CPU count (overrides config)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	filename, err := run(context.Background(), opts, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	if response, err := scene.ListAllScenes(); err == nil {
		for _, group := range response.Groups {
			for _, info := range group.Scenes {
				fmt.Printf("  %-20s - %s\n", info.ID, info.Description)
			}
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>_<id>.<format>")
}

// loadConfig reads the config file, if any, and applies the flag overrides
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.outDir != "" {
		cfg.Output.Dir = opts.outDir
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.workers >= 0 {
		cfg.Render.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createScene builds the scene named on the command line
func createScene(sceneID string) (*scene.Scene, error) {
	if sceneID == "" {
		return nil, errors.New("scene name cannot be empty")
	}
	return scene.Create(sceneID)
}

// run renders the selected scene and writes it to a new file, returning its path
func run(ctx context.Context, opts options, logger core.Logger) (string, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return "", err
	}

	selectedScene, err := createScene(opts.sceneID)
	if err != nil {
		return "", err
	}
	if cfg.Render.Width > 0 {
		if err := selectedScene.Resize(cfg.Render.Width, cfg.Render.Height); err != nil {
			return "", err
		}
	}

	renderID := uuid.New()
	logger.Printf("Render %s: scene %s, %d primitives, %dx%d\n", renderID, selectedScene.Name,
		selectedScene.GetPrimitiveCount(), selectedScene.Camera.HSize, selectedScene.Camera.VSize)

	raytracer := renderer.NewRaytracer(selectedScene.Camera, selectedScene.World, cfg.RendererConfig(), logger)
	img, stats, err := raytracer.RenderParallel(ctx)
	if err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Average luminance: %.4f (%d pixels, %d workers)\n",
		renderer.AverageLuminance(img), stats.TotalPixels, stats.Workers)

	// Create output directory for this scene
	outputDir := filepath.Join(cfg.Output.Dir, filepath.Base(selectedScene.Name))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	filename := outputFilename(outputDir, renderID, cfg.Output.Format, time.Now())
	if err := saveCanvas(filename, img, cfg.Output.Format); err != nil {
		return "", err
	}
	return filename, nil
}

// saveCanvas writes the canvas to a new file. A failed close is reported like
// a failed write, since buffered data may not have reached the disk.
func saveCanvas(filename string, img *canvas.Canvas, format string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", filename, closeErr)
		}
	}()

	if err := writeCanvas(file, img, format); err != nil {
		return fmt.Errorf("error saving %s: %w", format, err)
	}
	return nil
}

// outputFilename builds a timestamped file name tagged with the render ID
func outputFilename(dir string, renderID uuid.UUID, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("render_%s_%s.%s", timestamp, renderID.String()[:8], format))
}

// writeCanvas encodes the canvas in the given output format
func writeCanvas(w io.Writer, img *canvas.Canvas, format string) error {
	switch format {
	case config.FormatPPM:
		return img.WritePPM(w)
	case config.FormatPNG:
		return img.WritePNG(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
