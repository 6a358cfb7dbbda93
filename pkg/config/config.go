package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig contains raytracer configuration
type RenderConfig struct {
	Width      int `yaml:"width"`       // Overrides the scene camera when > 0
	Height     int `yaml:"height"`      // Overrides the scene camera when > 0
	MaxDepth   int `yaml:"max_depth"`   // Reflection/refraction bounces
	Workers    int `yaml:"workers"`     // 0 = CPU count
	BandHeight int `yaml:"band_height"` // Rows per task
}

// OutputConfig contains output file configuration
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // ppm, png
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:      0,
			Height:     0,
			MaxDepth:   integrator.DefaultMaxDepth,
			Workers:    0,
			BandHeight: 16,
		},
		Output: OutputConfig{
			Dir:    "output",
			Format: FormatPPM,
		},
	}
}

// LoadConfig loads the configuration from a file. Settings missing from the
// file keep their defaults. On error the defaults are returned with it.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate checks that every setting is in range
func (c *Config) Validate() error {
	r := c.Render
	switch {
	case r.Width < 0 || r.Height < 0:
		return fmt.Errorf("%w: render size %dx%d is negative", ErrInvalidConfig, r.Width, r.Height)
	case (r.Width == 0) != (r.Height == 0):
		return fmt.Errorf("%w: render width and height must be set together", ErrInvalidConfig)
	case r.MaxDepth < 1:
		return fmt.Errorf("%w: max_depth must be at least 1, got %d", ErrInvalidConfig, r.MaxDepth)
	case r.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, r.Workers)
	case r.BandHeight < 1:
		return fmt.Errorf("%w: band_height must be at least 1, got %d", ErrInvalidConfig, r.BandHeight)
	case c.Output.Dir == "":
		return fmt.Errorf("%w: output dir is empty", ErrInvalidConfig)
	case c.Output.Format != FormatPPM && c.Output.Format != FormatPNG:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

// RendererConfig converts the render settings for the parallel renderer
func (c *Config) RendererConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		Workers:    c.Render.Workers,
		MaxDepth:   c.Render.MaxDepth,
		BandHeight: c.Render.BandHeight,
	}
}
