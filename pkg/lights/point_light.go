package lights

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidLight is returned for lights with a malformed position or negative intensity
var ErrInvalidLight = errors.New("invalid light")

// PointLight is an omnidirectional light with no size
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample implements the Light interface
func (pl *PointLight) Sample(point core.Tuple) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Magnitude()

	return LightSample{
		Point:     pl.Position,
		Direction: toLight.Normalize(),
		Distance:  distance,
		Intensity: pl.Intensity,
	}
}

// Validate checks that the position is a point and intensity is non-negative
func (pl *PointLight) Validate() error {
	if err := core.CheckPoint(pl.Position); err != nil {
		return fmt.Errorf("%w: position: %w", ErrInvalidLight, err)
	}
	if pl.Intensity.R < 0 || pl.Intensity.G < 0 || pl.Intensity.B < 0 {
		return fmt.Errorf("%w: negative intensity %v", ErrInvalidLight, pl.Intensity)
	}
	return nil
}
