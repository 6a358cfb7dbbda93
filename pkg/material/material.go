package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidMaterial is returned when a material coefficient is out of range
var ErrInvalidMaterial = errors.New("invalid material")

// Material describes the surface properties used by the Phong model and by
// reflection and refraction
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64 // 1 = vacuum
	Pattern         Pattern // Optional, overrides Color when set
}

// DefaultMaterial returns a white, slightly shiny, opaque material
func DefaultMaterial() Material {
	return Material{
		Color:           core.NewColor(1, 1, 1),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Validate rejects coefficients that would make the shading model undefined
func (m Material) Validate() error {
	switch {
	case m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0:
		return fmt.Errorf("%w: negative phong coefficient (ambient=%g diffuse=%g specular=%g)",
			ErrInvalidMaterial, m.Ambient, m.Diffuse, m.Specular)
	case m.Shininess <= 0:
		return fmt.Errorf("%w: shininess must be positive, got %g", ErrInvalidMaterial, m.Shininess)
	case m.Reflective < 0 || m.Reflective > 1:
		return fmt.Errorf("%w: reflective must be in [0,1], got %g", ErrInvalidMaterial, m.Reflective)
	case m.Transparency < 0 || m.Transparency > 1:
		return fmt.Errorf("%w: transparency must be in [0,1], got %g", ErrInvalidMaterial, m.Transparency)
	case m.RefractiveIndex < 1:
		return fmt.Errorf("%w: refractive index must be >= 1, got %g", ErrInvalidMaterial, m.RefractiveIndex)
	}
	return nil
}

// ColorAt returns the base color of the material at a world point on object,
// sampling the pattern when one is set
func (m Material) ColorAt(object ObjectSpace, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return PatternAtShape(m.Pattern, object, worldPoint)
}
