package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is anything that can illuminate a shading point
type Light interface {
	Type() LightType

	// Sample returns the light as seen from point.
	// Direction points FROM the shading point TO the light.
	Sample(point core.Tuple) LightSample

	Validate() error
}

// LightSample describes a light relative to a shading point
type LightSample struct {
	Point     core.Tuple // Position of the light
	Direction core.Tuple // Unit vector from shading point to light
	Distance  float64    // Distance from shading point to light
	Intensity core.Color // Emitted intensity, not attenuated by distance
}
