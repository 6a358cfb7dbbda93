package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Lighting evaluates the Phong reflection model for one light at a surface point.
// eye and normal must be unit vectors. A shadowed point receives ambient light only.
func Lighting(m Material, object ObjectSpace, light lights.Light, point, eye, normal core.Tuple, inShadow bool) core.Color {
	sample := light.Sample(point)

	// Combine surface color with the light's color
	effectiveColor := m.ColorAt(object, point).MultiplyColor(sample.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	black := core.NewColor(0, 0, 0)
	diffuse, specular := black, black

	// Negative means the light is on the other side of the surface
	lightDotNormal := sample.Direction.Dot(normal)
	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		// Negative means the light reflects away from the eye
		reflectDotEye := sample.Direction.Negate().Reflect(normal).Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = sample.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
