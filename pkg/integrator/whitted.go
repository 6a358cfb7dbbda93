package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// WhittedIntegrator resolves colors by recursive ray tracing: Phong shading with
// hard shadows plus mirror reflection and refraction, bounded by MaxDepth
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates a new Whitted integrator. A non-positive depth
// selects DefaultMaxDepth.
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &WhittedIntegrator{MaxDepth: maxDepth}
}

// RayColor implements the Integrator interface
func (wi *WhittedIntegrator) RayColor(ray core.Ray, w *world.World) core.Color {
	return ColorAt(w, ray, wi.MaxDepth)
}

var black = core.NewColor(0, 0, 0)

// ColorAt returns the color seen along ray, or black if it hits nothing.
// remaining is the number of secondary bounces still allowed.
func ColorAt(w *world.World, ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return black
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return ShadeHit(w, comps, remaining)
}

// ShadeHit combines local illumination with the reflected and refracted
// contributions at a prepared hit
func ShadeHit(w *world.World, comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material()

	surface := black
	if light, ok := w.Light(); ok {
		shadowed := w.IsShadowed(comps.OverPoint)
		surface = material.Lighting(*m, comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
	}

	reflected := ReflectedColor(w, comps, remaining)
	refracted := RefractedColor(w, comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror bounce from a hit
func ReflectedColor(w *world.World, comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return ColorAt(w, reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray through a hit using Snell's law.
// Total internal reflection contributes black.
func RefractedColor(w *world.World, comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return ColorAt(w, refractRay, remaining-1).Multiply(transparency)
}

// Schlick approximates the Fresnel reflectance at a hit, in [0, 1]
func Schlick(comps geometry.Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	// Leaving a denser medium can reflect totally
	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
