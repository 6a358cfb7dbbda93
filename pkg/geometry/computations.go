package geometry

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations holds the state derived from a hit that shading needs
type Computations struct {
	T      float64
	Object Shape

	Point      core.Tuple
	OverPoint  core.Tuple // Point nudged above the surface, origin for shadow and reflection rays
	UnderPoint core.Tuple // Point nudged below the surface, origin for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool

	N1 float64 // Refractive index of the medium being exited
	N2 float64 // Refractive index of the medium being entered
}

// PrepareComputations derives shading state for hit. xs must contain every
// intersection along ray in ascending order so that the refractive indices on
// either side of the hit can be determined.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.At(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = NormalAt(hit.Object, comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs keeping a stack of the shapes the ray is inside.
// A hit missing from xs is treated as a boundary between two vacuums.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	for _, x := range xs {
		isHit := x.T == hit.T && x.Object == hit.Object
		if isHit {
			n1 = innermostIndex(containers)
		}

		if i := slices.Index(containers, x.Object); i >= 0 {
			containers = slices.Delete(containers, i, i+1)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = innermostIndex(containers)
			break
		}
	}
	return n1, n2
}

func innermostIndex(containers []Shape) float64 {
	if len(containers) == 0 {
		return 1.0
	}
	return containers[len(containers)-1].Material().RefractiveIndex
}
