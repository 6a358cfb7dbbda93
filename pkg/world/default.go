package world

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Default creates the reference world: a white light at (-10, 10, -10) and two
// concentric spheres, the outer one green-tinted and the inner one half size
func Default() *World {
	w := New()

	// Fixed valid values, errors cannot occur
	_ = w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.NewColor(1, 1, 1)))

	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	_ = outer.SetMaterial(m)

	inner := geometry.NewSphere()
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	_, _ = w.Add(outer)
	_, _ = w.Add(inner)
	return w
}
