package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPatternsScene creates a room of patterned surfaces: a checkered floor, a
// striped back wall and three spheres with ring, gradient and radial gradient patterns
func NewPatternsScene() (*Scene, error) {
	s := newScene("patterns", defaultCameraConfig())

	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0.1, 0.1, 0.1)

	floorMat := matte(white)
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floorMat.Pattern = material.NewCheckersPattern(white, black)
	floor := NewFloor(floorMat)

	wallMat := matte(white)
	wallMat.Specular = 0
	wallMat.Pattern = patterned(
		material.NewStripePattern(core.NewColor(0.9, 0.8, 0.6), core.NewColor(0.7, 0.55, 0.4)),
		core.Scaling(0.25, 0.25, 0.25),
		core.RotationY(math.Pi/4),
	)
	wall := placed(dressed(geometry.NewPlane(), wallMat),
		core.RotationX(math.Pi/2),
		core.Translation(0, 0, 8),
	)

	ringMat := matte(white)
	ringMat.Pattern = patterned(
		material.NewRingPattern(core.NewColor(0.2, 0.4, 0.9), core.NewColor(0.9, 0.9, 1.0)),
		core.Scaling(0.15, 0.15, 0.15),
		core.RotationX(-math.Pi/3),
	)
	middle := placed(dressed(geometry.NewSphere(), ringMat),
		core.Translation(-0.5, 1, 0.5),
	)

	gradientMat := matte(white)
	gradientMat.Pattern = patterned(
		material.NewGradientPattern(core.NewColor(1, 0.2, 0.2), core.NewColor(1, 0.9, 0.2)),
		core.Translation(1, 0, 0),
		core.Scaling(0.5, 0.5, 0.5),
	)
	right := placed(dressed(geometry.NewSphere(), gradientMat),
		core.Scaling(0.5, 0.5, 0.5),
		core.Translation(1.5, 0.5, -0.5),
	)

	radialMat := matte(white)
	radialMat.Pattern = patterned(
		material.NewRadialGradientPattern(core.NewColor(0.1, 0.7, 0.3), core.NewColor(0.9, 1, 0.9)),
		core.Scaling(0.3, 0.3, 0.3),
	)
	left := placed(dressed(geometry.NewSphere(), radialMat),
		core.Scaling(0.33, 0.33, 0.33),
		core.Translation(-1.5, 0.33, -0.75),
	)

	if err := s.Add(floor, wall, middle, right, left); err != nil {
		return nil, err
	}
	if err := s.AddPointLight(core.Point(-10, 10, -10), core.NewColor(1, 1, 1)); err != nil {
		return nil, err
	}
	return s, nil
}
