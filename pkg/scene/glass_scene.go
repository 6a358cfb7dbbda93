package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates a hollow glass sphere over a reflective checkered floor,
// with colored spheres behind it to show refraction
func NewGlassScene() (*Scene, error) {
	s := newScene("glass", CameraConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 2, -6),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	})

	floorMat := matte(core.NewColor(1, 1, 1))
	floorMat.Reflective = 0.4
	floorMat.Specular = 0
	floorMat.Pattern = material.NewCheckersPattern(core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))
	floor := NewFloor(floorMat)

	// Outer shell is glass, the inner sphere is an air bubble
	glassMat := material.DefaultMaterial()
	glassMat.Color = core.NewColor(0.1, 0.1, 0.1)
	glassMat.Ambient = 0
	glassMat.Diffuse = 0.1
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflective = 0.9
	glassMat.Transparency = 0.9
	glassMat.RefractiveIndex = 1.5
	shell := placed(dressed(geometry.NewSphere(), glassMat),
		core.Translation(0, 1, 0),
	)

	airMat := glassMat
	airMat.RefractiveIndex = 1.0000034
	bubble := placed(dressed(geometry.NewSphere(), airMat),
		core.Scaling(0.5, 0.5, 0.5),
		core.Translation(0, 1, 0),
	)

	red := placed(dressed(geometry.NewSphere(), matte(core.NewColor(0.9, 0.2, 0.2))),
		core.Scaling(0.6, 0.6, 0.6),
		core.Translation(-1.5, 0.6, 3),
	)
	blue := placed(dressed(geometry.NewSphere(), matte(core.NewColor(0.2, 0.3, 0.9))),
		core.Scaling(0.6, 0.6, 0.6),
		core.Translation(1.5, 0.6, 3),
	)

	if err := s.Add(floor, shell, bubble, red, blue); err != nil {
		return nil, err
	}
	if err := s.AddPointLight(core.Point(-4.9, 4.9, -1), core.NewColor(1, 1, 1)); err != nil {
		return nil, err
	}
	return s, nil
}
