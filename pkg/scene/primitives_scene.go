package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewPrimitivesScene creates one of each primitive: a cube, a capped cylinder,
// an open cylinder, a double cone and a mirror sphere
func NewPrimitivesScene() (*Scene, error) {
	s := newScene("primitives", CameraConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 3, -7),
		To:          core.Point(0, 0.75, 0),
		Up:          core.Vector(0, 1, 0),
	})

	floorMat := matte(core.NewColor(0.8, 0.8, 0.8))
	floorMat.Specular = 0
	floorMat.Pattern = patterned(
		material.NewCheckersPattern(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.6, 0.6, 0.6)),
		core.Scaling(0.5, 0.5, 0.5),
	)
	floor := NewFloor(floorMat)

	cube := placed(dressed(geometry.NewCube(), matte(core.NewColor(0.9, 0.5, 0.2))),
		core.Scaling(0.5, 0.5, 0.5),
		core.RotationY(math.Pi/5),
		core.Translation(-2.5, 0.5, 0),
	)

	capped, err := geometry.NewCylinder(0, 1.5, true)
	if err != nil {
		return nil, err
	}
	cylinder := placed(dressed(capped, matte(core.NewColor(0.2, 0.6, 0.9))),
		core.Scaling(0.5, 1, 0.5),
		core.Translation(-1, 0, 1),
	)

	open, err := geometry.NewCylinder(0, 1, false)
	if err != nil {
		return nil, err
	}
	tubeMat := matte(core.NewColor(0.9, 0.9, 0.3))
	tubeMat.Reflective = 0.2
	tube := placed(dressed(open, tubeMat),
		core.Scaling(0.4, 1.5, 0.4),
		core.RotationZ(math.Pi/2),
		core.RotationY(-math.Pi/6),
		core.Translation(0.75, 0.4, -1.5),
	)

	doubleCone, err := geometry.NewCone(-1, 1, true)
	if err != nil {
		return nil, err
	}
	cone := placed(dressed(doubleCone, matte(core.NewColor(0.4, 0.9, 0.4))),
		core.Scaling(0.5, 0.75, 0.5),
		core.Translation(1.25, 0.75, 1.5),
	)

	mirrorMat := matte(core.NewColor(0.1, 0.1, 0.1))
	mirrorMat.Diffuse = 0.2
	mirrorMat.Reflective = 0.8
	mirror := placed(dressed(geometry.NewSphere(), mirrorMat),
		core.Scaling(0.6, 0.6, 0.6),
		core.Translation(2.75, 0.6, 0),
	)

	if err := s.Add(floor, cube, cylinder, tube, cone, mirror); err != nil {
		return nil, err
	}
	if err := s.AddPointLight(core.Point(-5, 8, -8), core.NewColor(1, 1, 1)); err != nil {
		return nil, err
	}
	return s, nil
}
