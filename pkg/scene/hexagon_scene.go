package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewHexagonScene creates a hexagon built from nested groups: six sides, each a
// group of a corner sphere and an edge cylinder, rotated into place
func NewHexagonScene() (*Scene, error) {
	s := newScene("hexagon", CameraConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 2.5, -4),
		To:          core.Point(0, 0.75, 0),
		Up:          core.Vector(0, 1, 0),
	})

	m := matte(core.NewColor(0.85, 0.6, 0.25))
	m.Reflective = 0.3
	m.Shininess = 100

	hexagon, err := newHexagon(m)
	if err != nil {
		return nil, err
	}
	placed(hexagon,
		core.RotationX(-math.Pi/6),
		core.Translation(0, 1, 0),
	)

	floorMat := matte(core.NewColor(0.9, 0.9, 0.9))
	floorMat.Specular = 0
	floorMat.Pattern = material.NewRingPattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.75, 0.75, 0.8))

	if err := s.Add(NewFloor(floorMat), hexagon); err != nil {
		return nil, err
	}
	if err := s.AddPointLight(core.Point(-6, 10, -8), core.NewColor(1, 1, 1)); err != nil {
		return nil, err
	}
	return s, nil
}

// newHexagon builds the hexagon group in its own space, lying in the xz-plane
// with unit circumradius
func newHexagon(m material.Material) (*geometry.Group, error) {
	hexagon := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side, err := newHexagonSide(m)
		if err != nil {
			return nil, err
		}
		placed(side, core.RotationY(float64(n)*math.Pi/3))
		if err := hexagon.AddChild(side); err != nil {
			return nil, err
		}
	}
	return hexagon, nil
}

func newHexagonSide(m material.Material) (*geometry.Group, error) {
	corner := placed(dressed(geometry.NewSphere(), m),
		core.Scaling(0.25, 0.25, 0.25),
		core.Translation(0, 0, -1),
	)

	cylinder, err := geometry.NewCylinder(0, 1, false)
	if err != nil {
		return nil, err
	}
	edge := placed(dressed(cylinder, m),
		core.Scaling(0.25, 1, 0.25),
		core.RotationZ(-math.Pi/2),
		core.RotationY(-math.Pi/6),
		core.Translation(0, 0, -1),
	)

	side := geometry.NewGroup()
	if err := side.AddChild(corner); err != nil {
		return nil, err
	}
	if err := side.AddChild(edge); err != nil {
		return nil, err
	}
	return side, nil
}
