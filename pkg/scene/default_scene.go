package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene shows the reference world: two concentric spheres lit from
// the upper left, seen from 5 units in front
func NewDefaultScene() (*Scene, error) {
	s := newScene("default", CameraConfig{
		Width:       300,
		Height:      300,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	})
	s.World = world.Default()
	return s, nil
}
