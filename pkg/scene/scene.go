package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Default image size for built-in scenes
const (
	DefaultWidth  = 400
	DefaultHeight = 200
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera *renderer.Camera
	World  *world.World
}

// CameraConfig places a camera for a built-in scene
type CameraConfig struct {
	Width       int
	Height      int
	FieldOfView float64    // Radians
	From        core.Tuple // Eye position
	To          core.Tuple // Look-at point
	Up          core.Tuple
}

// NewCamera creates the camera described by the configuration
func (cc CameraConfig) NewCamera() (*renderer.Camera, error) {
	camera, err := renderer.NewCamera(cc.Width, cc.Height, cc.FieldOfView)
	if err != nil {
		return nil, err
	}
	if err := camera.LookAt(cc.From, cc.To, cc.Up); err != nil {
		return nil, err
	}
	return camera, nil
}

// newScene creates an empty scene. Built-in camera settings are constants, so
// a failure here is a programming error.
func newScene(name string, cc CameraConfig) *Scene {
	camera, err := cc.NewCamera()
	if err != nil {
		panic(fmt.Sprintf("scene %s: %v", name, err))
	}
	return &Scene{Name: name, Camera: camera, World: world.New()}
}

// defaultCameraConfig looks at the origin from slightly above, 5 units back
func defaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}
}

// Resize replaces the camera with one of a different image size
func (s *Scene) Resize(width, height int) error {
	camera, err := s.Camera.Resized(width, height)
	if err != nil {
		return err
	}
	s.Camera = camera
	return nil
}

// Add adds top-level shapes to the scene's world
func (s *Scene) Add(shapes ...geometry.Shape) error {
	for _, shape := range shapes {
		if _, err := s.World.Add(shape); err != nil {
			return err
		}
	}
	return nil
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position core.Tuple, intensity core.Color) error {
	return s.World.AddLight(lights.NewPointLight(position, intensity))
}

// GetPrimitiveCount returns the number of non-group shapes, including group members
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.World.Shapes() {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, descending into groups
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Group:
		count := 0
		for _, child := range obj.Children() {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		return 1
	}
}

// NewFloor creates an infinite ground plane at y = 0
func NewFloor(m material.Material) *geometry.Plane {
	return dressed(geometry.NewPlane(), m)
}

// dressed sets a built-in material on a shape and panics if it is invalid
func dressed[S geometry.Shape](shape S, m material.Material) S {
	if err := shape.SetMaterial(m); err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
	return shape
}

// placed applies the transforms in order to a built-in shape and panics if the
// result is singular
func placed[S geometry.Shape](shape S, transforms ...core.Matrix) S {
	if err := shape.SetTransform(core.Chain(transforms...)); err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
	return shape
}

// patterned sets a built-in pattern transform and panics if it is singular
func patterned[P material.Pattern](pattern P, transforms ...core.Matrix) P {
	if err := pattern.SetTransform(core.Chain(transforms...)); err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
	return pattern
}

// matte returns the default material with a different color
func matte(c core.Color) material.Material {
	m := material.DefaultMaterial()
	m.Color = c
	return m
}
