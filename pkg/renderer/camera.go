package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for non-positive image sizes or a field of view outside (0, π)
var ErrInvalidCamera = errors.New("invalid camera")

// Camera is a pinhole camera looking down -z in its own space, with the image
// plane at z = -1. Its transform maps world space to camera space.
type Camera struct {
	HSize       int     // Image width in pixels
	VSize       int     // Image height in pixels
	FieldOfView float64 // Horizontal or vertical angle (radians) for the longer side

	transform core.Matrix
	inverse   core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity transform
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCamera, hsize, vsize)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return nil, fmt.Errorf("%w: field of view %g", ErrInvalidCamera, fieldOfView)
	}

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity4(),
		inverse:     core.Identity4(),
	}
	c.computePixelSize()
	return c, nil
}

// computePixelSize derives the half extents of the image plane from the field of view
func (c *Camera) computePixelSize() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(c.HSize)
}

// Resized returns a copy of the camera with a new image size and the same
// field of view and transform
func (c *Camera) Resized(hsize, vsize int) (*Camera, error) {
	resized, err := NewCamera(hsize, vsize, c.FieldOfView)
	if err != nil {
		return nil, err
	}
	resized.transform = c.transform
	resized.inverse = c.inverse
	return resized, nil
}

func (c *Camera) Transform() core.Matrix { return c.transform }
func (c *Camera) PixelSize() float64     { return c.pixelSize }
func (c *Camera) HalfWidth() float64     { return c.halfWidth }
func (c *Camera) HalfHeight() float64    { return c.halfHeight }

// SetTransform sets the view transform, usually built with core.ViewTransform.
// A singular matrix is rejected and the previous transform kept.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// LookAt places the eye at from, looking toward to with the given up
// direction. from and to must be points and up a vector. Coincident eye and
// target, or an up vector parallel to the line of sight, are rejected.
func (c *Camera) LookAt(from, to, up core.Tuple) error {
	if err := core.CheckPoint(from); err != nil {
		return fmt.Errorf("%w: from: %w", ErrInvalidCamera, err)
	}
	if err := core.CheckPoint(to); err != nil {
		return fmt.Errorf("%w: to: %w", ErrInvalidCamera, err)
	}
	if err := core.CheckVector(up); err != nil {
		return fmt.Errorf("%w: up: %w", ErrInvalidCamera, err)
	}

	forward := to.Subtract(from)
	if forward.Magnitude() < core.Epsilon {
		return fmt.Errorf("%w: eye and target coincide", ErrInvalidCamera)
	}
	if forward.Normalize().Cross(up.Normalize()).Magnitude() < core.Epsilon {
		return fmt.Errorf("%w: up is parallel to the line of sight", ErrInvalidCamera)
	}
	return c.SetTransform(core.ViewTransform(from, to, up))
}

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
