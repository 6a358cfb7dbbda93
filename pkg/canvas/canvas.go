// Package canvas is a fixed-size grid of colors that renders are written into,
// with PPM and PNG encoders.
package canvas

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a row-major grid of unclamped colors. Every pixel starts black.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a black canvas. Non-positive sizes produce an empty canvas.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// InBounds reports whether (x, y) addresses a pixel
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Bounds returns the pixel rectangle covered by the canvas
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.InBounds(x, y) {
		return core.Color{}
	}
	return c.pixels[y*c.Width+x]
}

// channelByte scales a channel to 0-255, clamping and rounding half away from zero
func channelByte(v float64) uint8 {
	scaled := min(max(v*255, 0), 255)
	return uint8(scaled + 0.5)
}
