package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToImage converts the canvas to an RGBA image using the same quantization as the PPM encoder
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(p.R),
				G: channelByte(p.G),
				B: channelByte(p.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}
