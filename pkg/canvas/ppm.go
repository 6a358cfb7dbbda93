package canvas

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxLineLength is the longest line written to a PPM file
const MaxLineLength = 70

// ErrInvalidPPM is returned when decoding malformed P3 data
var ErrInvalidPPM = errors.New("invalid PPM data")

// WritePPM encodes the canvas as plain-text PPM (P3). Every scanline starts on
// a new line, no line exceeds MaxLineLength and the output ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			bw.WriteString(line.String())
			bw.WriteByte('\n')
			line.Reset()
		}
	}
	emit := func(v float64) {
		token := strconv.Itoa(int(channelByte(v)))
		if line.Len() > 0 && line.Len()+1+len(token) > MaxLineLength {
			flush()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(token)
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			emit(p.R)
			emit(p.G)
			emit(p.B)
		}
		flush()
	}

	return bw.Flush()
}

// ToPPM returns the PPM encoding as a string
func (c *Canvas) ToPPM() string {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail
	_ = c.WritePPM(&buf)
	return buf.String()
}

// DecodePPM reads plain-text PPM (P3) data. Channel values are divided by the
// file's maximum value, so an encoded canvas decodes to within 1/255 of the original.
func DecodePPM(r io.Reader) (*Canvas, error) {
	tokens, err := ppmTokens(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) < 4 {
		return nil, fmt.Errorf("%w: truncated header", ErrInvalidPPM)
	}
	if tokens[0] != "P3" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidPPM, tokens[0])
	}

	header := make([]int, 3)
	for i := range header {
		v, err := strconv.Atoi(tokens[i+1])
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: bad header value %q", ErrInvalidPPM, tokens[i+1])
		}
		header[i] = v
	}
	width, height, maxVal := header[0], header[1], header[2]

	values := tokens[4:]
	if len(values) != width*height*3 {
		return nil, fmt.Errorf("%w: expected %d channel values, got %d", ErrInvalidPPM, width*height*3, len(values))
	}

	c := New(width, height)
	scale := 1 / float64(maxVal)
	for i := 0; i < width*height; i++ {
		var rgb [3]float64
		for ch := range rgb {
			v, err := strconv.Atoi(values[i*3+ch])
			if err != nil || v < 0 || v > maxVal {
				return nil, fmt.Errorf("%w: bad channel value %q", ErrInvalidPPM, values[i*3+ch])
			}
			rgb[ch] = float64(v) * scale
		}
		c.pixels[i].R, c.pixels[i].G, c.pixels[i].B = rgb[0], rgb[1], rgb[2]
	}
	return c, nil
}

// ppmTokens splits PPM text into whitespace-separated tokens, dropping # comments
func ppmTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PPM: %w", err)
	}
	return tokens, nil
}
