package ledmatrix

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer exposes a Matrix as a TinyGo drivers.Displayer, so code written
// against the TinyGo display drivers can draw on an LED matrix.
type Displayer struct {
	m *Matrix
}

// NewDisplayer wraps m
func NewDisplayer(m *Matrix) *Displayer {
	return &Displayer{m: m}
}

// Size returns the matrix dimensions
func (d *Displayer) Size() (x, y int16) {
	return int16(d.m.Width()), int16(d.m.Height())
}

// SetPixel sets one pixel; alpha is ignored
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.m.SetPixel(int(x), int(y), PackRGB(int(c.R), int(c.G), int(c.B)))
}

// Display shows the frame
func (d *Displayer) Display() error {
	return d.m.Show()
}
