package ledmatrix

import (
	"fmt"
	"strings"
)

// ChannelMode is the byte order and stride used on the wire
type ChannelMode int

const (
	// ModeGRB sends G, R, B per LED (WS2812B default)
	ModeGRB ChannelMode = iota + 1
	// ModeGRBW sends G, R, B, W per LED for strips with a white channel
	ModeGRBW
	// ModeRGB sends R, G, B per LED
	ModeRGB
)

func (m ChannelMode) valid() bool {
	return m >= ModeGRB && m <= ModeRGB
}

// Stride returns the number of bytes per LED
func (m ChannelMode) Stride() int {
	if m == ModeGRBW {
		return 4
	}
	return 3
}

// String returns the mode name
func (m ChannelMode) String() string {
	switch m {
	case ModeGRB:
		return "GRB"
	case ModeGRBW:
		return "GRBW"
	case ModeRGB:
		return "RGB"
	}
	return fmt.Sprintf("ChannelMode(%d)", int(m))
}

// ParseChannelMode parses "GRB", "GRBW" or "RGB", ignoring case
func ParseChannelMode(s string) (ChannelMode, error) {
	for _, m := range []ChannelMode{ModeGRB, ModeGRBW, ModeRGB} {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Layout describes how logical pixels are wired on the LED string
type Layout struct {
	Width        int
	Height       int
	Snake        bool
	Row0AtBottom bool
	Mode         ChannelMode
}

// Len returns the size of a serialized frame in bytes
func (l Layout) Len() int {
	return l.Width * l.Height * l.Mode.Stride()
}

// Logical maps the physical LED at column xp of physical row yp to its
// logical coordinates.
func (l Layout) Logical(xp, yp int) (x, y int) {
	x = xp
	// Snake wiring reverses columns on odd physical rows
	if l.Snake && yp%2 != 0 {
		x = l.Width - 1 - xp
	}
	y = yp
	if l.Row0AtBottom {
		y = l.Height - 1 - yp
	}
	return x, y
}

// Encode writes the wire bytes for grid into buf, which must hold Len() bytes.
func (l Layout) Encode(buf []byte, grid [][]Color) {
	i := 0
	for yp := 0; yp < l.Height; yp++ {
		for xp := 0; xp < l.Width; xp++ {
			x, y := l.Logical(xp, yp)
			r, g, b, w := grid[y][x].RGBW()
			switch l.Mode {
			case ModeGRBW:
				buf[i], buf[i+1], buf[i+2], buf[i+3] = g, r, b, w
			case ModeRGB:
				buf[i], buf[i+1], buf[i+2] = r, g, b
			default:
				buf[i], buf[i+1], buf[i+2] = g, r, b
			}
			i += l.Mode.Stride()
		}
	}
}

// Decode turns a serialized frame back into a logical grid, indexed [row][col].
// It returns an error when buf does not hold exactly one frame.
func (l Layout) Decode(buf []byte) ([][]Color, error) {
	if len(buf) != l.Len() {
		return nil, fmt.Errorf("ledmatrix: frame is %d bytes, want %d", len(buf), l.Len())
	}
	grid := newGrid(l.Width, l.Height)
	stride := l.Mode.Stride()
	i := 0
	for yp := 0; yp < l.Height; yp++ {
		for xp := 0; xp < l.Width; xp++ {
			x, y := l.Logical(xp, yp)
			var c Color
			switch l.Mode {
			case ModeGRBW:
				c = PackRGBW(int(buf[i+1]), int(buf[i]), int(buf[i+2]), int(buf[i+3]))
			case ModeRGB:
				c = PackRGB(int(buf[i]), int(buf[i+1]), int(buf[i+2]))
			default:
				c = PackRGB(int(buf[i+1]), int(buf[i]), int(buf[i+2]))
			}
			grid[y][x] = c
			i += stride
		}
	}
	return grid, nil
}

// Serialize returns the current frame in wire order
func (m *Matrix) Serialize() []byte {
	buf := make([]byte, m.layout.Len())
	m.layout.Encode(buf, m.grid)
	return buf
}

// Show serializes the frame and sends it to the transport
func (m *Matrix) Show() error {
	if err := m.transport.Send(m.Serialize(), m.line); err != nil {
		return fmt.Errorf("failed to send frame on %s: %w", m.line, err)
	}
	return nil
}
