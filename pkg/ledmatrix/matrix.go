package ledmatrix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrInvalidDimensions is returned when width or height is not positive
	ErrInvalidDimensions = errors.New("ledmatrix: width and height must be positive")
	// ErrUnknownMode is returned for a channel mode outside GRB, GRBW and RGB
	ErrUnknownMode = errors.New("ledmatrix: unknown channel mode")
)

// Config holds the construction-time configuration of a matrix.
// Nothing in it can change once the matrix exists.
type Config struct {
	Width  int
	Height int
	// Snake is true when alternate physical rows run in reverse column order
	Snake bool
	// Row0AtBottom is true when the first LED of the string sits on the
	// bottom row rather than the top one
	Row0AtBottom bool
	Mode         ChannelMode
	// Line identifies the hardware line; it is handed to the transport unexamined
	Line HardwareLine
	// Clock paces PrintLine. Defaults to SystemClock.
	Clock Clock
}

// DefaultConfig returns an 8x8 snake-wired GRB matrix
func DefaultConfig() Config {
	return Config{
		Width:  8,
		Height: 8,
		Snake:  true,
		Mode:   ModeGRB,
	}
}

// Layout returns the wiring a matrix built from c would use
func (c Config) Layout() Layout {
	mode := c.Mode
	if mode == 0 {
		mode = ModeGRB
	}
	return Layout{
		Width:        c.Width,
		Height:       c.Height,
		Snake:        c.Snake,
		Row0AtBottom: c.Row0AtBottom,
		Mode:         mode,
	}
}

// Matrix is a logical framebuffer for an addressable LED matrix.
//
// A Matrix is owned by a single goroutine. It does no locking.
type Matrix struct {
	layout    Layout
	line      HardwareLine
	grid      [][]Color
	transport Transport
	clock     Clock
}

// New creates a matrix. A nil transport discards every frame.
func New(cfg Config, tr Transport) (*Matrix, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	layout := cfg.Layout()
	if !layout.Mode.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, cfg.Mode)
	}
	if tr == nil {
		tr = Discard
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}

	return &Matrix{
		layout:    layout,
		line:      cfg.Line,
		grid:      newGrid(cfg.Width, cfg.Height),
		transport: tr,
		clock:     cfg.Clock,
	}, nil
}

func newGrid(w, h int) [][]Color {
	cells := make([]Color, w*h)
	grid := make([][]Color, h)
	for y := range grid {
		grid[y] = cells[y*w : (y+1)*w : (y+1)*w]
	}
	return grid
}

// Width returns the number of columns
func (m *Matrix) Width() int { return m.layout.Width }

// Height returns the number of rows
func (m *Matrix) Height() int { return m.layout.Height }

// Layout returns the physical wiring description used by Serialize
func (m *Matrix) Layout() Layout { return m.layout }

// Line returns the hardware line frames are sent to
func (m *Matrix) Line() HardwareLine { return m.line }

func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && x < m.layout.Width && y >= 0 && y < m.layout.Height
}

// SetPixel sets the pixel at column x, row y. Writes outside the matrix are ignored.
// Call Show to make the change visible.
func (m *Matrix) SetPixel(x, y int, c Color) {
	if m.inBounds(x, y) {
		m.grid[y][x] = c
	}
}

// Pixel returns the color at column x, row y, or Black outside the matrix
func (m *Matrix) Pixel(x, y int) Color {
	if !m.inBounds(x, y) {
		return Black
	}
	return m.grid[y][x]
}

// Clear sets every pixel to black
func (m *Matrix) Clear() {
	for y := range m.grid {
		row := m.grid[y]
		for x := range row {
			row[x] = Black
		}
	}
}

// Fill sets every pixel to c
func (m *Matrix) Fill(c Color) {
	for y := 0; y < m.layout.Height; y++ {
		for x := 0; x < m.layout.Width; x++ {
			m.SetPixel(x, y, c)
		}
	}
}

// snapshot returns a copy of the grid
func (m *Matrix) snapshot() [][]Color {
	g := newGrid(m.layout.Width, m.layout.Height)
	for y := range m.grid {
		copy(g[y], m.grid[y])
	}
	return g
}

// replace swaps in a grid built by a transform. The grid must have the
// matrix dimensions.
func (m *Matrix) replace(g [][]Color) {
	if len(g) != m.layout.Height {
		panic(fmt.Sprintf("ledmatrix: replace with %d rows, want %d", len(g), m.layout.Height))
	}
	for y, row := range g {
		if len(row) != m.layout.Width {
			panic(fmt.Sprintf("ledmatrix: replace row %d has %d columns, want %d", y, len(row), m.layout.Width))
		}
	}
	m.grid = g
}

// ColorModel implements image.Image
func (m *Matrix) ColorModel() color.Model { return ColorModel }

// Bounds implements image.Image
func (m *Matrix) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.layout.Width, m.layout.Height)
}

// At implements image.Image
func (m *Matrix) At(x, y int) color.Color { return m.Pixel(x, y) }

// Set implements draw.Image so the matrix can be a draw target
func (m *Matrix) Set(x, y int, c color.Color) {
	m.SetPixel(x, y, fromColor(c))
}
