package transport

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// DefaultCellSize is the edge of one LED in a snapshot, in pixels
const DefaultCellSize = 16

// Snapshot renders every frame to an image with one disc per LED. When a
// path is set the latest frame is also written there as a PNG.
type Snapshot struct {
	mu     sync.Mutex
	layout ledmatrix.Layout
	cell   int
	path   string
	last   image.Image
}

// NewSnapshot creates a snapshot transport. A cell size of zero or less
// uses DefaultCellSize; an empty path keeps frames in memory only.
func NewSnapshot(layout ledmatrix.Layout, cell int, path string) *Snapshot {
	if cell <= 0 {
		cell = DefaultCellSize
	}
	return &Snapshot{layout: layout, cell: cell, path: path}
}

func (s *Snapshot) render(grid [][]ledmatrix.Color) *gg.Context {
	cell := float64(s.cell)
	dc := gg.NewContext(s.layout.Width*s.cell, s.layout.Height*s.cell)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	for y, row := range grid {
		for x, c := range row {
			r, g, b, _ := c.RGBW()
			dc.SetRGB255(int(r), int(g), int(b))
			dc.DrawCircle((float64(x)+0.5)*cell, (float64(y)+0.5)*cell, cell*0.4)
			dc.Fill()
		}
	}
	return dc
}

// Send renders buf and saves it if a path is set
func (s *Snapshot) Send(buf []byte, line ledmatrix.HardwareLine) error {
	grid, err := s.layout.Decode(buf)
	if err != nil {
		return err
	}
	dc := s.render(grid)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = dc.Image()
	if s.path == "" {
		return nil
	}
	if err := dc.SavePNG(s.path); err != nil {
		return fmt.Errorf("failed to save snapshot of %s: %w", line, err)
	}
	return nil
}

// Image returns the latest rendered frame, or nil before the first Send
func (s *Snapshot) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// EncodePNG writes the latest frame to w
func (s *Snapshot) EncodePNG(w io.Writer) error {
	img := s.Image()
	if img == nil {
		return fmt.Errorf("no frame rendered yet")
	}
	return gg.NewContextForImage(img).EncodePNG(w)
}
