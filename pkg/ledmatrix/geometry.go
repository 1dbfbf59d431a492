package ledmatrix

import "math"

// Rotation is a clockwise rotation angle in degrees
type Rotation int

// Supported rotations
const (
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// ShiftX shifts the content horizontally. Positive amounts move pixels
// right, negative amounts left. With circular set, pixels pushed off one
// edge come back on the other; otherwise the vacated columns turn black.
func (m *Matrix) ShiftX(amount int, circular bool) {
	w := m.layout.Width
	amount %= w
	if amount == 0 {
		return
	}
	next := newGrid(w, m.layout.Height)
	for y, row := range m.grid {
		for x := 0; x < w; x++ {
			src := x - amount
			if circular {
				src = (src%w + w) % w
			} else if src < 0 || src >= w {
				continue
			}
			next[y][x] = row[src]
		}
	}
	m.replace(next)
}

// ShiftY shifts the content vertically. Positive amounts move pixels down.
func (m *Matrix) ShiftY(amount int, circular bool) {
	h := m.layout.Height
	amount %= h
	if amount == 0 {
		return
	}
	next := newGrid(m.layout.Width, h)
	for y := 0; y < h; y++ {
		src := y - amount
		if circular {
			src = (src%h + h) % h
		} else if src < 0 || src >= h {
			continue
		}
		copy(next[y], m.grid[src])
	}
	m.replace(next)
}

// Rotate turns the content clockwise about the center of the matrix.
//
// On a non-square matrix a quarter turn does not fit: pixels that land
// outside the matrix are dropped and cells with no source are black.
// Angles other than 90, 180 and 270 are ignored.
func (m *Matrix) Rotate(angle Rotation) {
	w, h := m.layout.Width, m.layout.Height
	next := newGrid(w, h)

	switch angle {
	case Rotate180:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				next[h-1-y][w-1-x] = m.grid[y][x]
			}
		}
	case Rotate90, Rotate270:
		cx := float64(w-1) / 2
		cy := float64(h-1) / 2
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				// Inverse rotation finds the source of each destination cell.
				// With y pointing down, a clockwise turn takes (dx, dy) to (-dy, dx).
				sx, sy := dy, -dx
				if angle == Rotate270 {
					sx, sy = -dy, dx
				}
				srcX := roundHalfUp(sx + cx)
				srcY := roundHalfUp(sy + cy)
				if srcX >= 0 && srcX < w && srcY >= 0 && srcY < h {
					next[y][x] = m.grid[srcY][srcX]
				}
			}
		}
	default:
		return
	}
	m.replace(next)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FlipX mirrors the content over the vertical axis
func (m *Matrix) FlipX() {
	next := m.snapshot()
	for _, row := range next {
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	m.replace(next)
}

// FlipY mirrors the content over the horizontal axis
func (m *Matrix) FlipY() {
	next := m.snapshot()
	for i, j := 0, len(next)-1; i < j; i, j = i+1, j-1 {
		next[i], next[j] = next[j], next[i]
	}
	m.replace(next)
}
