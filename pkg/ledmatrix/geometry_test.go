package ledmatrix

import "testing"

var shapes = []struct {
	name string
	w, h int
}{
	{"square", 8, 8},
	{"wide", 8, 4},
	{"tall", 3, 5},
	{"single", 1, 1},
}

func TestShiftIdentity(t *testing.T) {
	for _, s := range shapes {
		for _, circular := range []bool{false, true} {
			m, _, _ := newTestMatrix(t, Config{Width: s.w, Height: s.h})
			pattern(m)
			want := gridOf(m)

			m.ShiftX(0, circular)
			m.ShiftY(0, circular)
			if !equalGrid(want, gridOf(m)) {
				t.Errorf("%s: zero shift (circular=%v) changed the grid", s.name, circular)
			}

			m.ShiftX(s.w, true)
			m.ShiftY(-s.h, true)
			if !equalGrid(want, gridOf(m)) {
				t.Errorf("%s: full period circular shift changed the grid", s.name)
			}
		}
	}
}

func TestShiftX(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 4, Height: 1})
	row := []Color{1, 2, 3, 4}
	load := func() {
		for x, c := range row {
			m.SetPixel(x, 0, c)
		}
	}

	tests := []struct {
		amount   int
		circular bool
		want     []Color
	}{
		{1, false, []Color{0, 1, 2, 3}},
		{-1, false, []Color{2, 3, 4, 0}},
		{1, true, []Color{4, 1, 2, 3}},
		{-1, true, []Color{2, 3, 4, 1}},
		{5, true, []Color{4, 1, 2, 3}},
		{-6, false, []Color{3, 4, 0, 0}},
	}

	for _, tt := range tests {
		load()
		m.ShiftX(tt.amount, tt.circular)
		for x, want := range tt.want {
			if got := m.Pixel(x, 0); got != want {
				t.Errorf("ShiftX(%d, %v) col %d = %v, want %v", tt.amount, tt.circular, x, got, want)
			}
		}
	}
}

func TestShiftY(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 2, Height: 3})
	load := func() {
		for y := 0; y < 3; y++ {
			m.SetPixel(0, y, Color(y+1))
			m.SetPixel(1, y, Color(y+1))
		}
	}

	load()
	m.ShiftY(1, false)
	for y, want := range []Color{0, 1, 2} {
		if got := m.Pixel(1, y); got != want {
			t.Errorf("ShiftY(1, false) row %d = %v, want %v", y, got, want)
		}
	}

	load()
	m.ShiftY(-1, true)
	for y, want := range []Color{2, 3, 1} {
		if got := m.Pixel(0, y); got != want {
			t.Errorf("ShiftY(-1, true) row %d = %v, want %v", y, got, want)
		}
	}
}

func TestRotate180Twice(t *testing.T) {
	for _, s := range shapes {
		m, _, _ := newTestMatrix(t, Config{Width: s.w, Height: s.h})
		pattern(m)
		want := gridOf(m)

		m.Rotate(Rotate180)
		if s.w*s.h > 1 && equalGrid(want, gridOf(m)) {
			t.Errorf("%s: Rotate(180) left the grid unchanged", s.name)
		}
		if got := m.Pixel(s.w-1, s.h-1); got != want[0][0] {
			t.Errorf("%s: Rotate(180) corner = %v, want %v", s.name, got, want[0][0])
		}
		m.Rotate(Rotate180)
		if !equalGrid(want, gridOf(m)) {
			t.Errorf("%s: Rotate(180) twice changed the grid", s.name)
		}
	}
}

func TestRotateQuarterClockwise(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 3, Height: 3})
	m.SetPixel(0, 0, Red)  // top left
	m.SetPixel(2, 0, Blue) // top right

	m.Rotate(Rotate90)
	if got := m.Pixel(2, 0); got != Red {
		t.Errorf("Rotate(90) top right = %v, want %v", got, Red)
	}
	if got := m.Pixel(2, 2); got != Blue {
		t.Errorf("Rotate(90) bottom right = %v, want %v", got, Blue)
	}

	m.Rotate(Rotate270)
	if got := m.Pixel(0, 0); got != Red {
		t.Errorf("Rotate(270) after Rotate(90) top left = %v, want %v", got, Red)
	}
	if got := m.Pixel(2, 0); got != Blue {
		t.Errorf("Rotate(270) after Rotate(90) top right = %v, want %v", got, Blue)
	}
}

func TestRotateSquareFourTurns(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 8, Height: 8})
	pattern(m)
	want := gridOf(m)
	for i := 0; i < 4; i++ {
		m.Rotate(Rotate90)
	}
	if !equalGrid(want, gridOf(m)) {
		t.Error("four quarter turns changed an 8x8 grid")
	}
}

func TestRotateNonSquareIsLossy(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 4, Height: 2})
	m.Fill(White)
	m.Rotate(Rotate90)

	// cx = 1.5, cy = 0.5: only the middle two columns have a source
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := Black
			if x == 1 || x == 2 {
				want = White
			}
			if got := m.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRotateUnknownAngle(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 3, Height: 2})
	pattern(m)
	want := gridOf(m)
	m.Rotate(45)
	if !equalGrid(want, gridOf(m)) {
		t.Error("Rotate(45) changed the grid")
	}
}

func TestFlip(t *testing.T) {
	for _, s := range shapes {
		m, _, _ := newTestMatrix(t, Config{Width: s.w, Height: s.h})
		pattern(m)
		want := gridOf(m)

		m.FlipX()
		if got := m.Pixel(0, 0); got != want[0][s.w-1] {
			t.Errorf("%s: FlipX() (0,0) = %v, want %v", s.name, got, want[0][s.w-1])
		}
		m.FlipX()
		if !equalGrid(want, gridOf(m)) {
			t.Errorf("%s: FlipX() twice changed the grid", s.name)
		}

		m.FlipY()
		if got := m.Pixel(0, 0); got != want[s.h-1][0] {
			t.Errorf("%s: FlipY() (0,0) = %v, want %v", s.name, got, want[s.h-1][0])
		}
		m.FlipY()
		if !equalGrid(want, gridOf(m)) {
			t.Errorf("%s: FlipY() twice changed the grid", s.name)
		}
	}
}
