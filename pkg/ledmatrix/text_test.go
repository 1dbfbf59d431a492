package ledmatrix

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLookupGlyph(t *testing.T) {
	if got, want := LookupGlyph('a'), LookupGlyph('A'); string(got) != string(want) {
		t.Errorf("LookupGlyph('a') = %v, want %v", got, want)
	}
	for _, r := range []rune{'~', 'é', '{', 0} {
		if got := LookupGlyph(r); string(got) != string(font['?']) {
			t.Errorf("LookupGlyph(%q) = %v, want the '?' glyph", r, got)
		}
	}
	for r := ' '; r <= '_'; r++ {
		if _, ok := font[r]; !ok {
			t.Errorf("font has no glyph for %q", r)
		}
	}
}

func TestLookupGlyphIsCopy(t *testing.T) {
	want := LookupGlyph('A')[0]
	g := LookupGlyph('A')
	g[0] ^= 0xFF
	if got := LookupGlyph('A')[0]; got != want {
		t.Errorf("LookupGlyph('A')[0] = %#x after changing a returned glyph, want %#x", got, want)
	}

	fallback := LookupGlyph('?')
	unknown := LookupGlyph('€')
	for i := range unknown {
		unknown[i] = 0
	}
	if got := LookupGlyph('?'); string(got) != string(fallback) {
		t.Errorf("LookupGlyph('?') = %v after changing a fallback glyph, want %v", got, fallback)
	}
}

func TestPrintChar(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 8, Height: 8})
	m.Fill(Blue)
	m.PrintChar("l", Red)

	g := LookupGlyph('L') // {0x3f, 0x20, 0x20, 0x20, 0x00}
	offX, offY := 1, 1
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < GlyphHeight; y++ {
			want := Black
			if g.Lit(x, y) {
				want = Red
			}
			if got := m.Pixel(offX+x, offY+y); got != want {
				t.Errorf("Pixel(%d, %d) = %v, want %v", offX+x, offY+y, got, want)
			}
		}
	}
	// Outside the glyph cell nothing is touched
	for _, p := range [][2]int{{0, 0}, {7, 7}, {6, 3}, {3, 7}} {
		if got := m.Pixel(p[0], p[1]); got != Blue {
			t.Errorf("Pixel(%d, %d) = %v, want %v", p[0], p[1], got, Blue)
		}
	}
}

func TestPrintCharRejects(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 8, Height: 8})
	for _, s := range []string{"", "AB", "hello"} {
		m.PrintChar(s, Red)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if m.Pixel(x, y) != Black {
				t.Fatalf("PrintChar() with a bad argument drew at (%d, %d)", x, y)
			}
		}
	}
}

func TestPrintCharClipped(t *testing.T) {
	m, _, _ := newTestMatrix(t, Config{Width: 3, Height: 4})
	m.PrintChar("M", Green)
	// M is {0x3f, 0x02, 0x0c, 0x02, 0x3f}; only the first three columns and four rows fit
	if got := m.Pixel(0, 3); got != Green {
		t.Errorf("Pixel(0, 3) = %v, want %v", got, Green)
	}
	if got := m.Pixel(1, 1); got != Green {
		t.Errorf("Pixel(1, 1) = %v, want %v", got, Green)
	}
	if got := m.Pixel(1, 0); got != Black {
		t.Errorf("Pixel(1, 0) = %v, want black", got)
	}
}

func TestPrintLineFrames(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		text       string
		wantFrames int
	}{
		// "A" is five columns plus one gap column
		{"fits exactly", 6, "A", 0},
		{"two characters fit exactly", 12, "HI", 0},
		{"two characters one over", 11, "HI", 2},
		{"narrower text", 8, "A", 0},
		{"one column over", 5, "A", 2},
		{"two characters", 8, "HI", 5},
		{"empty", 4, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, rec, clk := newTestMatrix(t, Config{Width: tt.width, Height: 8})
			if err := m.PrintLine(context.Background(), tt.text, Red, 120*time.Millisecond); err != nil {
				t.Fatalf("PrintLine() error = %v", err)
			}
			if len(rec.frames) != tt.wantFrames {
				t.Errorf("PrintLine() showed %d frames, want %d", len(rec.frames), tt.wantFrames)
			}
			if len(clk.delays) != tt.wantFrames {
				t.Errorf("PrintLine() delayed %d times, want %d", len(clk.delays), tt.wantFrames)
			}
			for _, d := range clk.delays {
				if d != 120*time.Millisecond {
					t.Errorf("delay = %v, want 120ms", d)
				}
			}
		})
	}
}

func TestPrintLineWindow(t *testing.T) {
	m, rec, _ := newTestMatrix(t, Config{Width: 5, Height: 8, Mode: ModeRGB})
	if err := m.PrintLine(context.Background(), "t", White, 0); err != nil {
		t.Fatalf("PrintLine() error = %v", err)
	}
	if len(rec.frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(rec.frames))
	}

	// The second frame is shifted one column left: T's stem (column 2 of
	// the glyph) sits at column 1. Vertical offset is (8-6)/2 = 1.
	grid, err := m.Layout().Decode(rec.frames[1])
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for y := 1; y <= 6; y++ {
		if grid[y][1] != White {
			t.Errorf("frame 1 (1, %d) = %v, want white", y, grid[y][1])
		}
	}
	if grid[0][1] != Black || grid[7][1] != Black {
		t.Error("frame 1 lit pixels outside the text rows")
	}
	// The gap column scrolled into view on the right
	for y := 0; y < 8; y++ {
		if grid[y][4] != Black {
			t.Errorf("frame 1 (4, %d) = %v, want black", y, grid[y][4])
		}
	}
}

func TestPrintLineCancel(t *testing.T) {
	m, rec, _ := newTestMatrix(t, Config{Width: 4, Height: 8})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.PrintLine(ctx, "HELLO", Red, time.Millisecond)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("PrintLine() error = %v, want %v", err, context.Canceled)
	}
	if len(rec.frames) != 0 {
		t.Errorf("PrintLine() showed %d frames after cancel", len(rec.frames))
	}
}

func TestPrintLineTransportError(t *testing.T) {
	m, rec, _ := newTestMatrix(t, Config{Width: 4, Height: 8})
	rec.err = errors.New("line busy")
	if err := m.PrintLine(context.Background(), "HELLO", Red, 0); !errors.Is(err, rec.err) {
		t.Errorf("PrintLine() error = %v, want %v", err, rec.err)
	}
}
