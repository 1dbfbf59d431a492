package ledmatrix

import (
	"context"
	"time"
	"unicode/utf8"
)

// glyphGap is the number of blank columns after each character in a scrolling line
const glyphGap = 1

// PrintChar draws a single character centered on the matrix. Pixels of the
// glyph cell that are not lit are cleared to black. Anything other than
// exactly one character is ignored.
// Call Show to make the change visible.
func (m *Matrix) PrintChar(ch string, c Color) {
	if utf8.RuneCountInString(ch) != 1 {
		return
	}
	r, _ := utf8.DecodeRuneInString(ch)
	g := LookupGlyph(r)

	offsetX := max(0, (m.layout.Width-g.Width())/2)
	offsetY := m.textOffsetY()
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < GlyphHeight; y++ {
			px := Black
			if g.Lit(x, y) {
				px = c
			}
			m.SetPixel(offsetX+x, offsetY+y, px)
		}
	}
}

func (m *Matrix) textOffsetY() int {
	return max(0, (m.layout.Height-GlyphHeight)/2)
}

// columns lays out text as a strip of glyph columns with a gap after every
// character.
func columns(text string) []byte {
	var strip []byte
	for _, r := range text {
		strip = append(strip, LookupGlyph(r)...)
		for i := 0; i < glyphGap; i++ {
			strip = append(strip, 0x00)
		}
	}
	return strip
}

// PrintLine scrolls text across the matrix from right to left, one column
// per frame, showing each frame and then waiting speed before the next.
//
// A line that already fits on the matrix shows no frames at all. PrintLine
// blocks until the last frame has been shown, the transport fails or ctx is
// done.
func (m *Matrix) PrintLine(ctx context.Context, text string, c Color, speed time.Duration) error {
	strip := columns(text)
	width := m.layout.Width
	offsetY := m.textOffsetY()
	if len(strip) <= width {
		return nil
	}

	for offset := 0; offset <= len(strip)-width; offset++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Clear()
		for x := 0; x < width && offset+x < len(strip); x++ {
			col := Glyph{strip[offset+x]}
			for y := 0; y < GlyphHeight; y++ {
				if col.Lit(0, y) {
					m.SetPixel(x, offsetY+y, c)
				}
			}
		}
		if err := m.Show(); err != nil {
			return err
		}
		if err := m.clock.Delay(ctx, speed); err != nil {
			return err
		}
	}
	return nil
}
