package ledmatrix

import "unicode"

// GlyphHeight is the number of pixel rows in every glyph.
const GlyphHeight = 6

// Glyph is a column bitmap. Bit y of a column lights pixel row y, counted
// from the top of the glyph.
type Glyph []byte

// Width returns the number of columns in the glyph
func (g Glyph) Width() int { return len(g) }

// Lit reports whether the pixel at column x, row y is set.
func (g Glyph) Lit(x, y int) bool {
	if x < 0 || x >= len(g) || y < 0 || y >= GlyphHeight {
		return false
	}
	return g[x]>>uint(y)&0x01 != 0
}

// font is a 5x6 font covering ASCII space through underscore.
var font = map[rune]Glyph{
	' ':  {0x00, 0x00, 0x00, 0x00, 0x00},
	'!':  {0x00, 0x2F, 0x00, 0x00, 0x00},
	'"':  {0x00, 0x03, 0x00, 0x03, 0x00},
	'#':  {0x14, 0x3F, 0x14, 0x3F, 0x14},
	'$':  {0x14, 0x2A, 0x3F, 0x2A, 0x11},
	'%':  {0x22, 0x11, 0x08, 0x04, 0x23},
	'&':  {0x1A, 0x25, 0x25, 0x1A, 0x04},
	'\'': {0x00, 0x01, 0x02, 0x00, 0x00},
	'(':  {0x00, 0x1C, 0x22, 0x00, 0x00},
	')':  {0x00, 0x22, 0x1C, 0x00, 0x00},
	'*':  {0x08, 0x05, 0x1F, 0x05, 0x08},
	'+':  {0x08, 0x08, 0x1F, 0x08, 0x08},
	',':  {0x00, 0x30, 0x10, 0x00, 0x00},
	'-':  {0x08, 0x08, 0x08, 0x08, 0x08},
	'.':  {0x00, 0x30, 0x30, 0x00, 0x00},
	'/':  {0x20, 0x10, 0x08, 0x04, 0x02},
	'0':  {0x1E, 0x21, 0x21, 0x1E, 0x00},
	'1':  {0x00, 0x21, 0x3F, 0x20, 0x00},
	'2':  {0x22, 0x21, 0x21, 0x26, 0x00},
	'3':  {0x12, 0x21, 0x21, 0x1A, 0x00},
	'4':  {0x0C, 0x0A, 0x09, 0x3F, 0x08},
	'5':  {0x3A, 0x25, 0x25, 0x11, 0x00},
	'6':  {0x1E, 0x25, 0x25, 0x18, 0x00},
	'7':  {0x01, 0x01, 0x21, 0x2F, 0x00},
	'8':  {0x1A, 0x25, 0x25, 0x1A, 0x00},
	'9':  {0x0C, 0x12, 0x12, 0x3E, 0x00},
	':':  {0x00, 0x2A, 0x2A, 0x00, 0x00},
	';':  {0x00, 0x2A, 0x1A, 0x00, 0x00},
	'<':  {0x08, 0x14, 0x22, 0x00, 0x00},
	'=':  {0x14, 0x14, 0x14, 0x14, 0x14},
	'>':  {0x00, 0x22, 0x14, 0x08, 0x00},
	'?':  {0x02, 0x01, 0x21, 0x0D, 0x00},
	'@':  {0x1E, 0x21, 0x2D, 0x2D, 0x1E},
	'A':  {0x3E, 0x05, 0x05, 0x3E, 0x00},
	'B':  {0x3F, 0x25, 0x25, 0x1A, 0x00},
	'C':  {0x1E, 0x21, 0x21, 0x12, 0x00},
	'D':  {0x3F, 0x21, 0x21, 0x1E, 0x00},
	'E':  {0x3F, 0x25, 0x25, 0x21, 0x00},
	'F':  {0x3F, 0x05, 0x05, 0x01, 0x00},
	'G':  {0x1E, 0x21, 0x25, 0x1D, 0x00},
	'H':  {0x3F, 0x04, 0x04, 0x3F, 0x00},
	'I':  {0x21, 0x3F, 0x21, 0x00, 0x00},
	'J':  {0x10, 0x20, 0x21, 0x1F, 0x00},
	'K':  {0x3F, 0x04, 0x0A, 0x29, 0x00},
	'L':  {0x3F, 0x20, 0x20, 0x20, 0x00},
	'M':  {0x3F, 0x02, 0x0C, 0x02, 0x3F},
	'N':  {0x3F, 0x02, 0x04, 0x08, 0x3F},
	'O':  {0x1E, 0x21, 0x21, 0x1E, 0x00},
	'P':  {0x3F, 0x05, 0x05, 0x02, 0x00},
	'Q':  {0x1E, 0x21, 0x29, 0x3E, 0x20},
	'R':  {0x3F, 0x05, 0x0D, 0x2A, 0x00},
	'S':  {0x12, 0x25, 0x25, 0x19, 0x00},
	'T':  {0x01, 0x01, 0x3F, 0x01, 0x01},
	'U':  {0x1F, 0x20, 0x20, 0x1F, 0x00},
	'V':  {0x0F, 0x10, 0x20, 0x10, 0x0F},
	'W':  {0x1F, 0x20, 0x18, 0x20, 0x1F},
	'X':  {0x29, 0x1A, 0x04, 0x1A, 0x29},
	'Y':  {0x03, 0x04, 0x38, 0x04, 0x03},
	'Z':  {0x22, 0x26, 0x2A, 0x32, 0x00},
	'[':  {0x00, 0x3F, 0x21, 0x21, 0x00},
	'\\': {0x02, 0x04, 0x08, 0x10, 0x20},
	']':  {0x00, 0x21, 0x21, 0x3F, 0x00},
	'^':  {0x04, 0x02, 0x01, 0x02, 0x04},
	'_':  {0x20, 0x20, 0x20, 0x20, 0x20},
}

// LookupGlyph returns the glyph for r, uppercased. Runes without a glyph
// map to '?'. The result is a copy; changing it does not touch the font.
func LookupGlyph(r rune) Glyph {
	g, ok := font[unicode.ToUpper(r)]
	if !ok {
		g = font['?']
	}
	return append(Glyph(nil), g...)
}
