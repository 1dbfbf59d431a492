package ledmatrix

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xWWRRGGBB value. The white byte is only sent in GRBW mode.
type Color uint32

// Well known colors, tuned for WS2812 LED strengths
const (
	Black  Color = 0x000000
	Red    Color = 0xFF0000
	Orange Color = 0xFF6000
	Yellow Color = 0xFFFF00
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Indigo Color = 0x4B0082
	Violet Color = 0x8A2BE2
	Purple Color = 0xFF00FF
	White  Color = 0xFFFFFF
)

var namedColors = map[string]Color{
	"black":  Black,
	"red":    Red,
	"orange": Orange,
	"yellow": Yellow,
	"green":  Green,
	"blue":   Blue,
	"indigo": Indigo,
	"violet": Violet,
	"purple": Purple,
	"white":  White,
}

// PackRGB packs red, green and blue into a Color. Each component is masked to 8 bits.
func PackRGB(r, g, b int) Color {
	return Color((r&0xFF)<<16 | (g&0xFF)<<8 | b&0xFF)
}

// PackRGBW packs red, green, blue and white into a Color.
// Only meaningful for GRBW strips.
func PackRGBW(r, g, b, w int) Color {
	return Color(uint32(w&0xFF)<<24) | PackRGB(r, g, b)
}

// RGBW unpacks the color into its channels
func (c Color) RGBW() (r, g, b, w uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA implements color.Color. The white channel is dropped.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, _ := c.RGBW()
	return color.RGBA{r8, g8, b8, 0xFF}.RGBA()
}

// String returns the color as a hex literal
func (c Color) String() string {
	if c>>24 != 0 {
		return fmt.Sprintf("#%08x", uint32(c))
	}
	return fmt.Sprintf("#%06x", uint32(c))
}

// ColorModel converts any color.Color into a Color
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return fromColor(c)
})

func fromColor(c color.Color) Color {
	if lc, ok := c.(Color); ok {
		return lc
	}
	r, g, b, _ := c.RGBA()
	return PackRGB(int(r>>8), int(g>>8), int(b>>8))
}

// HSL converts a hue-saturation-luminosity triple into a Color.
//
// h is in degrees and is normalized into [0,360), so negative hues wrap
// around (-30 is 330). s and l are clamped to [0,99]; saturation 99 is
// full chroma. All arithmetic is integer and truncates toward zero.
// Chroma and lightness are scaled by 255/9900 and 255/100 rather than the
// usual 256/10000 approximation, so HSL(0, 99, 50) is exactly 0xFF0000.
func HSL(h, s, l int) Color {
	h = ((h % 360) + 360) % 360
	s = clamp(s, 0, 99)
	l = clamp(l, 0, 99)

	c := (100 - abs(2*l-100)) * s * 0xFF / 9900 // chroma, [0,255]
	h1 := h / 60                                // [0,5]
	h2 := (h - h1*60) * 256 / 60                // [0,255]
	t := abs(((h1 % 2) << 8) + h2 - 256)
	x := (c * (256 - t)) >> 8 // second largest component

	var r, g, b int
	switch h1 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := (l*2*0xFF/100 - c) / 2
	return PackRGB(clamp(r+m, 0, 0xFF), clamp(g+m, 0, 0xFF), clamp(b+m, 0, 0xFF))
}

// ParseColor resolves a named color ("orange") or a hex string ("#ff6000").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}
	hc, err := colorful.Hex(name)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := hc.RGB255()
	return PackRGB(int(r), int(g), int(b)), nil
}

// Colors returns the well known colors by name
func Colors() map[string]Color {
	out := make(map[string]Color, len(namedColors))
	for k, v := range namedColors {
		out[k] = v
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
