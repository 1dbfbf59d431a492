// Package graphics draws bitmaps and SVG icons into an LED matrix.
package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Decoders for LoadImage
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/gift"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// ImageOptions controls how a bitmap is scaled onto the matrix
type ImageOptions struct {
	// Fit keeps the aspect ratio and centers the result; otherwise the
	// image is stretched over the whole matrix.
	Fit bool
	// Smooth averages source pixels; otherwise nearest neighbor is used,
	// which keeps pixel art crisp.
	Smooth bool
	// Brightness in percent, -100 to 100
	Brightness float32
}

// LoadImage decodes a PNG, JPEG or GIF file
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// DrawImage scales img to the matrix and draws it. Pixels the image does
// not cover are cleared.
func DrawImage(m *ledmatrix.Matrix, img image.Image, opts ImageOptions) {
	resampling := gift.NearestNeighborResampling
	if opts.Smooth {
		resampling = gift.BoxResampling
	}

	w, h := m.Width(), m.Height()
	g := gift.New()
	if opts.Fit {
		g.Add(gift.ResizeToFit(w, h, resampling))
	} else {
		g.Add(gift.Resize(w, h, resampling))
	}
	if opts.Brightness != 0 {
		g.Add(gift.Brightness(opts.Brightness))
	}

	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	// Center whatever ResizeToFit left over
	off := image.Pt((w-dst.Rect.Dx())/2, (h-dst.Rect.Dy())/2)
	m.Clear()
	draw.Draw(m, dst.Rect.Sub(dst.Rect.Min).Add(off), dst, dst.Rect.Min, draw.Src)
}
