package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// RasterizeSVG renders an SVG document at w x h, stretching its view box
func RasterizeSVG(r io.Reader, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// DrawSVG rasterizes an SVG document at the matrix size and draws it.
// Transparent areas come out black.
func DrawSVG(m *ledmatrix.Matrix, r io.Reader) error {
	img, err := RasterizeSVG(r, m.Width(), m.Height())
	if err != nil {
		return err
	}
	draw.Draw(m, m.Bounds(), img, image.Point{}, draw.Src)
	return nil
}

// DrawSVGFile is DrawSVG for a file on disk
func DrawSVGFile(m *ledmatrix.Matrix, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return DrawSVG(m, f)
}
