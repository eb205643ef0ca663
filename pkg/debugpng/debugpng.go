// Package debugpng implements the optional PNG debug-dump interface
// spec.md §6 describes: disabled by default, writing a tiled grid of
// source/distance/displacement panels for visual inspection of a
// pipeline run.
//
// Grounded on the original fs_debug_export_all's PNG grid dump pattern
// and, for the Go rendition, on golang.org/x/image/draw's high-quality
// scaler (a teacher dependency, used in SPEC_FULL.md's domain stack to
// upscale tiles when a panel's native resolution is smaller than the
// requested tile size).
package debugpng

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// Panel is one labelled tile in the debug grid.
type Panel struct {
	Title string
	Img   image.Image
}

// Grid composites panels left-to-right, top-to-bottom into a single PNG,
// scaling each panel to tileSize x tileSize with draw.CatmullRom when it
// doesn't already match, mirroring the original's grid-dump layout.
func Grid(panels []Panel, columns, tileSize int) *image.NRGBA {
	if columns <= 0 {
		columns = 1
	}
	rows := int(math.Ceil(float64(len(panels)) / float64(columns)))
	out := image.NewNRGBA(image.Rect(0, 0, columns*tileSize, rows*tileSize))

	for i, p := range panels {
		col := i % columns
		row := i / columns
		dstRect := image.Rect(col*tileSize, row*tileSize, (col+1)*tileSize, (row+1)*tileSize)
		draw.CatmullRom.Scale(out, dstRect, p.Img, p.Img.Bounds(), draw.Over, nil)
	}
	return out
}

// ScalarToGray renders a ScalarGrid-shaped []float64 buffer into a
// grayscale image normalized to its own [min,max] range, for use as a
// debug panel source.
func ScalarToGray(width, height int, data []float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	if len(data) == 0 {
		return img
	}
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	for i, v := range data {
		var g uint8
		if span > 0 {
			g = uint8(255 * (v - min) / span)
		}
		img.SetGray(i%width, i/width, color.Gray{Y: g})
	}
	return img
}

// WritePNG encodes img as a PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("debugpng: encode: %w", err)
	}
	return nil
}
