// Package raster provides the row-major grid types shared by every
// erosion pipeline stage, plus the NRGBA interop helpers the teacher's
// image-editing packages used to load and clamp pixel data.
package raster

import (
	"fmt"
	"image"
	"image/color"
)

// LabelGrid holds an int32 region label per cell, row-major, width*height
// long. Label -1 marks a transparent / unlabeled cell.
type LabelGrid struct {
	Width, Height int
	Data          []int32
}

// NewLabelGrid allocates a label grid filled with -1.
func NewLabelGrid(w, h int) *LabelGrid {
	g := &LabelGrid{Width: w, Height: h, Data: make([]int32, w*h)}
	for i := range g.Data {
		g.Data[i] = -1
	}
	return g
}

func (g *LabelGrid) Index(x, y int) int { return y*g.Width + x }

func (g *LabelGrid) At(x, y int) int32 { return g.Data[g.Index(x, y)] }

func (g *LabelGrid) Set(x, y int, v int32) { g.Data[g.Index(x, y)] = v }

func (g *LabelGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// ScalarGrid holds one float64 per cell, used for height fields, gradient
// channels, divergence/potential solves and smart-blur buffers.
type ScalarGrid struct {
	Width, Height int
	Data          []float64
}

func NewScalarGrid(w, h int) *ScalarGrid {
	return &ScalarGrid{Width: w, Height: h, Data: make([]float64, w*h)}
}

func (g *ScalarGrid) Index(x, y int) int { return y*g.Width + x }

func (g *ScalarGrid) At(x, y int) float64 { return g.Data[g.Index(x, y)] }

func (g *ScalarGrid) Set(x, y int, v float64) { g.Data[g.Index(x, y)] = v }

func (g *ScalarGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Clone returns a deep copy.
func (g *ScalarGrid) Clone() *ScalarGrid {
	out := NewScalarGrid(g.Width, g.Height)
	copy(out.Data, g.Data)
	return out
}

// Vec2Grid holds a 2-component float64 vector per cell, used for gradient,
// normal-map xy, and velocity/flow fields.
type Vec2Grid struct {
	Width, Height int
	X, Y          []float64
}

func NewVec2Grid(w, h int) *Vec2Grid {
	return &Vec2Grid{Width: w, Height: h, X: make([]float64, w*h), Y: make([]float64, w*h)}
}

func (g *Vec2Grid) Index(x, y int) int { return y*g.Width + x }

func (g *Vec2Grid) At(x, y int) (float64, float64) {
	i := g.Index(x, y)
	return g.X[i], g.Y[i]
}

func (g *Vec2Grid) Set(x, y int, vx, vy float64) {
	i := g.Index(x, y)
	g.X[i] = vx
	g.Y[i] = vy
}

// ClampInt clamps v to [lo,hi], mirroring the teacher's stdimg.clampInt.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat64 clamps v to [lo,hi].
func ClampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToNRGBA converts any image.Image to *image.NRGBA, as the teacher's
// stdimg.ToNRGBA does, so height-field PNGs loaded through cmd/erosioncli
// share the same decode path as the teacher's photo pipeline.
func ToNRGBA(src image.Image) *image.NRGBA {
	if src == nil {
		return nil
	}
	if n, ok := src.(*image.NRGBA); ok {
		out := image.NewNRGBA(n.Rect)
		copy(out.Pix, n.Pix)
		return out
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			out.Pix[idx+0] = uint8(r >> 8)
			out.Pix[idx+1] = uint8(g >> 8)
			out.Pix[idx+2] = uint8(bl >> 8)
			out.Pix[idx+3] = uint8(a >> 8)
			idx += 4
		}
	}
	return out
}

// SamplePixelClamped returns the color.NRGBA at coords clamped to bounds.
func SamplePixelClamped(img *image.NRGBA, x, y int) color.NRGBA {
	b := img.Bounds()
	x = ClampInt(x, b.Min.X, b.Max.X-1)
	y = ClampInt(y, b.Min.Y, b.Max.Y-1)
	i := img.PixOffset(x, y)
	return color.NRGBA{R: img.Pix[i+0], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// ChannelGrid extracts one RGBA channel (0=R,1=G,2=B,3=A) from src into a
// LabelGrid using -1 for fully-transparent source pixels, mirroring
// LabelRegionsCmd's "src == -1 means transparent" convention.
func ChannelGrid(src *image.NRGBA, channel int) (*LabelGrid, error) {
	if channel < 0 || channel > 3 {
		return nil, fmt.Errorf("raster: channel %d out of range [0,3]", channel)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	g := NewLabelGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			if src.Pix[i+3] == 0 {
				g.Set(x, y, -1)
				continue
			}
			g.Set(x, y, int32(src.Pix[i+channel]))
		}
	}
	return g, nil
}
