// Package quantize implements quantized interpolation (QI): given the
// SDF-L distances to a region's nearest lower and upper palette-adjacent
// boundaries, it reconstructs a continuous value by linear interpolation
// between the two palette levels, weighted by relative distance.
//
// Grounded on gradient-mapping/src/commands/interp_quantized.{h,cpp}:
// InterpPixel/InterpRegion/InterpolateQuantizedCmd, iq_Initialize (palette
// inversion into next_color), extract_neighbor_distances,
// compute_region_max_distances (the "+1" region-max bias noted in
// spec.md §9) and interpolate's exact t formula.
package quantize

import (
	"github.com/Fepozopo/erosion/pkg/errs"
	"github.com/Fepozopo/erosion/pkg/labels"
	"github.com/Fepozopo/erosion/pkg/palette"
	"github.com/Fepozopo/erosion/pkg/raster"
	"github.com/Fepozopo/erosion/pkg/sdf"
)

// Palette maps a quantized palette index to the dequantized scalar value
// it represents.
type Palette = palette.Palette

// Result holds, per cell, the interpolation parameter t and the
// dequantized output value.
type Result struct {
	Width, Height int
	T             []float64
	Output        []float64
}

func (r *Result) at(x, y int) int { return y*r.Width + x }

// Interpolate runs QI over values/regions using the SDF-L distances
// already computed by sdf.Run (with the same prevColor forest passed to
// it), the palette that maps quantized index -> dequantized value, and
// the prev_color[256] adjacency forest itself — inverted here into
// next_color so a cell's "higher" boundary maps back to a concrete
// dequantized value via the real adjacency, not a contiguous-index guess.
func Interpolate(values *raster.LabelGrid, regions *labels.Result, dist *sdf.Result, pal Palette, prevColor palette.Forest) (*Result, error) {
	w, h := values.Width, values.Height
	if regions.Labels.Width != w || regions.Labels.Height != h {
		return nil, errs.ShapeMismatch("quantize.Interpolate", w, h, regions.Labels.Width, regions.Labels.Height)
	}
	if dist.Width != w || dist.Height != h {
		return nil, errs.ShapeMismatch("quantize.Interpolate", w, h, dist.Width, dist.Height)
	}

	n := regions.NumRegions
	maxLower := make([]float64, n)
	maxHigher := make([]float64, n)
	for i, r := range regions.Labels.Data {
		if r < 0 {
			continue
		}
		c := dist.Cells[i]
		if c.HasLower && c.DistLower > maxLower[r] {
			maxLower[r] = c.DistLower
		}
		if c.HasHigher && c.DistHigher > maxHigher[r] {
			maxHigher[r] = c.DistHigher
		}
	}
	// compute_region_max_distances biases the per-region maxima by +1 so
	// a cell exactly at the farthest boundary still yields t < 1.
	for r := 0; r < n; r++ {
		maxLower[r] += 1
		maxHigher[r] += 1
	}

	out := &Result{Width: w, Height: h, T: make([]float64, w*h), Output: make([]float64, w*h)}
	nextColor := prevColor.Next()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			r := regions.Labels.At(x, y)
			if r < 0 {
				continue
			}
			lowerValue := pal[values.At(x, y)]
			var t, output float64
			c := dist.Cells[idx]
			switch {
			case c.HasLower && c.HasHigher:
				t = c.DistLower / (c.DistLower + c.DistHigher)
				higherValue := resolveHigherValue(values.At(x, y), pal, nextColor)
				rng := higherValue - lowerValue
				output = lowerValue + t*rng
			case c.HasLower && !c.HasHigher:
				// fallback: use the region's own max lower distance as
				// the implicit denominator, per extract_neighbor_distances'
				// single-boundary case.
				if maxLower[r] > 0 {
					t = c.DistLower / maxLower[r]
				}
				output = lowerValue
			case !c.HasLower && c.HasHigher:
				if maxHigher[r] > 0 {
					t = 1 - c.DistHigher/maxHigher[r]
				}
				output = lowerValue
			default:
				t = 0
				output = lowerValue
			}
			if output < 0 {
				output = 0
			}
			out.T[idx] = t
			out.Output[idx] = output
		}
	}

	return out, nil
}

func resolveHigherValue(v int32, pal Palette, nextColor palette.Forest) float64 {
	nv := nextColor[v]
	if nv < 0 {
		return pal[v]
	}
	return pal[nv]
}

// BoundaryDisplacement returns the (dx,dy) offset from cell (x,y) to its
// nearest lower (lo=true) or higher (lo=false) boundary cell, the
// displacement-aware accessor SPEC_FULL.md adds on top of InterpPixel's
// dx_lower/dy_lower/dx_higher/dy_higher fields for downstream gradient
// queries.
func (r *Result) BoundaryDisplacement(dist *sdf.Result, x, y int, lo bool) (dx, dy int32, ok bool) {
	c := dist.At(x, y)
	if lo {
		return c.DXLower, c.DYLower, c.HasLower
	}
	return c.DXHigher, c.DYHigher, c.HasHigher
}
