// ChamferDistance implements the two-pass chamfer distance transform,
// grounded on erosion/src/chamfer.{h,c}. spec.md's glossary notes this
// approach is "superseded by the metric-parametric path" (pkg/sdf), but
// the original source keeps it as a cheap single-pass preview transform,
// so SPEC_FULL.md carries it forward for the same purpose: a fast
// approximate distance-to-nearest-opposite-value field when a full SDF-L
// run is not justified.
package flood

import "github.com/Fepozopo/erosion/pkg/raster"

const (
	chamferOrtho = 3
	chamferDiag  = 4
	chamferScale = 1.0 / 3.0
)

// ChamferDistance returns, for every cell, an approximate distance to the
// nearest cell whose value differs from its own, in the same units as
// the source grid (already divided by chamferScale's reciprocal so the
// result is comparable to pkg/sdf's Euclidean output).
func ChamferDistance(values *raster.LabelGrid) *raster.ScalarGrid {
	w, h := values.Width, values.Height
	const inf = 1 << 30
	dist := make([]int, w*h)
	for i := range dist {
		dist[i] = inf
	}
	idx := func(x, y int) int { return y*w + x }

	// seed boundary cells: any cell adjacent to a different value.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := values.At(x, y)
			for _, off := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+off[0], y+off[1]
				if !values.InBounds(nx, ny) {
					continue
				}
				if values.At(nx, ny) != v {
					dist[idx(x, y)] = 0
					break
				}
			}
		}
	}

	relax := func(x, y, ox, oy, weight int) {
		nx, ny := x+ox, y+oy
		if nx < 0 || ny < 0 || nx >= w || ny >= h {
			return
		}
		cand := dist[idx(nx, ny)] + weight
		if cand < dist[idx(x, y)] {
			dist[idx(x, y)] = cand
		}
	}

	// forward pass
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			relax(x, y, -1, 0, chamferOrtho)
			relax(x, y, 0, -1, chamferOrtho)
			relax(x, y, -1, -1, chamferDiag)
			relax(x, y, 1, -1, chamferDiag)
		}
	}
	// backward pass
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			relax(x, y, 1, 0, chamferOrtho)
			relax(x, y, 0, 1, chamferOrtho)
			relax(x, y, 1, 1, chamferDiag)
			relax(x, y, -1, 1, chamferDiag)
		}
	}

	out := raster.NewScalarGrid(w, h)
	for i, d := range dist {
		if d >= inf {
			out.Data[i] = -1
			continue
		}
		out.Data[i] = float64(d) * chamferScale
	}
	return out
}
