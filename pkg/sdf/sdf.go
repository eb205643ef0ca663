// Package sdf implements the layered signed-distance transform (SDF-L):
// for every cell of a quantized source grid it finds, region by region,
// the nearest cell whose palette index is the region's prev_color (lower)
// or next_color (higher) target, searching one forest hop at a time and
// widening to the next hop only once a region's current one has been
// fully exhausted.
//
// Grounded on gradient-mapping/src/commands/interp_quantized.{h,cpp}'s
// SDFContext/SDFRegion/SDFCell triple (the canonical variant spec.md was
// distilled from) and, for the Dijkstra-style propagation itself, on the
// legacy erosion/src/sdf_layered.c DijkstraQueue flood. The priority
// queue is pkg/pqueue rather than a hand-rolled binary heap.
package sdf

import (
	"math"

	"github.com/Fepozopo/erosion/pkg/errs"
	"github.com/Fepozopo/erosion/pkg/labels"
	"github.com/Fepozopo/erosion/pkg/palette"
	"github.com/Fepozopo/erosion/pkg/pqueue"
	"github.com/Fepozopo/erosion/pkg/raster"
)

// MaxIterations is the safety cap on the number of palette floors
// searched per side, mirroring the 255-iteration cap in sdf_Run.
const MaxIterations = 255

// DistanceParams selects the metric used to score candidate boundary
// cells, mirroring SDFDistanceParams{minkowski,chebyshev}.
type DistanceParams struct {
	// Minkowski is the p exponent of the Lp norm. Zero (the default
	// value) is treated as the Euclidean case, p=2.
	Minkowski float64
	// Chebyshev selects the L-infinity (max) norm instead of Minkowski.
	Chebyshev bool
}

func (p DistanceParams) norm(dx, dy int32) float64 {
	fx, fy := math.Abs(float64(dx)), math.Abs(float64(dy))
	if p.Chebyshev {
		return math.Max(fx, fy)
	}
	pw := p.Minkowski
	if pw <= 0 {
		pw = 2
	}
	return math.Pow(math.Pow(fx, pw)+math.Pow(fy, pw), 1/pw)
}

// Cell is the per-pixel SDF-L result: displacement to, and distance from,
// the nearest lower- and upper-palette boundary cell found so far.
type Cell struct {
	DXLower, DYLower   int32
	DistLower          float64
	HasLower           bool
	DXHigher, DYHigher int32
	DistHigher         float64
	HasHigher          bool
}

// Result is the output of Run.
type Result struct {
	Width, Height int
	Cells         []Cell
	// Iterations is the number of palette floors actually searched
	// before every region resolved both sides, no unresolved cell had a
	// forest target left, or the safety cap hit.
	Iterations int
}

func (r *Result) at(x, y int) int { return y*r.Width + x }

// At returns the cell for (x,y).
func (r *Result) At(x, y int) Cell { return r.Cells[r.at(x, y)] }

var neighborOffsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Run computes the layered SDF over values (a quantized palette-index
// grid, 0..255) using regions as the connected-component partition
// within which cells may propagate (cells never borrow distance across a
// region boundary). prevColor is the prev_color[256] adjacency forest
// from spec §3: a region's "lower" target is prevColor applied to its own
// palette index, and its "higher" target is the same forest inverted
// (next_color). Use labels.Label(values, connectivity) to build regions.
func Run(values *raster.LabelGrid, regions *labels.Result, prevColor palette.Forest, params DistanceParams) (*Result, error) {
	w, h := values.Width, values.Height
	if regions.Labels.Width != w || regions.Labels.Height != h {
		return nil, errs.ShapeMismatch("sdf.Run", w, h, regions.Labels.Width, regions.Labels.Height)
	}
	nextColor := prevColor.Next()

	n := regions.NumRegions
	regionValue := make([]int32, n)
	haveValue := make([]bool, n)
	memberCount := make([]int, n)
	for i, r := range regions.Labels.Data {
		if r < 0 {
			continue
		}
		memberCount[r]++
		if !haveValue[r] {
			regionValue[r] = values.Data[i]
			haveValue[r] = true
		}
	}

	cells := make([]Cell, w*h)
	resolvedLower := make([]bool, n)
	resolvedUpper := make([]bool, n)
	filledLower := make([]int, n)
	filledUpper := make([]int, n)

	q := pqueue.New(256)

	// moreTargets records whether any unresolved cell still had a forest
	// target at the current hop count; a Chase that fails at k hops also
	// fails at k+1, so once no cell has one, later floors find nothing.
	moreTargets := false
	runSide := func(floorOffset int, lower bool) bool {
		anyWork := false
		q = pqueue.New(256)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r := regions.Labels.At(x, y)
				if r < 0 {
					continue
				}
				if lower && resolvedLower[r] {
					continue
				}
				if !lower && resolvedUpper[r] {
					continue
				}
				idx := y*w + x
				already := cells[idx].HasLower
				if !lower {
					already = cells[idx].HasHigher
				}
				if already {
					continue
				}
				var floorValue int32
				var ok bool
				if lower {
					floorValue, ok = prevColor.Chase(regionValue[r], floorOffset)
				} else {
					floorValue, ok = nextColor.Chase(regionValue[r], floorOffset)
				}
				if !ok {
					continue
				}
				moreTargets = true
				for _, off := range neighborOffsets4 {
					nx, ny := x+off[0], y+off[1]
					if !values.InBounds(nx, ny) {
						continue
					}
					if values.At(nx, ny) != floorValue {
						continue
					}
					dx, dy := int32(off[0]), int32(off[1])
					dist := params.norm(dx, dy)
					q.Push(&pqueue.Item{X: x, Y: y, Priority: dist, Payload: [2]int32{dx, dy}})
				}
			}
		}

		for q.Len() > 0 {
			it := q.Pop()
			x, y := it.X, it.Y
			idx := y*w + x
			disp := it.Payload.([2]int32)
			if lower {
				if cells[idx].HasLower && cells[idx].DistLower <= it.Priority {
					continue
				}
				cells[idx].HasLower = true
				cells[idx].DistLower = it.Priority
				cells[idx].DXLower, cells[idx].DYLower = disp[0], disp[1]
			} else {
				if cells[idx].HasHigher && cells[idx].DistHigher <= it.Priority {
					continue
				}
				cells[idx].HasHigher = true
				cells[idx].DistHigher = it.Priority
				cells[idx].DXHigher, cells[idx].DYHigher = disp[0], disp[1]
			}
			anyWork = true
			r := regions.Labels.At(x, y)
			for _, off := range neighborOffsets4 {
				nx, ny := x+off[0], y+off[1]
				if !values.InBounds(nx, ny) {
					continue
				}
				if regions.Labels.At(nx, ny) != r {
					continue
				}
				nIdx := ny*w + nx
				nHas := cells[nIdx].HasLower
				if !lower {
					nHas = cells[nIdx].HasHigher
				}
				if nHas {
					continue
				}
				ndx := disp[0] + int32(x-nx)
				ndy := disp[1] + int32(y-ny)
				ndist := params.norm(ndx, ndy)
				q.Push(&pqueue.Item{X: nx, Y: ny, Priority: ndist, Payload: [2]int32{ndx, ndy}})
			}
		}
		return anyWork
	}

	iterations := 0
	for floorOffset := 1; floorOffset <= MaxIterations; floorOffset++ {
		iterations = floorOffset
		moreTargets = false
		runSide(floorOffset, true)
		runSide(floorOffset, false)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r := regions.Labels.At(x, y)
				if r < 0 {
					continue
				}
				idx := y*w + x
				if cells[idx].HasLower {
					filledLower[r]++
				}
				if cells[idx].HasHigher {
					filledUpper[r]++
				}
			}
		}
		allDone := true
		for r := 0; r < n; r++ {
			if filledLower[r] >= memberCount[r] {
				resolvedLower[r] = true
			}
			if filledUpper[r] >= memberCount[r] {
				resolvedUpper[r] = true
			}
			if !resolvedLower[r] || !resolvedUpper[r] {
				allDone = false
			}
			filledLower[r] = 0
			filledUpper[r] = 0
		}
		if allDone || !moreTargets {
			break
		}
	}

	return &Result{Width: w, Height: h, Cells: cells, Iterations: iterations}, nil
}
