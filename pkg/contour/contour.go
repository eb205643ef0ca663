// Package contour implements the contour-flow driver: it detects
// ridges/valleys/saddles from the Hessian eigenvalues of a height field,
// seeds a chirality (rotation sign) at each detected feature, propagates
// that chirality outward by neighbor inheritance, and finally produces a
// tangent flow field — the gradient rotated by the local chirality and
// scaled by an exponential-falloff influence — optionally blended with
// the raw gradient.
//
// Grounded on erosion/src/contour_flow.{h,c}: CFSeed, CFRidgeMode,
// ContourFlowCmd, cf_rotate90, cf_DetectRidges, cf_Execute. Seeds use
// pkg/flood's Seed type, but pkg/flood's fill engine and distance rule
// are not used: influence decays with the 8-connected hop count from
// the nearest seed, as found by the chirality inheritance loop.
// Gradients come from pkg/field's gradient operator.
package contour

import (
	"math"

	"github.com/Fepozopo/erosion/pkg/field"
	"github.com/Fepozopo/erosion/pkg/flood"
	"github.com/Fepozopo/erosion/pkg/raster"
)

// RidgeMode selects which Hessian-eigenvalue feature cf_DetectRidges
// looks for.
type RidgeMode int

const (
	RidgeModePeaks RidgeMode = iota
	RidgeModeValleys
	RidgeModeBoth
	RidgeModeSaddles
)

// Params configures Execute, mirroring ContourFlowCmd's scalar fields.
type Params struct {
	RidgeMode        RidgeMode
	RidgeThreshold   float64
	InfluenceFalloff float64
	MinGradient      float64
	GradientBlend    float64
}

// Result holds the per-cell outputs of Execute.
type Result struct {
	Width, Height int
	Flow          *raster.Vec2Grid
	Influence     *raster.ScalarGrid
	Direction     []int8 // chirality, +1 or -1, 0 if unassigned
	RidgeStrength *raster.ScalarGrid
}

func rotate90(x, y float64) (float64, float64) { return -y, x }

func hessianEigenvalues(hxx, hxy, hyy float64) (l1, l2 float64) {
	tr := hxx + hyy
	det := hxx*hyy - hxy*hxy
	disc := tr*tr/4 - det
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	l1 = tr/2 + sq
	l2 = tr/2 - sq
	return
}

// DetectRidges computes per-cell ridge strength using finite-difference
// second derivatives and the mode-specific eigenvalue tests from
// cf_DetectRidges, normalized to [0,1] by the maximum strength found.
func DetectRidges(h *raster.ScalarGrid, mode RidgeMode) *raster.ScalarGrid {
	w, height := h.Width, h.Height
	out := raster.NewScalarGrid(w, height)
	at := func(x, y int) float64 {
		x = raster.ClampInt(x, 0, w-1)
		y = raster.ClampInt(y, 0, height-1)
		return h.At(x, y)
	}
	maxStrength := 0.0
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			hxx := at(x+1, y) - 2*at(x, y) + at(x-1, y)
			hyy := at(x, y+1) - 2*at(x, y) + at(x, y-1)
			hxy := (at(x+1, y+1) - at(x+1, y-1) - at(x-1, y+1) + at(x-1, y-1)) / 4
			l1, l2 := hessianEigenvalues(hxx, hxy, hyy)
			if l1 < l2 {
				l1, l2 = l2, l1
			}
			var strength float64
			switch mode {
			case RidgeModePeaks:
				if l2 < -0.01 && math.Abs(l1) < math.Abs(l2)*0.5 {
					strength = -l2
				}
			case RidgeModeValleys:
				if l1 > 0.01 && math.Abs(l2) < math.Abs(l1)*0.5 {
					strength = l1
				}
			case RidgeModeBoth:
				if l2 < -0.01 && math.Abs(l1) < math.Abs(l2)*0.5 {
					strength = -l2
				} else if l1 > 0.01 && math.Abs(l2) < math.Abs(l1)*0.5 {
					strength = l1
				}
			case RidgeModeSaddles:
				if l1*l2 < -0.001 {
					strength = math.Abs(l1 * l2)
				}
			}
			if strength > maxStrength {
				maxStrength = strength
			}
			out.Set(x, y, strength)
		}
	}
	if maxStrength > 0 {
		for i := range out.Data {
			out.Data[i] /= maxStrength
		}
	}
	return out
}

// Execute runs the full contour-flow pipeline, mirroring cf_Execute.
func Execute(h *raster.ScalarGrid, params Params) *Result {
	w, height := h.Width, h.Height
	grad := field.Gradient(h)
	ridge := DetectRidges(h, params.RidgeMode)

	// seed local maxima sampled every 4px, alternating chirality by grid
	// parity, mirroring cf_Execute's seed placement.
	var seeds []flood.Seed
	direction := make([]int8, w*height)
	for y := 0; y < height; y += 4 {
		for x := 0; x < w; x += 4 {
			if ridge.At(x, y) < params.RidgeThreshold {
				continue
			}
			if !isLocalMax(ridge, x, y) {
				continue
			}
			dir := int8(1)
			if (x/4+y/4)%2 != 0 {
				dir = -1
			}
			idx := y*w + x
			direction[idx] = dir
			seeds = append(seeds, flood.Seed{X: x, Y: y, Value: float64(dir)})
		}
	}

	// chirality propagation: a separate neighbor-inheritance loop bounded
	// by w+h passes, not the flood-fill engine, since inheritance must
	// come from the lowest-distance assigned neighbor rather than a
	// priority-queue frontier.
	assigned := make([]bool, w*height)
	distAssigned := make([]float64, w*height)
	for i := range distAssigned {
		distAssigned[i] = math.Inf(1)
	}
	for _, s := range seeds {
		idx := s.Y*w + s.X
		assigned[idx] = true
		distAssigned[idx] = 0
	}
	maxPasses := w + height
	offsets := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for y := 0; y < height; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				bestDist := distAssigned[idx]
				bestDir := direction[idx]
				found := assigned[idx]
				for _, off := range offsets {
					nx, ny := x+off[0], y+off[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= height {
						continue
					}
					nIdx := ny*w + nx
					if !assigned[nIdx] {
						continue
					}
					d := distAssigned[nIdx] + 1
					if !found || d < bestDist {
						bestDist = d
						bestDir = direction[nIdx]
						found = true
					}
				}
				if found && (!assigned[idx] || bestDist < distAssigned[idx]) {
					if !assigned[idx] {
						changed = true
					}
					assigned[idx] = true
					distAssigned[idx] = bestDist
					direction[idx] = bestDir
				}
			}
		}
		if !changed {
			break
		}
	}
	for i := range direction {
		if direction[i] == 0 {
			direction[i] = 1
		}
	}

	flowOut := raster.NewVec2Grid(w, height)
	falloff := params.InfluenceFalloff
	if falloff <= 0 {
		falloff = 1
	}
	influence := raster.NewScalarGrid(w, height)
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			gx, gy := grad.X[idx], grad.Y[idx]
			mag := math.Hypot(gx, gy)
			inf := math.Exp(-distAssigned[idx] * falloff)
			influence.Set(x, y, inf)
			if mag < params.MinGradient {
				continue
			}
			ux, uy := gx/mag, gy/mag
			rx, ry := rotate90(ux, uy)
			if direction[idx] < 0 {
				rx, ry = -rx, -ry
			}
			if params.GradientBlend > 0 {
				rx = rx*(1-params.GradientBlend) + ux*params.GradientBlend
				ry = ry*(1-params.GradientBlend) + uy*params.GradientBlend
				norm := math.Hypot(rx, ry)
				if norm > 0 {
					rx, ry = rx/norm, ry/norm
				}
			}
			flowOut.Set(x, y, rx*mag*inf, ry*mag*inf)
		}
	}

	return &Result{Width: w, Height: height, Flow: flowOut, Influence: influence, Direction: direction, RidgeStrength: ridge}
}

func isLocalMax(g *raster.ScalarGrid, x, y int) bool {
	v := g.At(x, y)
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			if ox == 0 && oy == 0 {
				continue
			}
			nx, ny := x+ox, y+oy
			if !g.InBounds(nx, ny) {
				continue
			}
			if g.At(nx, ny) > v {
				return false
			}
		}
	}
	return true
}
