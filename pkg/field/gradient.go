// Package field implements the height-field operators: central-difference
// gradient, normal map, divergence, Gauss-Seidel Poisson relaxation,
// Helmholtz-Hodge decomposition, divergence-driven swirl, and
// height-from-normals (the inverse of the normal map via a Poisson
// solve). It also provides SolveFluid, the composed pipeline SPEC_FULL.md
// adds from erosion/src/fluid_solver.c.
//
// Grounded on erosion/src/helmholtz.{h,c}, erosion/src/swirl.{h,c},
// erosion/src/normal_map.h and erosion/src/fluid_solver.{h,c}.
package field

import (
	"math"

	"github.com/Fepozopo/erosion/pkg/raster"
)

// Gradient computes the central-difference gradient of h (one-sided at
// borders), mirroring GradientCmd.
func Gradient(h *raster.ScalarGrid) *raster.Vec2Grid {
	w, height := h.Width, h.Height
	out := raster.NewVec2Grid(w, height)
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			switch {
			case x == 0:
				gx = h.At(x+1, y) - h.At(x, y)
			case x == w-1:
				gx = h.At(x, y) - h.At(x-1, y)
			default:
				gx = (h.At(x+1, y) - h.At(x-1, y)) / 2
			}
			switch {
			case y == 0:
				gy = h.At(x, y+1) - h.At(x, y)
			case y == height-1:
				gy = h.At(x, y) - h.At(x, y-1)
			default:
				gy = (h.At(x, y+1) - h.At(x, y-1)) / 2
			}
			out.Set(x, y, gx, gy)
		}
	}
	return out
}

// NormalMap builds a 3-component normal map from a height field's
// gradient: normalise(-dh/dx, -dh/dy, 1/scale), mirroring NormalMapCmd.
type Normal struct {
	NX, NY, NZ float64
}

func NormalMap(h *raster.ScalarGrid, scale float64) []Normal {
	if scale == 0 {
		scale = 1
	}
	grad := Gradient(h)
	out := make([]Normal, h.Width*h.Height)
	for i := range out {
		gx, gy := grad.X[i], grad.Y[i]
		nx, ny, nz := -gx, -gy, 1/scale
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length == 0 {
			out[i] = Normal{0, 0, 1}
			continue
		}
		out[i] = Normal{nx / length, ny / length, nz / length}
	}
	return out
}

// Divergence computes div(v) with the same central/one-sided difference
// rule as Gradient, mirroring helmholtz_ComputeDivergence.
func Divergence(v *raster.Vec2Grid) *raster.ScalarGrid {
	w, h := v.Width, v.Height
	out := raster.NewScalarGrid(w, h)
	at := func(data []float64, x, y int) float64 { return data[y*w+x] }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var dvxdx, dvydy float64
			switch {
			case x == 0:
				dvxdx = at(v.X, x+1, y) - at(v.X, x, y)
			case x == w-1:
				dvxdx = at(v.X, x, y) - at(v.X, x-1, y)
			default:
				dvxdx = (at(v.X, x+1, y) - at(v.X, x-1, y)) / 2
			}
			switch {
			case y == 0:
				dvydy = at(v.Y, x, y+1) - at(v.Y, x, y)
			case y == h-1:
				dvydy = at(v.Y, x, y) - at(v.Y, x, y-1)
			default:
				dvydy = (at(v.Y, x, y+1) - at(v.Y, x, y-1)) / 2
			}
			out.Set(x, y, dvxdx+dvydy)
		}
	}
	return out
}
