package field

import "github.com/Fepozopo/erosion/pkg/raster"

// DefaultPoissonIterations mirrors helmholtz.c's DEFAULT_ITERATIONS.
const DefaultPoissonIterations = 40

// HeightFromNormalsIterations mirrors normal_map.h's
// HeightFromNormalsCmd default iteration count.
const HeightFromNormalsIterations = 100

// Mask reports whether a cell participates in the Poisson solve,
// mirroring helmholtz.c's is_valid mask helper (nil means "all valid").
type Mask func(x, y int) bool

// SolvePoisson runs Gauss-Seidel relaxation to find phi such that
// laplacian(phi) ~= divergence, mirroring solve_poisson: each cell is
// updated to the average of its valid neighbors minus the divergence at
// that cell, divided by the neighbor count.
func SolvePoisson(divergence *raster.ScalarGrid, iterations int, mask Mask) *raster.ScalarGrid {
	w, h := divergence.Width, divergence.Height
	phi := raster.NewScalarGrid(w, h)
	valid := func(x, y int) bool {
		if !phi.InBounds(x, y) {
			return false
		}
		if mask == nil {
			return true
		}
		return mask(x, y)
	}
	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for iter := 0; iter < iterations; iter++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !valid(x, y) {
					continue
				}
				var sum float64
				var count int
				for _, off := range offsets {
					nx, ny := x+off[0], y+off[1]
					if !valid(nx, ny) {
						continue
					}
					sum += phi.At(nx, ny)
					count++
				}
				if count == 0 {
					continue
				}
				phi.Set(x, y, (sum-divergence.At(x, y))/float64(count))
			}
		}
	}
	return phi
}

// ComputePotentialGradient returns grad(phi), mirroring
// compute_potential_gradient.
func ComputePotentialGradient(phi *raster.ScalarGrid) *raster.Vec2Grid {
	return Gradient(phi)
}
