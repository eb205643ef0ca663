package field

import "github.com/Fepozopo/erosion/pkg/raster"

// HelmholtzResult is the Helmholtz-Hodge decomposition of a velocity
// field into a divergence-free (incompressible) part and a curl-free
// (gradient) part, mirroring HelmholtzCmd's incompressible/gradient
// output fields.
type HelmholtzResult struct {
	Incompressible *raster.Vec2Grid
	Gradient       *raster.Vec2Grid
	Divergence     *raster.ScalarGrid
	Potential      *raster.ScalarGrid
}

// Decompose runs helmholtz_Execute: compute divergence, solve the
// Poisson equation for the scalar potential, take its gradient as the
// curl-free part, and subtract it from the input velocity to get the
// divergence-free remainder: velocity = incompressible + gradient.
func Decompose(velocity *raster.Vec2Grid, iterations int, mask Mask) *HelmholtzResult {
	if iterations <= 0 {
		iterations = DefaultPoissonIterations
	}
	div := Divergence(velocity)
	phi := SolvePoisson(div, iterations, mask)
	grad := ComputePotentialGradient(phi)

	w, h := velocity.Width, velocity.Height
	incompressible := raster.NewVec2Grid(w, h)
	for i := range incompressible.X {
		incompressible.X[i] = velocity.X[i] - grad.X[i]
		incompressible.Y[i] = velocity.Y[i] - grad.Y[i]
	}

	return &HelmholtzResult{Incompressible: incompressible, Gradient: grad, Divergence: div, Potential: phi}
}

// HeightFromNormals inverts a normal map back into a height field,
// mirroring HeightFromNormalsCmd: recover (gx,gy) = (-nx/nz, -ny/nz) per
// cell, then Poisson-solve the divergence of that gradient field for the
// height, up to an additive constant.
func HeightFromNormals(normals []Normal, width, height, iterations int) *raster.ScalarGrid {
	if iterations <= 0 {
		iterations = HeightFromNormalsIterations
	}
	grad := raster.NewVec2Grid(width, height)
	for i, n := range normals {
		nz := n.NZ
		if nz == 0 {
			nz = 1e-6
		}
		grad.X[i] = -n.NX / nz
		grad.Y[i] = -n.NY / nz
	}
	div := Divergence(grad)
	return SolvePoisson(div, iterations, nil)
}
