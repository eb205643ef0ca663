// SolveFluid is the composed pipeline SPEC_FULL.md adds from
// erosion/src/fluid_solver.c: it ties the gradient, Helmholtz
// decomposition and swirl operators together the way component F's
// individual primitives are built to support, instead of leaving them
// as disconnected utilities.
package field

import "github.com/Fepozopo/erosion/pkg/raster"

// FluidResult mirrors FluidSolver's output fields.
type FluidResult struct {
	Velocity       *raster.Vec2Grid
	Incompressible *raster.Vec2Grid
	CurlFree       *raster.Vec2Grid
	Swirl          *raster.Vec2Grid
}

// rotate90 mirrors fluid_solver.c's cf_rotate90-style helper used to turn
// a gradient into an initial velocity field.
func rotate90(v *raster.Vec2Grid) *raster.Vec2Grid {
	out := raster.NewVec2Grid(v.Width, v.Height)
	for i := range out.X {
		out.X[i] = -v.Y[i]
		out.Y[i] = v.X[i]
	}
	return out
}

// SolveFluid mirrors fs_Setup: build an initial velocity field from the
// rotated gradient of a height layer scaled by a second "mask" layer,
// then Helmholtz-decompose it and apply swirl to the incompressible part.
func SolveFluid(heightLayer, maskLayer *raster.ScalarGrid, poissonIterations int, swirlStrength float64, mask Mask) (*FluidResult, error) {
	if heightLayer.Width != maskLayer.Width || heightLayer.Height != maskLayer.Height {
		return nil, errShapeMismatch
	}
	grad := Gradient(heightLayer)
	rotated := rotate90(grad)

	velocity := raster.NewVec2Grid(heightLayer.Width, heightLayer.Height)
	for i := range velocity.X {
		scale := maskLayer.Data[i]
		velocity.X[i] = rotated.X[i] * scale
		velocity.Y[i] = rotated.Y[i] * scale
	}

	decomposed := Decompose(velocity, poissonIterations, mask)
	swirled := Swirl(decomposed.Incompressible, decomposed.Divergence, swirlStrength)

	return &FluidResult{
		Velocity:       velocity,
		Incompressible: decomposed.Incompressible,
		CurlFree:       decomposed.Gradient,
		Swirl:          swirled,
	}, nil
}

var errShapeMismatch = shapeMismatchErr{}

type shapeMismatchErr struct{}

func (shapeMismatchErr) Error() string { return "height and mask layers must share dimensions" }
