package blur

import (
	"testing"

	"github.com/Fepozopo/erosion/pkg/raster"
)

func TestIterateClampsToConstraints(t *testing.T) {
	initial := raster.NewScalarGrid(3, 3)
	initial.Set(1, 1, 100)
	ctx := NewContext(initial)
	lo := raster.NewScalarGrid(3, 3)
	hi := raster.NewScalarGrid(3, 3)
	for i := range hi.Data {
		hi.Data[i] = 5
	}
	ctx.SetConstraints(lo, hi)
	ctx.Iterate()
	if v := ctx.GetValue(1, 1); v > 5 {
		t.Fatalf("clamped value = %v, want <= 5", v)
	}
}

func TestRunUntilConvergedStopsEarlyOnFlatField(t *testing.T) {
	initial := raster.NewScalarGrid(4, 4)
	for i := range initial.Data {
		initial.Data[i] = 3
	}
	ctx := NewContext(initial)
	lo := raster.NewScalarGrid(4, 4)
	hi := raster.NewScalarGrid(4, 4)
	for i := range hi.Data {
		hi.Data[i] = 10
	}
	ctx.SetConstraints(lo, hi)
	iters := ctx.RunUntilConverged(1e-9, 50)
	if iters >= 50 {
		t.Fatalf("a flat field should converge well before the cap, got %d iterations", iters)
	}
}

func TestRunUntilConvergedReturnsCapOnNonConvergence(t *testing.T) {
	initial := raster.NewScalarGrid(5, 5)
	initial.Set(2, 2, 1000)
	ctx := NewContext(initial)
	lo := raster.NewScalarGrid(5, 5)
	hi := raster.NewScalarGrid(5, 5)
	for i := range hi.Data {
		hi.Data[i] = 1000
	}
	ctx.SetConstraints(lo, hi)
	got := ctx.RunUntilConverged(-1, 7)
	if got != 7 {
		t.Fatalf("non-convergent run should return the iteration cap 7, got %d", got)
	}
}
