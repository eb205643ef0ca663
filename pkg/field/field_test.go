package field

import (
	"math"
	"testing"

	"github.com/Fepozopo/erosion/pkg/raster"
	"github.com/stretchr/testify/assert"
)

func planeHeightField(w, h int, slopeX, slopeY float64) *raster.ScalarGrid {
	g := raster.NewScalarGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, slopeX*float64(x)+slopeY*float64(y))
		}
	}
	return g
}

func TestGradientOfPlaneIsConstant(t *testing.T) {
	h := planeHeightField(10, 10, 2, -3)
	grad := Gradient(h)
	// interior cells use the central difference, so gx should match the
	// slope exactly away from the borders.
	gx, gy := grad.At(5, 5)
	assert.InDelta(t, 2.0, gx, 1e-9)
	assert.InDelta(t, -3.0, gy, 1e-9)
}

func TestNormalMapIsUnitLength(t *testing.T) {
	h := planeHeightField(8, 8, 0.5, 0.25)
	normals := NormalMap(h, 1.0)
	for _, n := range normals {
		length := math.Sqrt(n.NX*n.NX + n.NY*n.NY + n.NZ*n.NZ)
		assert.InDelta(t, 1.0, length, 1e-9)
	}
}

func TestDecomposeReconstructsVelocity(t *testing.T) {
	w, h := 12, 12
	v := raster.NewVec2Grid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v.Set(x, y, float64(x)*0.1, float64(y)*-0.1)
		}
	}
	res := Decompose(v, 20, nil)
	// velocity = incompressible + gradient, so adding them back should
	// recover something close to the original field's interior values.
	for i := range v.X {
		gotX := res.Incompressible.X[i] + res.Gradient.X[i]
		gotY := res.Incompressible.Y[i] + res.Gradient.Y[i]
		assert.InDelta(t, v.X[i], gotX, 1e-6)
		assert.InDelta(t, v.Y[i], gotY, 1e-6)
	}
}

func TestHeightFromNormalsRoundTripsUpToConstant(t *testing.T) {
	w, h := 10, 10
	original := raster.NewScalarGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			original.Set(x, y, float64(x)+float64(y))
		}
	}
	normals := NormalMap(original, 1.0)
	recovered := HeightFromNormals(normals, w, h, 200)

	// compare a height difference rather than absolute height, since the
	// Poisson solve only recovers height up to an additive constant.
	origMid := original.At(5, 5) - original.At(4, 4)
	recMid := recovered.At(5, 5) - recovered.At(4, 4)
	assert.InDelta(t, origMid, recMid, 0.5)
}

func TestSwirlPreservesZeroDivergenceField(t *testing.T) {
	w, h := 6, 6
	v := raster.NewVec2Grid(w, h)
	div := raster.NewScalarGrid(w, h) // all zero
	out := Swirl(v, div, 1.0)
	for i := range out.X {
		assert.Equal(t, 0.0, out.X[i])
		assert.Equal(t, 0.0, out.Y[i])
	}
}
