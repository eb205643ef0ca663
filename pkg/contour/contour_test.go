package contour

import (
	"testing"

	"github.com/Fepozopo/erosion/pkg/raster"
	"github.com/stretchr/testify/assert"
)

func coneHeightField(w, h int) *raster.ScalarGrid {
	g := raster.NewScalarGrid(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			r := dx*dx + dy*dy
			g.Set(x, y, -r)
		}
	}
	return g
}

func TestDetectRidgesNormalizesToUnitRange(t *testing.T) {
	h := coneHeightField(16, 16)
	ridge := DetectRidges(h, RidgeModePeaks)
	var max float64
	for _, v := range ridge.Data {
		assert.GreaterOrEqual(t, v, 0.0, "ridge strength must never be negative")
		if v > max {
			max = v
		}
	}
	assert.LessOrEqual(t, max, 1.0+1e-9, "ridge strength must normalize to at most 1")
}

func TestExecuteProducesInfluenceThatDecaysOutward(t *testing.T) {
	h := coneHeightField(24, 24)
	res := Execute(h, Params{RidgeMode: RidgeModePeaks, RidgeThreshold: 0.1, InfluenceFalloff: 0.5})
	center := res.Influence.At(12, 12)
	corner := res.Influence.At(1, 1)
	assert.GreaterOrEqual(t, center, corner, "influence should be at least as strong near the peak as far from it")
}

func TestExecuteAssignsNonZeroChirality(t *testing.T) {
	h := coneHeightField(20, 20)
	res := Execute(h, Params{RidgeMode: RidgeModeBoth, RidgeThreshold: 0.05, InfluenceFalloff: 0.3})
	for _, d := range res.Direction {
		assert.NotEqual(t, int8(0), d, "every cell must end up with a chirality of +1 or -1")
	}
}
