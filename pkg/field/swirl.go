package field

import (
	"math"

	"github.com/Fepozopo/erosion/pkg/raster"
)

func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := raster.ClampFloat64((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Swirl rotates velocity perpendicular to itself, scaled by a
// smoothstep-blended function of normalized divergence magnitude and a
// caller-supplied strength, mirroring swirl_Execute: the maximum
// absolute divergence in the field normalizes the blend, and the
// rotation direction follows the sign of local divergence.
func Swirl(velocity *raster.Vec2Grid, divergence *raster.ScalarGrid, strength float64) *raster.Vec2Grid {
	w, h := velocity.Width, velocity.Height
	out := raster.NewVec2Grid(w, h)

	maxAbs := 0.0
	for _, d := range divergence.Data {
		if a := math.Abs(d); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	for i := 0; i < w*h; i++ {
		vx, vy := velocity.X[i], velocity.Y[i]
		d := divergence.Data[i]
		normalized := math.Abs(d) / maxAbs
		blend := smoothstep(0, 1, normalized) * strength
		if blend > 1 {
			blend = 1
		}
		rx, ry := -vy, vx
		s := sign(d)
		out.X[i] = vx + s*rx*blend
		out.Y[i] = vy + s*ry*blend
	}
	return out
}
