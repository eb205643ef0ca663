package envelope

import "image"

// Voxel accumulates weighted RGBA contributions, mirroring RGBAW{r,g,b,a,w}.
type Voxel struct {
	R, G, B, A, W float64
}

// sentinelColor mirrors the original's 0xFFFF00FF placeholder for
// zero-weight voxels, expressed as normalized RGBA.
var sentinelColor = [4]float64{1, 0, 1, 1}

// GradientBuilder performs pass two: per-frame fade computation and
// reverse trilinear splatting into a 3D texture of size
// resolution^3, mirroring GradientBuilder{erosion,m,width,height,depth,data}.
type GradientBuilder struct {
	builder    *Builder
	meta       Metadata
	resolution int
	voxels     []Voxel
}

// NewGradientBuilder mirrors g_Initialize.
func NewGradientBuilder(b *Builder, meta Metadata, resolution int) *GradientBuilder {
	return &GradientBuilder{
		builder:    b,
		meta:       meta,
		resolution: resolution,
		voxels:     make([]Voxel, resolution*resolution*resolution),
	}
}

func (g *GradientBuilder) voxelIndex(x, y, z int) int {
	r := g.resolution
	return z*r*r + y*r + x
}

func fadeFactor(frame, edge int, rising bool) float64 {
	if edge < 0 {
		return 1
	}
	d := float64(frame - edge)
	if !rising {
		d = -d
	}
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// ProcessFrame computes fade-in/fade-out/absolute-time parameters for
// frame index idx and reverse-blends its colors into the voxel grid,
// mirroring g_ProcessFrame + g_ReverseBlend.
func (g *GradientBuilder) ProcessFrame(idx int, img *image.NRGBA) {
	bounds := img.Bounds()
	w, h := g.builder.Width(), g.builder.Height()
	total := g.meta.TotalFrames
	if total <= 1 {
		total = 2
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			first := g.builder.FirstActive(x, y)
			last := g.builder.LastActive(x, y)
			if first == unset {
				continue
			}
			i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			a := img.Pix[i+3]
			if a == 0 {
				continue
			}
			fadeIn := fadeFactor(idx, first, true)
			fadeOut := fadeFactor(idx, last, false)
			fadeProgress := fadeIn * fadeOut
			absTime := float64(idx) / float64(total-1)

			r := float64(img.Pix[i+0]) / 255
			gC := float64(img.Pix[i+1]) / 255
			b := float64(img.Pix[i+2]) / 255
			texEffectR := r * fadeProgress
			texEffectG := gC * fadeProgress
			texEffectB := b * fadeProgress

			texCoord := [3]float64{texEffectR, texEffectG, absTime}
			g.reverseBlend(texCoord, [4]float64{texEffectR, texEffectG, texEffectB, fadeProgress})
		}
	}
}

// reverseBlend distributes one RGBA sample + its weight into the 8
// corners of the voxel it falls within, trilinear-weighted, mirroring
// g_ReverseBlend.
func (g *GradientBuilder) reverseBlend(coord [3]float64, rgba [4]float64) {
	res := float64(g.resolution - 1)
	fx, fy, fz := coord[0]*res, coord[1]*res, coord[2]*res
	x0, y0, z0 := int(fx), int(fy), int(fz)
	tx, ty, tz := fx-float64(x0), fy-float64(y0), fz-float64(z0)

	for dz := 0; dz <= 1; dz++ {
		for dy := 0; dy <= 1; dy++ {
			for dx := 0; dx <= 1; dx++ {
				cx, cy, cz := x0+dx, y0+dy, z0+dz
				if cx < 0 || cy < 0 || cz < 0 || cx >= g.resolution || cy >= g.resolution || cz >= g.resolution {
					continue
				}
				wx := tx
				if dx == 0 {
					wx = 1 - tx
				}
				wy := ty
				if dy == 0 {
					wy = 1 - ty
				}
				wz := tz
				if dz == 0 {
					wz = 1 - tz
				}
				weight := wx * wy * wz
				if weight <= 0 {
					continue
				}
				idx := g.voxelIndex(cx, cy, cz)
				v := &g.voxels[idx]
				v.R += rgba[0] * weight * rgba[3]
				v.G += rgba[1] * weight * rgba[3]
				v.B += rgba[2] * weight * rgba[3]
				v.A += rgba[3] * weight
				v.W += weight
			}
		}
	}
}

// Texture is the finalized 3D lookup texture.
type Texture struct {
	Resolution int
	Data       []Voxel
}

// Build finalizes the voxel grid: every voxel with nonzero weight is
// divided by its accumulated weight; zero-weight voxels get the
// sentinel color, mirroring g_Build.
func (g *GradientBuilder) Build() *Texture {
	out := make([]Voxel, len(g.voxels))
	for i, v := range g.voxels {
		if v.W == 0 {
			out[i] = Voxel{R: sentinelColor[0], G: sentinelColor[1], B: sentinelColor[2], A: sentinelColor[3]}
			continue
		}
		out[i] = Voxel{R: v.R / v.W, G: v.G / v.W, B: v.B / v.W, A: v.A / v.W, W: v.W}
	}
	return &Texture{Resolution: g.resolution, Data: out}
}
