// Package envelope implements the two-pass temporal aggregator: pass one
// (Builder) scans a video's frames to record, per pixel, the first and
// last frame at which it was "active"; pass two (GradientBuilder) uses
// that envelope to compute per-frame fade parameters and splats each
// frame's color into a 3D voxel lookup texture via reverse trilinear
// blending.
//
// Grounded on erosion/create_envelopes.h (EnvelopeMetadata, e_Initialize,
// e_ProcessFrame, e_Build) and erosion/create_gradient.{h,c}
// (GradientBuilder, g_ProcessFrame, g_ReverseBlend, g_Build).
package envelope

import "image"

// Frame is one decoded video frame; activity is determined by alpha > 0.
type Frame struct {
	Img *image.NRGBA
}

// Metadata is the aggregate envelope summary, mirroring EnvelopeMetadata.
type Metadata struct {
	TotalFrames     int
	MinAttackFrame  int
	MaxAttackFrame  int
	MinReleaseFrame int
	MaxReleaseFrame int
}

// Builder accumulates per-pixel first/last-active-frame envelope data
// across ProcessFrame calls, mirroring EnvelopeBuilder.
type Builder struct {
	width, height int
	firstActive   []int
	lastActive    []int
	frameCount    int
}

const unset = -1

// NewBuilder mirrors e_Initialize.
func NewBuilder(width, height int) *Builder {
	n := width * height
	b := &Builder{width: width, height: height, firstActive: make([]int, n), lastActive: make([]int, n)}
	for i := range b.firstActive {
		b.firstActive[i] = unset
		b.lastActive[i] = unset
	}
	return b
}

// ProcessFrame records activity for one frame, mirroring e_ProcessFrame.
func (b *Builder) ProcessFrame(f Frame) {
	idx := b.frameCount
	bounds := f.Img.Bounds()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := f.Img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			if f.Img.Pix[i+3] == 0 {
				continue
			}
			p := y*b.width + x
			if b.firstActive[p] == unset {
				b.firstActive[p] = idx
			}
			b.lastActive[p] = idx
		}
	}
	b.frameCount++
}

// Build finalizes the accumulated data into Metadata, mirroring e_Build.
func (b *Builder) Build() Metadata {
	m := Metadata{TotalFrames: b.frameCount, MinAttackFrame: unset, MaxAttackFrame: unset, MinReleaseFrame: unset, MaxReleaseFrame: unset}
	for i := range b.firstActive {
		fa, la := b.firstActive[i], b.lastActive[i]
		if fa == unset {
			continue
		}
		if m.MinAttackFrame == unset || fa < m.MinAttackFrame {
			m.MinAttackFrame = fa
		}
		if m.MaxAttackFrame == unset || fa > m.MaxAttackFrame {
			m.MaxAttackFrame = fa
		}
		if m.MinReleaseFrame == unset || la < m.MinReleaseFrame {
			m.MinReleaseFrame = la
		}
		if m.MaxReleaseFrame == unset || la > m.MaxReleaseFrame {
			m.MaxReleaseFrame = la
		}
	}
	return m
}

// FirstActive and LastActive expose the per-pixel envelope arrays for
// GradientBuilder.
func (b *Builder) FirstActive(x, y int) int { return b.firstActive[y*b.width+x] }
func (b *Builder) LastActive(x, y int) int  { return b.lastActive[y*b.width+x] }
func (b *Builder) Width() int               { return b.width }
func (b *Builder) Height() int              { return b.height }
