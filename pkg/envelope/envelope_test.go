package envelope

import (
	"image"
	"image/color"
	"testing"
)

func solidFrame(w, h int, c color.NRGBA) Frame {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return Frame{Img: img}
}

func TestBuilderTracksFirstAndLastActiveFrame(t *testing.T) {
	b := NewBuilder(2, 2)
	b.ProcessFrame(solidFrame(2, 2, color.NRGBA{A: 0}))
	b.ProcessFrame(solidFrame(2, 2, color.NRGBA{R: 255, A: 255}))
	b.ProcessFrame(solidFrame(2, 2, color.NRGBA{R: 255, A: 255}))
	b.ProcessFrame(solidFrame(2, 2, color.NRGBA{A: 0}))

	if got := b.FirstActive(0, 0); got != 1 {
		t.Fatalf("FirstActive = %d, want 1", got)
	}
	if got := b.LastActive(0, 0); got != 2 {
		t.Fatalf("LastActive = %d, want 2", got)
	}

	m := b.Build()
	if m.TotalFrames != 4 {
		t.Fatalf("TotalFrames = %d, want 4", m.TotalFrames)
	}
	if m.MinAttackFrame != 1 || m.MaxReleaseFrame != 2 {
		t.Fatalf("metadata = %+v, want MinAttackFrame=1 MaxReleaseFrame=2", m)
	}
}

func TestGradientBuilderAssignsSentinelToUnvisitedVoxels(t *testing.T) {
	b := NewBuilder(1, 1)
	b.ProcessFrame(solidFrame(1, 1, color.NRGBA{R: 255, A: 255}))
	meta := b.Build()
	gb := NewGradientBuilder(b, meta, 4)
	gb.ProcessFrame(0, solidFrame(1, 1, color.NRGBA{R: 255, A: 255}).Img)
	tex := gb.Build()

	var anyVisited, anySentinel bool
	for _, v := range tex.Data {
		if v.W > 0 {
			anyVisited = true
		} else if v.R == sentinelColor[0] && v.G == sentinelColor[1] {
			anySentinel = true
		}
	}
	if !anyVisited {
		t.Fatalf("expected at least one voxel to receive a contribution")
	}
	if !anySentinel {
		t.Fatalf("expected untouched voxels to carry the sentinel color")
	}
}
