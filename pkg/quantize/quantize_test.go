package quantize

import (
	"testing"

	"github.com/Fepozopo/erosion/pkg/labels"
	"github.com/Fepozopo/erosion/pkg/palette"
	"github.com/Fepozopo/erosion/pkg/raster"
	"github.com/Fepozopo/erosion/pkg/sdf"
)

func valuesFrom(rows [][]int32) *raster.LabelGrid {
	h := len(rows)
	w := len(rows[0])
	g := raster.NewLabelGrid(w, h)
	for y, row := range rows {
		for x, v := range row {
			g.Set(x, y, v)
		}
	}
	return g
}

func linearPalette() Palette {
	var p Palette
	for i := range p {
		p[i] = float64(i)
	}
	return p
}

func TestInterpolateBetweenTwoBoundaries(t *testing.T) {
	values := valuesFrom([][]int32{
		{10, 20, 30},
	})
	regions := labels.Label(values, labels.Connect4)
	dist, err := sdf.Run(values, regions, palette.IdentityForest(), sdf.DistanceParams{})
	if err != nil {
		t.Fatalf("sdf.Run: %v", err)
	}
	res, err := Interpolate(values, regions, dist, linearPalette(), palette.IdentityForest())
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	// the middle cell (value 20) is its own region, one cell from both its
	// lower boundary (10, ten hops down the identity ladder) and its upper
	// boundary (30), so t should be 0.5; the output blends palette[20]
	// toward palette[next_color[20]] = palette[21], giving 20.5.
	idx := res.at(1, 0)
	if res.T[idx] < 0.49 || res.T[idx] > 0.51 {
		t.Fatalf("t = %v, want ~0.5", res.T[idx])
	}
	if res.Output[idx] < 19 || res.Output[idx] > 21 {
		t.Fatalf("output = %v, want ~20", res.Output[idx])
	}
}

func TestInterpolateOutputNeverNegative(t *testing.T) {
	values := valuesFrom([][]int32{{5, 5}})
	regions := labels.Label(values, labels.Connect4)
	dist, err := sdf.Run(values, regions, palette.IdentityForest(), sdf.DistanceParams{})
	if err != nil {
		t.Fatalf("sdf.Run: %v", err)
	}
	res, err := Interpolate(values, regions, dist, linearPalette(), palette.IdentityForest())
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for _, v := range res.Output {
		if v < 0 {
			t.Fatalf("output must never be negative, got %v", v)
		}
	}
}

func TestInterpolateFollowsNonContiguousAdjacencyForest(t *testing.T) {
	// prev_color[200] = 50 and next_color[200] = 9, so the region of value
	// 200 must find its boundaries at the 50 and 9 cells and blend
	// palette[200] toward palette[9], not use its raw numeric neighbors
	// 199/201.
	values := valuesFrom([][]int32{
		{50, 200, 9},
	})
	regions := labels.Label(values, labels.Connect4)
	forest := palette.IdentityForest()
	forest[200] = 50 // prev_color[200] = 50
	forest[9] = 200  // prev_color[9] = 200, so next_color[200] = 9
	dist, err := sdf.Run(values, regions, forest, sdf.DistanceParams{})
	if err != nil {
		t.Fatalf("sdf.Run: %v", err)
	}
	res, err := Interpolate(values, regions, dist, linearPalette(), forest)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	idx := res.at(1, 0)
	if res.T[idx] < 0.49 || res.T[idx] > 0.51 {
		t.Fatalf("t = %v, want ~0.5", res.T[idx])
	}
	// lowerValue = pal[200] = 200, higherValue = pal[next_color[200]] = pal[9] = 9.
	if res.Output[idx] < 104 || res.Output[idx] > 105 {
		t.Fatalf("output = %v, want ~104.5", res.Output[idx])
	}
}

func TestInterpolateShapeMismatch(t *testing.T) {
	values := valuesFrom([][]int32{{1, 2}})
	regions := labels.Label(values, labels.Connect4)
	dist := &sdf.Result{Width: 3, Height: 3, Cells: make([]sdf.Cell, 9)}
	if _, err := Interpolate(values, regions, dist, linearPalette(), palette.IdentityForest()); err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}
