package labels

import (
	"testing"

	"github.com/Fepozopo/erosion/pkg/raster"
)

func gridFrom(rows [][]int32) *raster.LabelGrid {
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

func TestLabelSplitsDisconnectedSameValueRegions(t *testing.T) {
	src := gridFrom([][]int32{
		{1, 1, 0, 1, 1},
	})
	res := Label(src, Connect4)
	if res.NumRegions != 3 {
		t.Fatalf("num regions = %d, want 3", res.NumRegions)
	}
	if res.Labels.At(0, 0) != res.Labels.At(1, 0) {
		t.Fatalf("cells 0,0 and 1,0 should share a label")
	}
	if res.Labels.At(0, 0) == res.Labels.At(3, 0) {
		t.Fatalf("cells 0,0 and 3,0 must not share a label (disconnected by the 0 cell)")
	}
}

func TestLabelDiagonalRequiresConnect8(t *testing.T) {
	src := gridFrom([][]int32{
		{1, 0},
		{0, 1},
	})
	res4 := Label(src, Connect4)
	if res4.Labels.At(0, 0) == res4.Labels.At(1, 1) {
		t.Fatalf("4-connectivity must not merge diagonal neighbors")
	}
	res8 := Label(src, Connect8)
	if res8.Labels.At(0, 0) != res8.Labels.At(1, 1) {
		t.Fatalf("8-connectivity must merge diagonal same-value neighbors")
	}
}

func TestLabelPreservesTransparentSentinel(t *testing.T) {
	src := gridFrom([][]int32{{-1, 5}})
	res := Label(src, Connect4)
	if res.Labels.At(0, 0) != -1 {
		t.Fatalf("transparent source cell must remain -1, got %d", res.Labels.At(0, 0))
	}
	if res.Labels.At(1, 0) != 0 {
		t.Fatalf("first real region should be labelled 0, got %d", res.Labels.At(1, 0))
	}
}
