package sdf

import (
	"testing"

	"github.com/Fepozopo/erosion/pkg/labels"
	"github.com/Fepozopo/erosion/pkg/palette"
	"github.com/Fepozopo/erosion/pkg/raster"
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

func TestRunFindsImmediateNeighborBoundaries(t *testing.T) {
	values := valuesFrom([][]int32{
		{1, 5, 9},
	})
	regions := labels.Label(values, labels.Connect4)
	res, err := Run(values, regions, palette.IdentityForest(), DistanceParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	mid := res.At(1, 0)
	if !mid.HasLower || !mid.HasHigher {
		t.Fatalf("middle cell should find both boundaries, got %+v", mid)
	}
	if mid.DistLower != 1 || mid.DistHigher != 1 {
		t.Fatalf("middle cell distances = (%v,%v), want (1,1)", mid.DistLower, mid.DistHigher)
	}
}

func TestRunMonotonicDistanceWithinRegion(t *testing.T) {
	// Region of 5s spans x=1..4; its only lower boundary (value 1 < 5)
	// sits at x=5, so DistLower must strictly decrease moving toward it.
	values := valuesFrom([][]int32{
		{9, 5, 5, 5, 5, 1},
	})
	regions := labels.Label(values, labels.Connect4)
	res, err := Run(values, regions, palette.IdentityForest(), DistanceParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	prev := res.At(1, 0).DistLower
	for x := 2; x <= 4; x++ {
		cur := res.At(x, 0).DistLower
		if cur > prev {
			t.Fatalf("distance-to-lower should be non-increasing moving toward the boundary, got %v after %v at x=%d", cur, prev, x)
		}
		prev = cur
	}
	if res.At(4, 0).DistLower != 1 {
		t.Fatalf("cell adjacent to the boundary should have DistLower=1, got %v", res.At(4, 0).DistLower)
	}
}

func TestRunFollowsNonContiguousAdjacencyForest(t *testing.T) {
	// prev_color[200] = 50 means a region of value 200 must search for a
	// neighbor with value 50, not 199: a raw ±1-per-hop sweep would never
	// find the boundary placed here.
	values := valuesFrom([][]int32{
		{50, 200, 9},
	})
	regions := labels.Label(values, labels.Connect4)
	forest := palette.IdentityForest()
	forest[200] = 50
	res, err := Run(values, regions, forest, DistanceParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	mid := res.At(1, 0)
	if !mid.HasLower {
		t.Fatalf("middle cell should resolve prev_color[200]=50 via the adjacency forest, got %+v", mid)
	}
	if mid.DistLower != 1 {
		t.Fatalf("DistLower = %v, want 1 (immediate neighbor at x=0)", mid.DistLower)
	}
	if mid.DXLower != -1 || mid.DYLower != 0 {
		t.Fatalf("boundary displacement = (%d,%d), want (-1,0)", mid.DXLower, mid.DYLower)
	}
}

func TestRunRespectsRegionIsolation(t *testing.T) {
	// A region value with no reachable lower/higher boundary (because it
	// spans the whole grid) should never find one and should stop within
	// the iteration cap rather than loop forever.
	values := valuesFrom([][]int32{
		{5, 5, 5},
		{5, 5, 5},
	})
	regions := labels.Label(values, labels.Connect4)
	res, err := Run(values, regions, palette.IdentityForest(), DistanceParams{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.At(0, 0).HasLower || res.At(0, 0).HasHigher {
		t.Fatalf("isolated uniform grid must not report a boundary")
	}
	if res.Iterations > MaxIterations {
		t.Fatalf("iterations %d exceeded safety cap %d", res.Iterations, MaxIterations)
	}
}
