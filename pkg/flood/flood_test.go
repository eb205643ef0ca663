package flood

import (
	"testing"

	"github.com/Fepozopo/erosion/pkg/raster"
)

func TestExecuteDistanceRuleFillsOutwardFromSeed(t *testing.T) {
	seeds := []Seed{{X: 2, Y: 2, Value: 1}}
	res, err := Execute(5, 5, seeds, Connect4, RuleDistance, 0, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if _, filled := res.At(x, y); !filled {
				t.Fatalf("cell (%d,%d) was never filled", x, y)
			}
		}
	}
	v, _ := res.At(0, 0)
	if v != 1 {
		t.Fatalf("RuleDistance should propagate the seed value unchanged, got %v", v)
	}
}

func TestExecuteRejectsInvalidDimensions(t *testing.T) {
	if _, err := Execute(0, 5, nil, Connect4, RuleDistance, 0, nil); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestRuleMinMaxAverage(t *testing.T) {
	ctx := RuleContext{Neighbors: []Neighbor{{Value: 2, Distance: 1}, {Value: 6, Distance: 2}}}
	if v, _, _ := RuleMin(ctx); v != 2 {
		t.Fatalf("RuleMin = %v, want 2", v)
	}
	if v, _, _ := RuleMax(ctx); v != 6 {
		t.Fatalf("RuleMax = %v, want 6", v)
	}
	if v, _, _ := RuleAverage(ctx); v != 4 {
		t.Fatalf("RuleAverage = %v, want 4", v)
	}
}

func TestChamferDistanceZeroAtBoundary(t *testing.T) {
	values := raster.NewLabelGrid(3, 1)
	values.Set(0, 0, 1)
	values.Set(1, 0, 1)
	values.Set(2, 0, 2)
	out := ChamferDistance(values)
	if out.At(1, 0) != 0 {
		t.Fatalf("cell adjacent to a different value should be 0, got %v", out.At(1, 0))
	}
	if out.At(0, 0) <= 0 {
		t.Fatalf("cell two steps from the boundary should be > 0, got %v", out.At(0, 0))
	}
}
