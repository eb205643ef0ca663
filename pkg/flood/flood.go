// Package flood implements a pluggable priority-queue flood fill:
// starting from seed cells, it repeatedly evaluates a rule function over
// each unfilled cell's already-filled neighbors and fills the cell with
// the value the rule returns, prioritized by the rule's reported
// distance so the fill always advances from the currently-cheapest
// frontier cell outward (a generalisation of Dijkstra's relaxation step).
//
// Grounded on erosion/src/flood_fill.{h,c}: FFNeighbor, FFRuleContext,
// FFRuleFunc, FFSeed, the FF_CONNECT_4/8 connectivity constants and the
// built-in rules ff_rule_distance/_chamfer/_weighted_avg/_min/_max/_average.
package flood

import (
	"math"

	"github.com/Fepozopo/erosion/pkg/errs"
	"github.com/Fepozopo/erosion/pkg/pqueue"
)

// Connectivity selects which neighbors are visited.
type Connectivity int

const (
	Connect4 Connectivity = 4
	Connect8 Connectivity = 8
)

// Neighbor describes one already-filled neighbor of the cell currently
// being evaluated, mirroring FFNeighbor{value,dx,dy,distance}.
type Neighbor struct {
	Value    float64
	DX, DY   int
	Distance float64
}

// RuleContext is passed to a Rule for each unfilled cell that has at
// least one filled neighbor, mirroring FFRuleContext.
type RuleContext struct {
	X, Y          int
	Width, Height int
	Neighbors     []Neighbor
	UserData      any
}

// Rule computes the fill value and priority (lower pops first) for a
// cell given its filled neighbors. ok=false skips the cell this round
// (mirrors ff_Execute's "!isfinite(value)" rejection).
type Rule func(ctx RuleContext) (value, priority float64, ok bool)

// Seed is a starting cell and its initial value, mirroring FFSeed.
type Seed struct {
	X, Y  int
	Value float64
}

// Result is the filled output grid plus a parallel "filled" mask.
type Result struct {
	Width, Height int
	Values        []float64
	Filled        []bool
}

func (r *Result) at(x, y int) int { return y*r.Width + x }

func (r *Result) At(x, y int) (float64, bool) {
	idx := r.at(x, y)
	return r.Values[idx], r.Filled[idx]
}

func offsets(c Connectivity) [][2]int {
	base := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	if c == Connect8 {
		base = append(base, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, -1})
	}
	return base
}

// Execute runs the flood fill to completion, mirroring ff_Execute: seed,
// then repeatedly pop the lowest-priority unfilled-cell candidate,
// gather its filled neighbors, evaluate rule, and if ok fill it and push
// its own unfilled neighbors as new candidates.
func Execute(width, height int, seeds []Seed, connectivity Connectivity, rule Rule, maxValue float64, userData any) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, errs.InvalidArgument("flood.Execute", errDims)
	}
	res := &Result{Width: width, Height: height, Values: make([]float64, width*height), Filled: make([]bool, width*height)}
	off := offsets(connectivity)

	gatherNeighbors := func(x, y int) []Neighbor {
		var neighbors []Neighbor
		for _, o := range off {
			nx, ny := x+o[0], y+o[1]
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			nIdx := res.at(nx, ny)
			if !res.Filled[nIdx] {
				continue
			}
			d := math.Hypot(float64(o[0]), float64(o[1]))
			neighbors = append(neighbors, Neighbor{Value: res.Values[nIdx], DX: o[0], DY: o[1], Distance: d})
		}
		return neighbors
	}

	evaluate := func(x, y int) (value, priority float64, ok bool) {
		neighbors := gatherNeighbors(x, y)
		if len(neighbors) == 0 {
			return 0, 0, false
		}
		ctx := RuleContext{X: x, Y: y, Width: width, Height: height, Neighbors: neighbors, UserData: userData}
		value, priority, ok = rule(ctx)
		if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, 0, false
		}
		if maxValue > 0 && priority > maxValue {
			return 0, 0, false
		}
		return value, priority, true
	}

	q := pqueue.New(len(seeds) * 4)
	pushUnfilledNeighbors := func(x, y int) {
		for _, o := range off {
			nx, ny := x+o[0], y+o[1]
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			idx := res.at(nx, ny)
			if res.Filled[idx] {
				continue
			}
			_, priority, ok := evaluate(nx, ny)
			if !ok {
				continue
			}
			q.Push(&pqueue.Item{X: nx, Y: ny, Priority: priority})
		}
	}

	for _, s := range seeds {
		if s.X < 0 || s.Y < 0 || s.X >= width || s.Y >= height {
			continue
		}
		idx := res.at(s.X, s.Y)
		res.Values[idx] = s.Value
		res.Filled[idx] = true
		pushUnfilledNeighbors(s.X, s.Y)
	}

	for q.Len() > 0 {
		it := q.Pop()
		idx := res.at(it.X, it.Y)
		if res.Filled[idx] {
			continue
		}
		value, _, ok := evaluate(it.X, it.Y)
		if !ok {
			continue
		}
		res.Values[idx] = value
		res.Filled[idx] = true
		pushUnfilledNeighbors(it.X, it.Y)
	}

	return res, nil
}

var errDims = errDimsErr{}

type errDimsErr struct{}

func (errDimsErr) Error() string { return "width and height must be positive" }
