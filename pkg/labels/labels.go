// Package labels implements connected-component labelling over an int32
// source grid using union-find with path compression and union by rank,
// grounded on gradient-mapping/src/commands/label_regions.c's two-pass
// UnionFind + label_regions() from the retrieved original source, and on
// katalvlaran-lvlath's gridgraph.ConnectedComponents for the Go idiom of
// exposing a region-grouping result as a plain map/slice rather than a
// pointer-heavy tree.
package labels

import "github.com/Fepozopo/erosion/pkg/raster"

// Connectivity selects which neighbors participate in a component.
type Connectivity int

const (
	Connect4 Connectivity = 4
	Connect8 Connectivity = 8
)

type unionFind struct {
	parent []int32
	rank   []uint8
	next   int32
}

func newUnionFind(capacity int) *unionFind {
	return &unionFind{parent: make([]int32, 0, capacity), rank: make([]uint8, 0, capacity)}
}

// newLabel allocates a fresh singleton set and returns its id.
func (u *unionFind) newLabel() int32 {
	id := u.next
	u.next++
	u.parent = append(u.parent, id)
	u.rank = append(u.rank, 0)
	return id
}

func (u *unionFind) find(x int32) int32 {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// path compression
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}
	return root
}

func (u *unionFind) union(a, b int32) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// Result is the output of Label: a dense label grid (0..NumRegions-1, or
// -1 for source cells that were -1/transparent) and the region count.
type Result struct {
	Labels     *raster.LabelGrid
	NumRegions int
}

// Label performs the two-pass connected-component labelling described in
// label_regions.c: pass one assigns provisional labels to same-value
// neighbors and unions them; pass two remaps provisional labels to a
// dense 0-based range ordered by first appearance.
func Label(src *raster.LabelGrid, connectivity Connectivity) *Result {
	w, h := src.Width, src.Height
	provisional := raster.NewLabelGrid(w, h)
	uf := newUnionFind(w * h)

	neighborOffsets := [][2]int{{-1, 0}, {0, -1}}
	if connectivity == Connect8 {
		neighborOffsets = append(neighborOffsets, [2]int{-1, -1}, [2]int{1, -1})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := src.At(x, y)
			if v < 0 {
				provisional.Set(x, y, -1)
				continue
			}
			var best int32 = -1
			for _, off := range neighborOffsets {
				nx, ny := x+off[0], y+off[1]
				if !src.InBounds(nx, ny) {
					continue
				}
				if src.At(nx, ny) != v {
					continue
				}
				nl := provisional.At(nx, ny)
				if nl < 0 {
					continue
				}
				if best < 0 {
					best = nl
				} else {
					uf.union(best, nl)
				}
			}
			if best < 0 {
				best = uf.newLabel()
			}
			provisional.Set(x, y, best)
		}
	}

	remap := make(map[int32]int32)
	var nextDense int32
	out := raster.NewLabelGrid(w, h)
	for i, p := range provisional.Data {
		if p < 0 {
			out.Data[i] = -1
			continue
		}
		root := uf.find(p)
		dense, ok := remap[root]
		if !ok {
			dense = nextDense
			remap[root] = dense
			nextDense++
		}
		out.Data[i] = dense
	}

	return &Result{Labels: out, NumRegions: int(nextDense)}
}
