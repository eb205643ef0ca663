// Package palette holds the quantized-palette data model shared by
// pkg/sdf and pkg/quantize: the dequantization lookup table and the
// prev_color adjacency forest that actually defines which palette index
// is a given index's "lower" neighbour.
//
// Grounded on gradient-mapping/src/commands/interp_quantized.{h,cpp}'s
// prev_color[256]/next_color[256] tables and iq_Initialize's inversion of
// one into the other.
package palette

// Palette maps a quantized palette index (0..255) to the dequantized
// scalar value it represents.
type Palette [256]float64

// NoParent marks a palette index with no designated neighbour in a
// Forest (the bottom of a ladder, or an index never assigned one).
const NoParent int32 = -1

// Forest is spec §3's prev_color[256]: an arbitrary forest mapping a
// palette index to the index immediately "below" it. It need not be
// contiguous — Forest[200] = 50 is valid and means index 200's lower
// neighbour is index 50, not 199. Indices with no lower neighbour are
// NoParent.
type Forest [256]int32

// IdentityForest returns the trivial forest where every index's lower
// neighbour is the index immediately below it (Forest[v] = v-1, and
// Forest[0] = NoParent). This is the degenerate contiguous-palette case
// and is used as a default when no adjacency data is supplied.
func IdentityForest() Forest {
	var f Forest
	f[0] = NoParent
	for v := 1; v < len(f); v++ {
		f[v] = int32(v - 1)
	}
	return f
}

// Next derives next_color by inverting this forest: Next()[v] is the
// smallest index w such that f[w] == v, i.e. the designated "higher"
// neighbour of v under this same adjacency relation. Indices nothing
// points to map to NoParent.
func (f Forest) Next() Forest {
	var next Forest
	for i := range next {
		next[i] = NoParent
	}
	for w := 0; w < len(f); w++ {
		p := f[w]
		if p < 0 || int(p) >= len(f) {
			continue
		}
		if next[p] == NoParent || int32(w) < next[p] {
			next[p] = int32(w)
		}
	}
	return next
}

// Chase walks the forest from start, hops times, following f[v] at each
// step. It returns false if any step runs off the forest (an out-of-range
// index or a NoParent parent before hops is exhausted), meaning start has
// no ancestor that many levels up.
func (f Forest) Chase(start int32, hops int) (int32, bool) {
	v := start
	for i := 0; i < hops; i++ {
		if v < 0 || int(v) >= len(f) {
			return 0, false
		}
		nv := f[v]
		if nv < 0 {
			return 0, false
		}
		v = nv
	}
	return v, true
}
