package setfunc

import (
	"fmt"
	"sort"
)

// SmallSetFunc is a sparse, bitmask-indexed map {subset of U -> int32} over
// a fixed universe U of at most 128 vertices (spec.md §4.2). Missing keys
// read as zero.
//
// Indexing with an element outside the universe is a programmer error
// (spec.md §7 "Universe violation") and panics rather than silently
// growing the universe or returning a sentinel.
type SmallSetFunc struct {
	universe []uint32
	indexOf  map[uint32]int
	values   map[bitset128]int32
}

// maxUniverseSize is the hard ceiling on |U| imposed by the 128-bit
// bitmask encoding.
const maxUniverseSize = 128

// New builds a SmallSetFunc over the given universe. The input need not be
// sorted or deduplicated; New sorts and dedups it. Panics if the universe
// exceeds 128 elements.
func New(universe []uint32) *SmallSetFunc {
	u := append([]uint32(nil), universe...)
	sort.Slice(u, func(i, j int) bool { return u[i] < u[j] })

	dedup := u[:0:0]
	for i, v := range u {
		if i == 0 || v != u[i-1] {
			dedup = append(dedup, v)
		}
	}

	if len(dedup) > maxUniverseSize {
		panic(fmt.Sprintf("setfunc: universe size %d exceeds the %d-element bitmask limit", len(dedup), maxUniverseSize))
	}

	idx := make(map[uint32]int, len(dedup))
	for i, v := range dedup {
		idx[v] = i
	}

	return &SmallSetFunc{universe: dedup, indexOf: idx, values: make(map[bitset128]int32)}
}

// Universe returns the (sorted, deduplicated) universe this function was
// built over. The returned slice must not be mutated by the caller.
func (f *SmallSetFunc) Universe() []uint32 { return f.universe }

// Size returns |U|.
func (f *SmallSetFunc) Size() int { return len(f.universe) }

// convertSet encodes a subset of the universe as a bitset128. Panics if any
// element of set is not in the universe (spec.md §7 universe violation).
func (f *SmallSetFunc) convertSet(set []uint32) bitset128 {
	var b bitset128
	for _, x := range set {
		ix, ok := f.indexOf[x]
		if !ok {
			panic(fmt.Sprintf("setfunc: element %d is not in the universe", x))
		}
		b = b.setBit(ix)
	}

	return b
}

// convertBitset decodes a bitset128 back into a sorted []uint32.
func (f *SmallSetFunc) convertBitset(b bitset128) []uint32 {
	res := make([]uint32, 0, b.popcount())
	for !b.isZero() {
		ix := b.lowestBit()
		b = b.clearBit(ix)
		res = append(res, f.universe[ix])
	}

	return res
}

// Get returns the stored value for query, or 0 if absent.
func (f *SmallSetFunc) Get(query []uint32) int32 {
	return f.values[f.convertSet(query)]
}

// Set stores value for query, inserting the key if necessary.
func (f *SmallSetFunc) Set(query []uint32, value int32) {
	f.values[f.convertSet(query)] = value
}

// Add adds delta to the stored value for query (treating an absent key as
// zero), inserting the key if necessary.
func (f *SmallSetFunc) Add(query []uint32, delta int32) {
	f.values[f.convertSet(query)] += delta
}

// CountNonzero returns the number of keys whose stored value is nonzero.
func (f *SmallSetFunc) CountNonzero() int {
	n := 0
	for _, v := range f.values {
		if v != 0 {
			n++
		}
	}

	return n
}

// Entry is a single nonzero (key, value) pair of a SmallSetFunc.
type Entry struct {
	Key   []uint32
	Value int32
}

// EntriesNonzero returns every (key, value) pair with a nonzero value.
// Iteration order is unspecified.
func (f *SmallSetFunc) EntriesNonzero() []Entry {
	res := make([]Entry, 0, len(f.values))
	for bs, v := range f.values {
		if v != 0 {
			res = append(res, Entry{Key: f.convertBitset(bs), Value: v})
		}
	}

	return res
}

// KeysNonzero returns every key with a nonzero value. Iteration order is
// unspecified.
func (f *SmallSetFunc) KeysNonzero() [][]uint32 {
	res := make([][]uint32, 0, len(f.values))
	for bs, v := range f.values {
		if v != 0 {
			res = append(res, f.convertBitset(bs))
		}
	}

	return res
}

// ValuesNonzero returns every nonzero stored value. Iteration order is
// unspecified.
func (f *SmallSetFunc) ValuesNonzero() []int32 {
	res := make([]int32, 0, len(f.values))
	for _, v := range f.values {
		if v != 0 {
			res = append(res, v)
		}
	}

	return res
}

// MobiusTransDown applies the in-place downward subset-sum subtraction of
// spec.md §4.2: for each universe position ix = 0,1,...,|U|-1, and every
// stored key T with bit ix unset, f(T) -= f(T ∪ {ix}). Applied to the
// "uncorrected" left-neighbor counts produced by SetFunc.Subfunc, this
// realizes the zeta-inverse that turns "subset-of" counts into "exactly
// equal to" counts (spec.md §4.4 step 2).
func (f *SmallSetFunc) MobiusTransDown() {
	n := f.Size()
	for ix := 0; ix < n; ix++ {
		// Snapshot the keys that do not contain bit ix before mutating,
		// mirroring the Rust implementation's `active` collection step:
		// mutating the map while iterating it would be unsound.
		var active []bitset128
		for key := range f.values {
			if !key.hasBit(ix) {
				active = append(active, key)
			}
		}

		for _, target := range active {
			source := target.setBit(ix)
			f.values[target] -= f.values[source]
		}
	}
}

// Add2 returns the pointwise sum of f and g, which must share a universe.
func (f *SmallSetFunc) Add2(g *SmallSetFunc) *SmallSetFunc {
	f.assertSameUniverse(g)
	res := New(f.universe)
	for k, v := range f.values {
		res.values[k] += v
	}
	for k, v := range g.values {
		res.values[k] += v
	}

	return res
}

// Sub2 returns the pointwise difference f - g, which must share a universe.
func (f *SmallSetFunc) Sub2(g *SmallSetFunc) *SmallSetFunc {
	f.assertSameUniverse(g)
	res := New(f.universe)
	for k, v := range f.values {
		res.values[k] += v
	}
	for k, v := range g.values {
		res.values[k] -= v
	}

	return res
}

func (f *SmallSetFunc) assertSameUniverse(g *SmallSetFunc) {
	if len(f.universe) != len(g.universe) {
		panic("setfunc: universe mismatch")
	}
	for i, v := range f.universe {
		if g.universe[i] != v {
			panic("setfunc: universe mismatch")
		}
	}
}

// String renders the nonzero support, e.g. "U=[0 1 2] {[0 1]: 3, [2]: -1}".
func (f *SmallSetFunc) String() string {
	s := fmt.Sprintf("U=%v {", f.universe)
	first := true
	for _, e := range f.EntriesNonzero() {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%v: %d", e.Key, e.Value)
	}
	s += "}"

	return s
}
