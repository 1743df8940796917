package setfunc

// IsLadder reports whether the support of f admits a "ladder": an
// ordering s_1,...,s_k of the universe such that, for every prefix length
// j, the suffix {s_j,...,s_k} is realized (I[suffix] > 0). Recursion
// descends the bitmask one element at a time, trying every element as the
// next one to strip off the front of the current suffix (spec.md §4.4).
func (f *SmallSetFunc) IsLadder() bool {
	n := f.Size()
	if n == 0 {
		return true
	}
	if f.CountNonzero() < n {
		return false
	}

	return f.isLadderRec(full(n), n)
}

func (f *SmallSetFunc) isLadderRec(bitset bitset128, size int) bool {
	if size == 1 {
		return f.values[bitset] > 0
	}
	if f.values[bitset] <= 0 {
		return false
	}

	it := bitset
	for !it.isZero() {
		ix := it.lowestBit()
		it = it.clearBit(ix)
		if f.isLadderRec(bitset.clearBit(ix), size-1) {
			return true
		}
	}

	return false
}

// ContainsCrown reports whether the support of f admits a crown: a
// recursive head/crown-vertex pairing of the universe in which every pair
// (h, p) is certified by a witness vertex whose S-restricted neighborhood
// is exactly the current candidate set minus p — i.e., some vertex sees h
// (and whatever heads remain unpaired) but not p. A universe of fewer than
// two elements never contains a crown (spec.md §4.4, domain definition
// recorded in DESIGN.md).
func (f *SmallSetFunc) ContainsCrown() bool {
	n := f.Size()
	if n < 2 {
		return false
	}

	return f.crownRec(full(n), n)
}

func (f *SmallSetFunc) crownRec(bitset bitset128, size int) bool {
	if size == 0 {
		return true
	}
	if size == 1 {
		return f.values[bitset] > 0
	}

	heads := bitset
	for !heads.isZero() {
		head := heads.lowestBit()
		heads = heads.clearBit(head)

		partners := bitset.clearBit(head)
		it := partners
		for !it.isZero() {
			partner := it.lowestBit()
			it = it.clearBit(partner)

			candidate := bitset.clearBit(partner)
			if f.values[candidate] > 0 && f.crownRec(partners.clearBit(partner), size-2) {
				return true
			}
		}
	}

	return false
}

// ContainsBiclique reports whether at least one vertex of the underlying
// graph is adjacent to every element of the universe: i.e. I[U] > 0, where
// U is the full-universe key. A nonempty universe S realized this way,
// together with any such witness vertex, forms a complete bipartite
// K_{|S|,1} — the S side is the witness set under test and the single
// external vertex is its match; the search engine (witness.BicliqueEngine)
// drives |S| up to the graph's degeneracy, which is always achievable by
// taking S to be a maximum-left-degree vertex's left-neighborhood and the
// vertex itself as witness (spec.md §4.4, domain definition recorded in
// DESIGN.md).
func (f *SmallSetFunc) ContainsBiclique() bool {
	n := f.Size()
	if n == 0 {
		return false
	}

	return f.values[full(n)] > 0
}
