package nquery

import (
	"sort"

	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/setfunc"
	"github.com/katalvlaran/vcdim/vecset"
)

// Oracle answers left-neighbourhood membership queries over a fixed
// degeneracy-ordered graph (spec.md §4.3). The zero value is not usable;
// construct with New.
type Oracle struct {
	r            *setfunc.SetFunc
	maxQuerySize int
	graph        *degraph.DegenGraph
	log          applog.Logger
}

// New returns an Oracle over graph with an empty subset-sum table. No
// query of nonzero size is answerable until EnsureSize/
// EnsureSizeRestricted has been called.
func New(graph *degraph.DegenGraph) *Oracle {
	return &Oracle{r: setfunc.New(), graph: graph, log: applog.Noop()}
}

// WithLogger attaches a progress logger, mirroring the original
// implementation's println! progress notes (spec.md §1.1 ambient stack).
func (o *Oracle) WithLogger(log applog.Logger) *Oracle {
	o.log = log

	return o
}

// EnsureSize extends R, if necessary, to answer queries about candidate
// sets of size up to size, drawn from the full vertex set.
func (o *Oracle) EnsureSize(size int) {
	o.EnsureSizeRestricted(size, o.graph.Vertices())
}

// EnsureSizeRestricted extends R, if necessary, to answer queries about
// candidate sets of size up to size, drawn only from candidates
// (spec.md §4.6's shatter/cover-candidate restriction).
func (o *Oracle) EnsureSizeRestricted(size int, candidates []degraph.Vertex) {
	if size <= o.maxQuerySize {
		return
	}

	o.log.Info("recomputing R for query size %d", size)

	inCandidates := make(map[degraph.Vertex]struct{}, len(candidates))
	for _, v := range candidates {
		inCandidates[v] = struct{}{}
	}

	for s := o.maxQuerySize + 1; s <= size; s++ {
		for _, u := range o.graph.Vertices() {
			left := o.graph.LeftNeighbours(u)
			n := left[:0:0]
			for _, x := range left {
				if _, ok := inCandidates[x]; ok {
					n = append(n, x)
				}
			}
			sort.Slice(n, func(i, j int) bool { return n[i] < n[j] })

			for _, subset := range combinationsOfSize(n, s) {
				o.r.Add(subset, 1)
			}
		}
	}

	o.maxQuerySize = size
}

// queryUncor computes the "uncorrected" count: the number of vertices
// whose left-neighbourhood, restricted to S, equals X, obtained by
// inclusion-exclusion over the superset counts R[X ∪ Y] for Y ⊆ S\X
// (spec.md §4.4 step 1). It returns 0 for X = ∅.
func (o *Oracle) queryUncor(x, s []degraph.Vertex) int32 {
	if len(x) == 0 {
		return 0
	}

	sMinusX := vecset.Difference(s, x)

	var res int32
	for _, subset := range powerset(sMinusX) {
		y := vecset.Union(x, subset)
		if len(subset)%2 == 0 {
			res += o.r.Get(y)
		} else {
			res -= o.r.Get(y)
		}
	}

	return res
}

// leftNeighbourSet returns the sorted union of LeftNeighbours(u) over
// every u in s.
func (o *Oracle) leftNeighbourSet(s []degraph.Vertex) []degraph.Vertex {
	var res []degraph.Vertex
	for _, u := range s {
		res = vecset.Union(res, o.graph.LeftNeighbours(u))
	}

	return res
}

// Prepare builds I, the SmallSetFunc mapping every subset X of S to the
// exact count of vertices u with N(u) ∩ S = X, where N(u) is u's full
// neighbourhood (spec.md §4.4). S need not be sorted or deduplicated; Prepare canonicalizes it.
// Panics (via ErrQueryTooLarge-carrying message) if |S| exceeds the size
// ensured by EnsureSize/EnsureSizeRestricted.
func (o *Oracle) Prepare(s []degraph.Vertex) *setfunc.SmallSetFunc {
	sorted := append([]degraph.Vertex(nil), s...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	dedup := sorted[:0:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			dedup = append(dedup, v)
		}
	}
	sorted = dedup

	if len(sorted) > o.maxQuerySize {
		panic(ErrQueryTooLarge)
	}

	i := setfunc.New(sorted)

	var resSum int32
	for _, subset := range powerset(sorted) {
		v := o.queryUncor(subset, sorted)
		resSum += v
		i.Set(subset, v)
	}

	// The empty set's exact count cannot be derived from queryUncor (it
	// always returns 0 for X=∅); every vertex not accounted for by a
	// nonempty subset has left-neighbourhood-restricted-to-S equal to ∅.
	i.Set(nil, int32(o.graph.NumVertices())-resSum)

	for _, v := range o.leftNeighbourSet(sorted) {
		neighbours := append([]degraph.Vertex(nil), o.graph.Neighbours(v)...)
		sort.Slice(neighbours, func(a, b int) bool { return neighbours[a] < neighbours[b] })
		left := o.graph.LeftNeighbours(v)

		nLeft := vecset.Intersection(sorted, left)
		right := vecset.Difference(neighbours, left)
		nRight := vecset.Intersection(sorted, right)
		n := vecset.Union(nLeft, nRight)

		i.Add(nLeft, -1)
		i.Add(n, 1)
	}

	return i
}

// IsShattered reports whether S is shattered by the graph's
// neighbourhoods: every one of its 2^|S| subsets is realized by some
// vertex's neighbourhood restricted to S (spec.md §4.4).
func (o *Oracle) IsShattered(s []degraph.Vertex) bool {
	i := o.Prepare(s)

	return i.CountNonzero() == 1<<uint(i.Size())
}

// ContainsLadder reports whether S admits a ladder ordering (spec.md
// §4.4, delegating to SmallSetFunc.IsLadder over the prepared I).
func (o *Oracle) ContainsLadder(s []degraph.Vertex) bool {
	return o.Prepare(s).IsLadder()
}

// ContainsCrown reports whether S admits a crown (spec.md §4.4,
// delegating to SmallSetFunc.ContainsCrown over the prepared I).
func (o *Oracle) ContainsCrown(s []degraph.Vertex) bool {
	return o.Prepare(s).ContainsCrown()
}

// ContainsBiclique reports whether S admits a biclique witness (spec.md
// §4.4, delegating to SmallSetFunc.ContainsBiclique over the prepared I).
func (o *Oracle) ContainsBiclique(s []degraph.Vertex) bool {
	return o.Prepare(s).ContainsBiclique()
}

// DegreeProfile returns the degrees of v's neighbours, sorted in
// descending order (spec.md §4.5's degree-profile dominance pruning).
func (o *Oracle) DegreeProfile(v degraph.Vertex) []int {
	neighbours := o.graph.Neighbours(v)
	degrees := make([]int, len(neighbours))
	for idx, u := range neighbours {
		degrees[idx] = o.graph.Degree(u)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	return degrees
}

// powerset enumerates every subset of xs (order unspecified beyond being
// deterministic for a fixed input), used internally by queryUncor/Prepare
// to mirror itertools::powerset.
func powerset(xs []degraph.Vertex) [][]degraph.Vertex {
	res := [][]degraph.Vertex{{}}
	for _, x := range xs {
		n := len(res)
		for i := 0; i < n; i++ {
			next := append(append([]degraph.Vertex(nil), res[i]...), x)
			res = append(res, next)
		}
	}

	return res
}

// combinationsOfSize enumerates every size-k subset of data (data assumed
// sorted and deduplicated already), in lexicographic order.
func combinationsOfSize(data []degraph.Vertex, k int) [][]degraph.Vertex {
	n := len(data)
	if k < 0 || k > n {
		return nil
	}

	var res [][]degraph.Vertex
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]degraph.Vertex, k)
		for i, ix := range idx {
			combo[i] = data[ix]
		}
		res = append(res, combo)

		pos := k - 1
		for pos >= 0 && idx[pos] == n-k+pos {
			pos--
		}
		if pos < 0 {
			break
		}
		idx[pos]++
		for j := pos + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return res
}
