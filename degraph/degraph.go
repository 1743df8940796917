package degraph

import "sort"

// Vertex identifies a graph vertex. The degeneracy-ordering position of a
// Vertex is implicit in DegenGraph's internal tables, never in the Vertex
// value itself.
type Vertex = uint32

// Edge is an unordered pair of distinct vertices, as read from an edge
// list (spec.md §6).
type Edge struct {
	U, V Vertex
}

// DegenGraph is a frozen, degeneracy-ordered simple undirected graph: for
// every vertex v, its left-neighbours L(v) (those preceding v in the
// ordering) number at most the graph's degeneracy d (spec.md §1, §6).
//
// DegenGraph holds no lock: once Build/BuildWithOrdering returns, every
// field is read-only for the lifetime of the value.
type DegenGraph struct {
	order    []Vertex         // position -> vertex
	posOf    map[Vertex]int   // vertex -> position
	left     map[Vertex][]Vertex
	right    map[Vertex][]Vertex
	full     map[Vertex][]Vertex
	numEdges int
}

// Build stages edges through a catalog, then computes a degeneracy
// ordering by iterated minimum-degree removal (spec.md §6) and freezes the
// result. Returns ErrNoVertices if edges is empty.
func Build(edges []Edge) (*DegenGraph, error) {
	adj, vertices, err := stage(edges)
	if err != nil {
		return nil, err
	}

	order := peelMinDegree(adj, vertices)

	return freeze(adj, order)
}

// BuildWithOrdering stages edges through a catalog as Build does, but
// uses the caller-supplied vertex ordering instead of computing one,
// mirroring the original implementation's DegenGraph::with_ordering (used
// by tests to pin a specific ordering). Every vertex touched by edges must
// appear exactly once in order.
func BuildWithOrdering(edges []Edge, order []Vertex) (*DegenGraph, error) {
	adj, vertices, err := stage(edges)
	if err != nil {
		return nil, err
	}

	if len(order) != len(vertices) {
		return nil, ErrOrderingSizeMismatch
	}
	for _, v := range order {
		if _, ok := adj[v]; !ok {
			return nil, ErrOrderingUnknownVertex
		}
	}

	return freeze(adj, order)
}

// stage adds every vertex and edge referenced by edges into a catalog,
// then reads it back into a plain adjacency map keyed by vertex.
func stage(edges []Edge) (map[Vertex]map[Vertex]struct{}, []Vertex, error) {
	c := newCatalog()

	for _, e := range edges {
		c.addVertex(e.U)
		c.addVertex(e.V)
		c.addEdge(e.U, e.V)
	}

	order := c.vertices()
	if len(order) == 0 {
		return nil, nil, ErrNoVertices
	}

	adj := make(map[Vertex]map[Vertex]struct{}, len(order))
	for _, v := range order {
		adj[v] = c.neighborsOf(v)
	}

	return adj, order, nil
}

// peelMinDegree computes a degeneracy ordering via bucket-queue iterated
// minimum-degree removal. The returned slice lists vertices by ascending
// position: order[0] has no left-neighbours, and each vertex's
// left-neighbour count at its own removal time never exceeds the graph's
// degeneracy.
func peelMinDegree(adj map[Vertex]map[Vertex]struct{}, vertices []Vertex) []Vertex {
	n := len(vertices)
	degree := make(map[Vertex]int, n)
	maxDeg := 0
	for _, v := range vertices {
		d := len(adj[v])
		degree[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}

	buckets := make([][]Vertex, maxDeg+1)
	for _, v := range vertices {
		d := degree[v]
		buckets[d] = append(buckets[d], v)
	}

	removed := make(map[Vertex]bool, n)
	removalOrder := make([]Vertex, 0, n)
	curDeg := 0
	for len(removalOrder) < n {
		if curDeg > maxDeg {
			curDeg = 0

			continue
		}
		bucket := buckets[curDeg]
		if len(bucket) == 0 {
			curDeg++

			continue
		}

		v := bucket[len(bucket)-1]
		buckets[curDeg] = bucket[:len(bucket)-1]
		if removed[v] {
			continue // stale bucket entry from an earlier degree decrement
		}

		removed[v] = true
		removalOrder = append(removalOrder, v)

		for u := range adj[v] {
			if removed[u] {
				continue
			}
			d := degree[u]
			degree[u] = d - 1
			buckets[d-1] = append(buckets[d-1], u)
			if d-1 < curDeg {
				curDeg = d - 1
			}
		}
	}

	// The vertex removed first has the fewest remaining neighbours and so
	// belongs last in the ordering (its surviving neighbours, removed
	// later, must all precede it): reverse the removal sequence.
	order := make([]Vertex, n)
	for i, v := range removalOrder {
		order[n-1-i] = v
	}

	return order
}

// freeze splits each vertex's adjacency into sorted left/right slices
// according to order, and builds the position index.
func freeze(adj map[Vertex]map[Vertex]struct{}, order []Vertex) (*DegenGraph, error) {
	posOf := make(map[Vertex]int, len(order))
	for i, v := range order {
		posOf[v] = i
	}

	left := make(map[Vertex][]Vertex, len(order))
	right := make(map[Vertex][]Vertex, len(order))
	full := make(map[Vertex][]Vertex, len(order))
	numEdges := 0

	for v, neighs := range adj {
		pv := posOf[v]
		for u := range neighs {
			pu, ok := posOf[u]
			if !ok {
				continue
			}
			full[v] = append(full[v], u)
			if pu < pv {
				left[v] = append(left[v], u)
			} else {
				right[v] = append(right[v], u)
			}
			if pv < pu {
				numEdges++
			}
		}
	}

	for v := range adj {
		sortVertices(left[v])
		sortVertices(right[v])
		sortVertices(full[v])
	}

	return &DegenGraph{
		order:    order,
		posOf:    posOf,
		left:     left,
		right:    right,
		full:     full,
		numEdges: numEdges,
	}, nil
}

func sortVertices(s []Vertex) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// Vertices returns every vertex, in ascending degeneracy-ordering position.
func (g *DegenGraph) Vertices() []Vertex {
	return append([]Vertex(nil), g.order...)
}

// NumVertices returns the vertex count.
func (g *DegenGraph) NumVertices() int { return len(g.order) }

// NumEdges returns the edge count.
func (g *DegenGraph) NumEdges() int { return g.numEdges }

// Position returns v's index in the degeneracy ordering and true, or
// (0, false) if v is not part of the graph.
func (g *DegenGraph) Position(v Vertex) (int, bool) {
	p, ok := g.posOf[v]

	return p, ok
}

// Neighbours returns v's full (sorted, deduplicated) neighbourhood.
func (g *DegenGraph) Neighbours(v Vertex) []Vertex {
	return append([]Vertex(nil), g.full[v]...)
}

// LeftNeighbours returns L(v): v's neighbours preceding it in the
// ordering, sorted ascending. Never more than the graph's degeneracy.
func (g *DegenGraph) LeftNeighbours(v Vertex) []Vertex {
	return append([]Vertex(nil), g.left[v]...)
}

// LeftNeighboursSlice is an alias for LeftNeighbours retained for callers
// migrating from the slice-returning accessor name used throughout the
// search engines (spec.md §6 collaborator contract).
func (g *DegenGraph) LeftNeighboursSlice(v Vertex) []Vertex {
	return g.LeftNeighbours(v)
}

// RightNeighbours returns R(v): v's neighbours following it in the
// ordering, sorted ascending.
func (g *DegenGraph) RightNeighbours(v Vertex) []Vertex {
	return append([]Vertex(nil), g.right[v]...)
}

// Degree returns v's total degree |L(v)|+|R(v)|.
func (g *DegenGraph) Degree(v Vertex) int {
	return len(g.full[v])
}

// LeftDegrees returns |L(v)| for every vertex, keyed by vertex.
func (g *DegenGraph) LeftDegrees() map[Vertex]int {
	res := make(map[Vertex]int, len(g.order))
	for _, v := range g.order {
		res[v] = len(g.left[v])
	}

	return res
}

// Degeneracy returns d = max_v |L(v)|, the graph's degeneracy.
func (g *DegenGraph) Degeneracy() int {
	d := 0
	for _, v := range g.order {
		if l := len(g.left[v]); l > d {
			d = l
		}
	}

	return d
}
