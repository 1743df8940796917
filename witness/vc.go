package witness

import (
	"math"
	"sort"

	"github.com/katalvlaran/vcdim/applog"
	"github.com/katalvlaran/vcdim/degraph"
	"github.com/katalvlaran/vcdim/nquery"
	"github.com/katalvlaran/vcdim/skipcombs"
	"github.com/katalvlaran/vcdim/vecset"
)

// VCEngine searches for the largest shattered set, alternating between
// brute-force enumeration of the candidate set and a cover-enumeration
// strategy, governed only by their two binomial cost estimates (spec.md
// §4.6, §9 "Adaptive mode selection").
type VCEngine struct {
	graph  *degraph.DegenGraph
	oracle *nquery.Oracle
	log    applog.Logger

	d    int
	logD float64

	// coverSizeCeiling bounds how far cover_size may grow (spec.md §4.6
	// step 7); 0 means "use the theoretical default of ⌈log2 d⌉". An
	// operator-supplied override (config.Config.CoverSizeCeiling) can
	// tighten this to bound worst-case runtime on large-degeneracy graphs
	// at the cost of potentially missing a larger shattered set.
	coverSizeCeiling int

	vcDim     int
	coverSize int

	shatterCandidates []degraph.Vertex
	coverCandidates   []degraph.Vertex

	localLowerBound map[degraph.Vertex]uint8
	localUpperBound map[degraph.Vertex]uint8
}

// NewVCEngine constructs a VCEngine over graph, with shatterCandidates
// restricting the initial witness search to shatterCandidates ∩ V (the
// full vertex set, if shatterCandidates is nil) per spec.md §6's optional
// candidates file.
func NewVCEngine(graph *degraph.DegenGraph, shatterCandidates []degraph.Vertex) (*VCEngine, error) {
	if graph.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}

	d := graph.Degeneracy()
	// log2(0) is -Inf; clamp d to 1 for the logarithm so a degeneracy-0
	// graph (no edges) gets logD=0 rather than an unusable -Inf. The
	// outer loop in Run already terminates such graphs in the cover_size
	// == 1 branch, so this only affects the cover_size >= 2 threshold
	// the loop never reaches for d=0.
	logD := math.Log2(math.Max(float64(d), 1))

	allVertices := sortedCopy(graph.Vertices())

	shatter := shatterCandidates
	if shatter == nil {
		shatter = allVertices
	} else {
		shatter = vecset.Intersection(sortedCopy(shatter), allVertices)
	}

	upper := make(map[degraph.Vertex]uint8, len(shatter))
	for _, v := range graph.Vertices() {
		upper[v] = uint8(1 + len(graph.LeftNeighbours(v)))
	}

	e := &VCEngine{
		graph:             graph,
		oracle:            nquery.New(graph),
		log:               applog.Noop(),
		d:                 d,
		logD:              logD,
		vcDim:             1,
		coverSize:         1,
		shatterCandidates: shatter,
		coverCandidates:   append([]degraph.Vertex(nil), shatter...),
		localLowerBound:   make(map[degraph.Vertex]uint8),
		localUpperBound:   upper,
	}

	return e, nil
}

// WithLogger attaches a progress logger, mirroring the original's println!
// progress lines (spec.md §6 "Observable output").
func (e *VCEngine) WithLogger(log applog.Logger) *VCEngine {
	e.log = log
	e.oracle = e.oracle.WithLogger(log)

	return e
}

// WithCoverSizeCeiling overrides the default ⌈log2 d⌉ bound on how far
// cover_size may grow (spec.md §4.6 step 7). ceiling <= 0 restores the
// theoretical default.
func (e *VCEngine) WithCoverSizeCeiling(ceiling int) *VCEngine {
	e.coverSizeCeiling = ceiling

	return e
}

// VCDim returns the largest shattered-set size found so far.
func (e *VCEngine) VCDim() int { return e.vcDim }

// coverSizeLimit returns the effective cover-size ceiling: the operator
// override if set, else ⌈log2 d⌉.
func (e *VCEngine) coverSizeLimit() int {
	if e.coverSizeCeiling > 0 {
		return e.coverSizeCeiling
	}

	return int(math.Ceil(e.logD))
}

// Run executes the outer loop of spec.md §4.6 until no further
// enlargement is found or the theoretical ceiling vcDim <= d+1 is
// exceeded.
func (e *VCEngine) Run() {
	improved := true

	for improved && e.vcDim <= e.d+1 {
		improved = false

		bruteEstimate := binom(len(e.shatterCandidates), e.vcDim+1)
		coverEstimate := binom(len(e.coverCandidates), e.coverSize) * binom(e.coverSize*e.d, e.vcDim+1)

		e.oracle.EnsureSizeRestricted(e.vcDim+1, e.shatterCandidates)

		switch {
		case bruteEstimate < coverEstimate:
			e.log.Info("brute-force: (%d choose %d) candidates", len(e.shatterCandidates), e.vcDim+1)
			improved = e.bruteForceRound(e.shatterCandidates)
			if !improved {
				return // no further improvement possible
			}
		case e.coverSize == 1:
			e.log.Info("covering: %d candidates", len(e.coverCandidates))
			improved = e.coverSizeOneRound()
		default:
			e.log.Info("covering: (%d choose %d) candidates", len(e.coverCandidates), e.coverSize)
			improved = e.coverRound()
		}

		if improved {
			e.log.Info("found larger set, recomputing")
			e.recomputeCandidates()
			if len(e.shatterCandidates) <= e.vcDim {
				return // no further improvement possible
			}
		} else if e.coverSize < e.coverSizeLimit() {
			improved = true
			e.coverSize++
			e.log.Info("no improvement, increasing cover size to %d", e.coverSize)
		}
	}
}

// bruteForceRound enumerates every (vcDim+1)-subset of pool using the
// skippable-combinations iterator, applying the length-3-prefix
// short-circuit. On a shattered find, vcDim is incremented and the round
// reports improvement.
func (e *VCEngine) bruteForceRound(pool []degraph.Vertex) bool {
	it := skipcombs.New(pool, e.vcDim+1)
	for {
		s, ok := it.Next()
		if !ok {
			return false
		}

		if e.oracle.IsShattered(s) {
			e.vcDim++
			e.log.Info("found shattered set of size %d: %v", e.vcDim, s)

			return true
		}

		e.skipDeadPrefix(it, s)
	}
}

// skipDeadPrefix finds the largest k in [2, vcDim-1) such that s's
// k-prefix is shattered and instructs it to skip every remaining
// combination sharing that (k+1)-element prefix (spec.md §4.6 step 3).
func (e *VCEngine) skipDeadPrefix(it *skipcombs.Combinations, s []degraph.Vertex) {
	if e.vcDim+1 <= 3 {
		return
	}

	k := 2
	for k < e.vcDim-1 && e.oracle.IsShattered(s[:k]) {
		k++
	}
	if k < e.vcDim-1 {
		it.SkipPrefix(k)
	}
}

// coverSizeOneRound implements spec.md §4.6 step 4: for each single cover
// vertex c (skipping those whose local upper bound already rules out
// vcDim+1), enumerate (vcDim+1)-subsets of ({c} ∪ L(c)) ∩ shatterCandidates.
func (e *VCEngine) coverSizeOneRound() bool {
	for _, c := range e.coverCandidates {
		if e.localUpperBound[c] <= uint8(e.vcDim) {
			continue
		}

		n := vecset.Union([]degraph.Vertex{c}, e.graph.LeftNeighbours(c))
		n = vecset.Intersection(n, e.shatterCandidates)
		if len(n) <= e.vcDim {
			continue
		}

		if e.bruteForceRound(n) {
			e.localLowerBound[c] = uint8(e.vcDim)

			return true
		}

		// Exhaustively searched c's augmented neighbourhood without
		// success: tighten its upper bound (spec.md §9 "only when the
		// full augmented neighbourhood... has been enumerated").
		if cur, ok := e.localUpperBound[c]; !ok || uint8(e.vcDim) < cur {
			e.localUpperBound[c] = uint8(e.vcDim)
		}
	}

	return false
}

// coverRound implements spec.md §4.6 step 5: enumerate coverSize-subsets
// C of cover_candidates whose local-upper-bound sum exceeds vcDim (after
// filtering by the cover-lemma threshold p), and search (vcDim+1)-subsets
// of C ∪ ⋃ L(C) restricted to shatterCandidates.
func (e *VCEngine) coverRound() bool {
	p := int(math.Ceil(e.logD + 1))
	pool := e.coverCandidates
	if p > 0 && e.vcDim+1 >= p {
		limit := (e.vcDim + 1) / p
		if (e.vcDim+1)%p != 0 {
			limit++
		}
		filtered := make([]degraph.Vertex, 0, len(pool))
		for _, v := range pool {
			if int(e.localUpperBound[v]) >= limit {
				filtered = append(filtered, v)
			}
		}
		pool = filtered
	}

	it := skipcombs.New(pool, e.coverSize)
	for {
		c, ok := it.Next()
		if !ok {
			return false
		}

		jointUpper := 0
		for _, u := range c {
			jointUpper += int(e.localUpperBound[u])
		}
		if jointUpper <= e.vcDim {
			continue
		}

		n := append([]degraph.Vertex(nil), c...)
		for _, u := range c {
			n = vecset.Union(n, e.graph.LeftNeighbours(u))
		}
		n = vecset.Intersection(n, e.shatterCandidates)
		if len(n) <= e.vcDim {
			continue
		}

		if e.bruteForceRound(n) {
			return true
		}
	}
}

// recomputeCandidates implements spec.md §4.6 step 6: retains in
// shatterCandidates only vertices whose degree profile dominates dp(vcDim+1),
// then retains in coverCandidates only vertices seeing at least one
// remaining shatter candidate, tightening localUpperBound along the way.
func (e *VCEngine) recomputeCandidates() {
	profile := degreeProfile(e.vcDim + 1)
	e.log.Info("degree profile is %v", profile)

	retained := e.shatterCandidates[:0:0]
	for _, v := range e.shatterCandidates {
		if dominatesProfile(e.oracle.DegreeProfile(v), profile) {
			retained = append(retained, v)
		}
	}
	e.shatterCandidates = retained
	e.log.Info("found %d out of %d as witness candidates for %d-shattered set",
		len(e.shatterCandidates), e.graph.NumVertices(), e.vcDim)

	shatterSet := make(map[degraph.Vertex]struct{}, len(e.shatterCandidates))
	for _, v := range e.shatterCandidates {
		shatterSet[v] = struct{}{}
	}

	coverRetained := e.coverCandidates[:0:0]
	for _, v := range e.coverCandidates {
		numCands := 0
		for _, u := range e.graph.LeftNeighbours(v) {
			if _, ok := shatterSet[u]; ok {
				numCands++
			}
		}
		if _, ok := shatterSet[v]; ok {
			numCands++
		}

		if cur, ok := e.localUpperBound[v]; !ok || uint8(numCands) < cur {
			e.localUpperBound[v] = uint8(numCands)
		}

		if numCands > 0 {
			coverRetained = append(coverRetained, v)
		}
	}
	e.coverCandidates = coverRetained
	e.log.Info("found %d out of %d as cover candidates for %d-shattered set",
		len(e.coverCandidates), e.graph.NumVertices(), e.vcDim)
}

func sortedCopy(xs []degraph.Vertex) []degraph.Vertex {
	s := append([]degraph.Vertex(nil), xs...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })

	dedup := s[:0:0]
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			dedup = append(dedup, v)
		}
	}

	return dedup
}
