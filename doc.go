// Package vcdim computes four structural witness parameters of a simple
// undirected graph that is sparse in the bounded-degeneracy sense: the VC
// dimension of its neighborhood set system, its ladder index, its crown
// size, and its biclique number.
//
// For each parameter the system searches for a largest witness set S ⊆ V
// whose restricted neighborhoods exhibit the required pattern (shattered,
// ladder, crown, or biclique). The graph is preprocessed into a
// degeneracy ordering with maximum left-degree d; every search engine
// exploits that ordering to keep an otherwise-exponential search space
// tractable.
//
// The module is organized as:
//
//	vecset/   — sorted-vector set algebra (union/intersection/difference)
//	setfunc/  — SetFunc and SmallSetFunc: the sparse set-function
//	            representations the N-query oracle is built on
//	skipcombs/ — the lexicographic k-combination iterator with prefix
//	            skipping that makes VC search practical past d>20
//	degraph/  — the degeneracy-ordered graph model and its construction
//	ioedge/   — edge-list and vertex-restriction-list loading
//	nquery/   — the N-query oracle: "how many vertices see exactly X?"
//	witness/  — the VC / Ladder / Crown / Biclique search engines
//	applog/   — leveled progress logging shared by nquery and witness
//	config/   — optional vcdim.yaml/environment configuration
//	cmd/vcdim/ — the command-line driver
//
// There is no root-level API: every concern lives in its own package, per
// the layout above; this file exists to give the module a single place to
// document the system end to end.
package vcdim
