// Package degraph provides DegenGraph, the frozen, degeneracy-ordered
// graph collaborator that the N-query oracle and witness search engines
// operate over (spec.md §6). It stages vertex and edge insertion through
// a small thread-safe catalog, computes a degeneracy ordering by iterated
// minimum-degree removal, and then freezes the result into plain sorted
// []uint32 adjacency.
//
// Complexity: Build is O(V+E) amortized (a bucket-queue minimum-degree
// peeling pass), plus O(V*d*log d) to sort left/right adjacency lists,
// where d is the graph's degeneracy.
//
// Concurrency: unlike the catalog it is built from, DegenGraph holds no
// mutex and performs no locking once frozen. Spec.md §5 requires the
// core search to be single-threaded and synchronous; catalog's
// synchronization is only needed, and only used, during the staging phase
// in Build, before any DegenGraph value is handed to a caller.
package degraph
