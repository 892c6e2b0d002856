// Package prim computes minimum spanning trees with Prim's algorithm.
//
// What
//
//   - MST(g, root) grows a spanning tree outward from root over an
//     undirected, weighted graph.Graph, returning the tree edges in
//     adoption order and their total weight.
//
// Why this formulation
//
//	The frontier is a heap.Heap keyed by vertex through heap.DenseIndex:
//	every vertex outside the tree holds at most one heap entry carrying
//	its cheapest known crossing edge. A better edge decreases that entry's
//	key in place (heap.Search + heap.Update) rather than pushing a
//	duplicate, so the heap never exceeds V entries and pops are never
//	stale — the lazy-deletion filtering of container/heap-based Prim
//	disappears entirely.
//
// Complexity (V = vertices, E = edges)
//
//   - Time: O(E log V); Memory: O(V)
//
// Determinism
//
//	Ties between equal-weight crossing edges resolve by heap sibling
//	order, which is fixed for a given edge insertion order, so the edge
//	list returned is reproducible run to run.
//
// Errors
//
//   - graph.ErrGraphNil, ErrInvalidGraph (directed or unweighted),
//     ErrRootRange, ErrDisconnected.
package prim
