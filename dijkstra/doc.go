// Package dijkstra computes single-source shortest paths over graphs with
// non-negative edge weights.
//
// What
//
//   - ShortestPaths(g, src) returns per-vertex minimal path weights and
//     predecessor links; Result.PathTo reconstructs any reached route.
//   - Works on directed and undirected weighted graphs alike.
//
// Why this formulation
//
//	Like package prim, the frontier is a heap.Heap keyed by vertex through
//	heap.DenseIndex. Relaxing a frontier vertex decreases its key in place
//	instead of pushing a duplicate entry, so the heap is bounded by V and
//	a popped vertex is settled exactly once — no stale-entry filtering.
//
// Complexity (V = vertices, E = edges)
//
//   - Time: O(E log V); Memory: O(V)
//
// Errors
//
//   - graph.ErrGraphNil, ErrUnweighted, ErrSourceRange.
//   - ErrNegativeWeight as soon as a negative edge is touched (results
//     would be meaningless).
//   - ErrNoPath from Result.PathTo for unreachable vertices.
package dijkstra
