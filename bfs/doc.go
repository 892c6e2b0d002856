// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// What
//
//   - Explores vertices in non-decreasing edge distance from a source.
//   - Returns a Result with:
//   - Order:  visit sequence
//   - Dist:   per-vertex edge count from the source (Unreached = -1)
//   - Parent: per-vertex predecessor in the BFS tree (Unreached = -1)
//   - Result.PathTo reconstructs a shortest path to any reached vertex.
//   - Options: WithContext (cancellation), WithMaxDepth, WithOnVisit
//     (abortable per-vertex hook), WithFilterNeighbor (edge pruning).
//
// Why
//
//   - Unweighted shortest paths in O(V + E); reachability, components,
//     level layering; the traversal backbone for flow-style algorithms.
//
// Determinism
//
//	graph.Neighbors returns half-edges in insertion order and the queue is
//	strictly FIFO, so the visit sequence is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time: O(V + E); Memory: O(V)
//
// Errors
//
//   - graph.ErrGraphNil, ErrSourceRange, ErrOptionViolation.
//   - The context's error when cancelled; wrapped OnVisit errors.
//   - ErrNoPath from Result.PathTo for unreached vertices.
package bfs
