// Package graph provides the adjacency-list representation shared by the
// traversal and optimization packages in this module (bfs, prim, dijkstra,
// tsp).
//
// What
//
//   - Vertices are the integers [0, n), fixed at construction; edges are
//     appended one at a time.
//   - Directed or undirected (WithDirected), weighted or unweighted
//     (WithWeighted); self-loops are rejected, parallel edges allowed.
//   - Neighbors(u) exposes u's half-edges in insertion order, giving every
//     downstream algorithm a deterministic visit order.
//
// Why integers instead of named vertices?
//
//	Every consumer in this module wants dense per-vertex arrays (distance,
//	parent, visited, heap index). Integer vertices make those arrays direct
//	slices and let the indexed heap use its cheapest index strategy
//	(heap.DenseIndex).
//
// Complexity
//
//   - AddEdge, HasVertex, Degree: O(1); Neighbors: O(1) (shared slice)
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrBadVertexCount, ErrVertexRange, ErrBadWeight, ErrLoop from
//     construction and mutation.
//   - ErrGraphNil is defined here for all consumers to share.
//
// Concurrency: safe for concurrent reads after construction; mutation is
// not synchronized.
package graph
