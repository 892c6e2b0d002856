// Package algokit is an in-memory toolbox of generic data structures and
// the graph algorithms built on top of them.
//
// What's inside?
//
//	• heap/      — indexed min-heap: O(log n) push/pop plus O(1)-expected
//	               search and O(log n) priority update of any in-heap element
//	               through a pluggable element→slot index
//	• queue/     — generic FIFO ring-buffer queue
//	• mergesort/ — stable parallel merge sort with tunable cutoffs
//	• graph/     — integer-indexed adjacency lists
//	• bfs/       — breadth-first search (distances, parents, visit order)
//	• prim/      — Prim's minimum spanning tree, driven by heap decrease-key
//	• dijkstra/  — single-source shortest paths, same decrease-key drive
//	• tsp/       — exact travelling-salesman solver (Held–Karp)
//
// Why algokit?
//
//   - Minimal, generic APIs — priorities and elements are type parameters,
//     not interface{} casts
//   - Deterministic behavior — reproducible traversal and pop orders
//   - Sentinel errors everywhere — errors.Is friendly, no panics on bad input
//   - Pure Go — no cgo, a single tiny dependency surface
//
// The indexed heap is the centerpiece: unlike container/heap, it keeps an
// injected hash index consistent with the pair array on every structural
// move, so Prim and Dijkstra never scan for the entry they need to relax.
//
//	go get github.com/veltaran/algokit
package algokit
