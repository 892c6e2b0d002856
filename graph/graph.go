// Package graph implements an adjacency-list graph over vertices indexed
// 0..n-1, the representation every algorithm package in this module
// consumes.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrGraphNil is returned by algorithms when a nil graph is passed;
	// defined here so every consumer shares one identity.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrBadVertexCount is returned by New for a negative vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexRange is returned when a vertex index is outside [0, n).
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrBadWeight is returned for a non-zero weight on an unweighted
	// graph, or a zero/negative-capable weight misuse by consumers.
	ErrBadWeight = errors.New("graph: non-zero weight on unweighted graph")

	// ErrLoop is returned for a self-loop; the algorithms in this module
	// have no use for them, so the representation rejects them outright.
	ErrLoop = errors.New("graph: self-loops not allowed")
)

// Edge is one directed half-edge u→v as seen from u's adjacency list.
// On an undirected graph every AddEdge records two mirrored half-edges.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge weight; always 0 on unweighted graphs.
	Weight int64
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithDirected makes AddEdge record u→v only, instead of both directions.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// Graph is a fixed-vertex-set adjacency-list graph. Vertices are the
// integers [0, VertexCount()); edges are added one at a time and kept in
// insertion order, which makes every traversal in this module
// deterministic. Not safe for concurrent mutation.
type Graph struct {
	directed bool
	weighted bool
	adj      [][]Edge
	edges    int
}

// New constructs a graph with n isolated vertices.
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// VertexCount returns n, the size of the vertex set.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int { return g.edges }

// Directed reports whether AddEdge records one direction only.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// HasVertex reports whether u is inside the vertex set.
func (g *Graph) HasVertex(u int) bool { return u >= 0 && u < len(g.adj) }

// AddEdge connects u and v with weight w. On an undirected graph the edge
// is visible from both endpoints. Parallel edges are permitted; consumers
// that care pick the lightest on their own.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %d", ErrVertexRange, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d", ErrVertexRange, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoop, u)
	}
	if !g.weighted && w != 0 {
		return fmt.Errorf("%w: weight %d on edge %d-%d", ErrBadWeight, w, u, v)
	}
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: w})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	}
	g.edges++

	return nil
}

// Neighbors returns u's outgoing half-edges in insertion order. The slice
// is owned by the graph; callers must not modify it.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: %d", ErrVertexRange, u)
	}

	return g.adj[u], nil
}

// Degree returns the number of half-edges leaving u.
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("%w: %d", ErrVertexRange, u)
	}

	return len(g.adj[u]), nil
}
