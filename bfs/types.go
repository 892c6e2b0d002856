// Package bfs provides tunable options, error definitions, and the Result
// type for breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceRange is returned when the source vertex is outside the
	// graph's vertex set.
	ErrSourceRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Unreached marks a vertex the search never visited, in both Dist and
// Parent (the source's Parent is also Unreached).
const Unreached = -1

// Option configures BFS behavior via functional arguments. An invalid
// Option is recorded and surfaced by Run as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks customizing one BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many edges from the
	// source. Zero disables the limit.
	MaxDepth int

	// OnVisit is called when a vertex is dequeued for visiting. A non-nil
	// error aborts the search and is propagated wrapped.
	OnVisit func(v, depth int) error

	// FilterNeighbor can skip individual half-edges by returning false.
	FilterNeighbor func(from, to int) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit, no filtering, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth; 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook run per visited vertex; returning an error
// aborts the search.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips half-edges for which fn returns false.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one BFS run over a graph with n vertices.
type Result struct {
	// Order lists the vertices in visit sequence.
	Order []int

	// Dist[v] is the number of edges on a shortest source→v path, or
	// Unreached.
	Dist []int

	// Parent[v] is v's predecessor on that path, or Unreached for the
	// source and unreached vertices.
	Parent []int
}

// PathTo reconstructs the source→dest vertex sequence, or ErrNoPath when
// dest was never reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Unreached {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Dist[dest]+1)
	for v := dest; v != Unreached; v = r.Parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
