// Package bfs implements breadth-first search over a graph.Graph,
// producing unweighted shortest-path distances, parent links, and visit
// order.
package bfs

import (
	"context"
	"fmt"

	"github.com/veltaran/algokit/graph"
	"github.com/veltaran/algokit/queue"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	g     *graph.Graph
	opts  Options
	ctx   context.Context
	queue *queue.Queue[int]
	seen  []bool
	res   *Result
}

// Run performs breadth-first search on g from src, applying any number of
// functional Options. Returns graph.ErrGraphNil, ErrSourceRange,
// ErrOptionViolation, the context's error on cancellation, or a wrapped
// OnVisit error; otherwise the filled Result.
//
// Complexity: O(V + E) time, O(V) memory.
func Run(g *graph.Graph, src int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %d", ErrSourceRange, src)
	}

	n := g.VertexCount()
	q, err := queue.New[int](queue.WithMinCount[int](n))
	if err != nil {
		return nil, err
	}
	defer q.Close()

	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: q,
		seen:  make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Dist[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	w.enqueue(src, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d via parent and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.seen[v] = true
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.queue.Push(v)
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, ok := w.queue.Pop()
		if !ok {
			return nil
		}
		depth := w.res.Dist[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if err := w.expand(v, depth); err != nil {
			return err
		}
	}
}

// expand enqueues v's unseen neighbors, honoring filtering and MaxDepth.
func (w *walker) expand(v, depth int) error {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.g.Neighbors(v)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if !w.opts.FilterNeighbor(v, e.To) {
			continue
		}
		if !w.seen[e.To] {
			w.enqueue(e.To, next, v)
		}
	}

	return nil
}
