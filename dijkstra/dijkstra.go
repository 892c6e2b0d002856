// Package dijkstra implements single-source shortest paths over
// non-negative edge weights, driven by the indexed min-heap: each frontier
// vertex keeps exactly one heap entry, relaxed in place via decrease-key.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/veltaran/algokit/graph"
	"github.com/veltaran/algokit/heap"
)

// Sentinel errors for shortest-path computation.
var (
	// ErrUnweighted is returned for an unweighted graph; run bfs instead.
	ErrUnweighted = errors.New("dijkstra: graph is unweighted, use bfs")

	// ErrSourceRange is returned when the source vertex is outside the graph.
	ErrSourceRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight is returned when a negative edge is encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrNoPath is returned by Result.PathTo for an unreachable vertex.
	ErrNoPath = errors.New("dijkstra: vertex unreachable")
)

// Unreachable is the Dist value of a vertex no path leads to; Prev uses
// -1 the same way.
const Unreachable int64 = -1

// Result holds the shortest-path tree of one run.
type Result struct {
	// Dist[v] is the minimal total weight of a source→v path, or
	// Unreachable.
	Dist []int64

	// Prev[v] is v's predecessor on that path, -1 for the source and
	// unreachable vertices.
	Prev []int
}

// PathTo reconstructs the source→dest vertex sequence, or ErrNoPath when
// dest is unreachable.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	var path []int
	for v := dest; v != -1; v = r.Prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestPaths computes minimal path weights from src to every reachable
// vertex of a weighted graph (directed or undirected). All edge weights
// must be non-negative.
//
// The frontier heap is keyed by vertex through heap.DenseIndex; a cheaper
// path to a frontier vertex decreases its key in place, so the heap holds
// at most V entries and every pop settles its vertex finally.
//
// Complexity: O(E log V) time, O(V) memory.
func ShortestPaths(g *graph.Graph, src int) (*Result, error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweighted
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %d", ErrSourceRange, src)
	}

	n := g.VertexCount()
	idx, err := heap.NewDenseIndex(n)
	if err != nil {
		return nil, err
	}
	frontier, err := heap.New[int64, int](cmpDist, idx,
		heap.WithMinCount[int](n), heap.WithMaxCount[int](n))
	if err != nil {
		return nil, err
	}
	defer frontier.Close()

	res := &Result{
		Dist: make([]int64, n),
		Prev: make([]int, n),
	}
	settled := make([]bool, n)
	for v := 0; v < n; v++ {
		res.Dist[v] = Unreachable
		res.Prev[v] = -1
	}

	if err = frontier.Push(0, src); err != nil {
		return nil, err
	}
	for {
		d, u, ok := frontier.Pop()
		if !ok {
			break
		}
		settled[u] = true
		res.Dist[u] = d

		edges, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, nerr
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %d on edge %d-%d", ErrNegativeWeight, e.Weight, e.From, e.To)
			}
			if settled[e.To] {
				continue
			}
			cand := d + e.Weight
			cur, seen := frontier.Search(e.To)
			switch {
			case !seen:
				if err = frontier.Push(cand, e.To); err != nil {
					return nil, err
				}
				res.Prev[e.To] = u
			case cand < *cur:
				if err = frontier.Update(cand, e.To); err != nil {
					return nil, err
				}
				res.Prev[e.To] = u
			}
		}
	}

	return res, nil
}

// cmpDist orders frontier entries by accumulated path weight.
func cmpDist(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
