// Package prim implements Prim's minimum spanning tree algorithm, grown
// from a root vertex and driven by the indexed min-heap: frontier vertices
// are relaxed in place with Search + Update instead of being re-pushed.
package prim

import (
	"errors"
	"fmt"

	"github.com/veltaran/algokit/graph"
	"github.com/veltaran/algokit/heap"
)

// Sentinel errors for MST computation.
var (
	// ErrInvalidGraph is returned for a directed or unweighted graph.
	ErrInvalidGraph = errors.New("prim: MST requires an undirected, weighted graph")

	// ErrRootRange is returned when the root vertex is outside the graph.
	ErrRootRange = errors.New("prim: root vertex out of range")

	// ErrDisconnected is returned when no spanning tree covers every vertex.
	ErrDisconnected = errors.New("prim: graph is disconnected")
)

// MST computes a minimum spanning tree of an undirected, weighted graph,
// growing outward from root. Returns the n-1 tree edges in the order the
// algorithm adopted them, plus the total weight.
//
// Each frontier vertex has exactly one heap entry, keyed by vertex number
// through a heap.DenseIndex; a cheaper connecting edge decreases that
// entry's key in place. One pop per vertex, one update per improving edge:
// O(E log V) time, O(V) heap memory.
func MST(g *graph.Graph, root int) ([]graph.Edge, int64, error) {
	if g == nil {
		return nil, 0, graph.ErrGraphNil
	}
	if g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %d", ErrRootRange, root)
	}

	n := g.VertexCount()
	if n == 1 {
		return []graph.Edge{}, 0, nil
	}

	idx, err := heap.NewDenseIndex(n)
	if err != nil {
		return nil, 0, err
	}
	frontier, err := heap.New[int64, int](cmpWeight, idx,
		heap.WithMinCount[int](n), heap.WithMaxCount[int](n))
	if err != nil {
		return nil, 0, err
	}
	defer frontier.Close()

	inTree := make([]bool, n)
	via := make([]int, n) // via[v]: tree endpoint of v's cheapest crossing edge
	for v := range via {
		via[v] = -1
	}

	mst := make([]graph.Edge, 0, n-1)
	var total int64

	if err = frontier.Push(0, root); err != nil {
		return nil, 0, err
	}
	for {
		w, u, ok := frontier.Pop()
		if !ok {
			break
		}
		inTree[u] = true
		if via[u] >= 0 {
			mst = append(mst, graph.Edge{From: via[u], To: u, Weight: w})
			total += w
		}

		edges, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, 0, nerr
		}
		for _, e := range edges {
			if inTree[e.To] {
				continue
			}
			cur, seen := frontier.Search(e.To)
			switch {
			case !seen:
				if err = frontier.Push(e.Weight, e.To); err != nil {
					return nil, 0, err
				}
				via[e.To] = u
			case e.Weight < *cur:
				if err = frontier.Update(e.Weight, e.To); err != nil {
					return nil, 0, err
				}
				via[e.To] = u
			}
		}
	}

	if len(mst) != n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// cmpWeight orders frontier entries by crossing-edge weight.
func cmpWeight(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
