// Package tsp implements an exact travelling-salesman solver: Held–Karp
// dynamic programming over vertex subsets, with a pluggable state table
// (dense array or hash map) in the same spirit as the heap's injected
// element index.
package tsp

import (
	"fmt"
	"math"

	"github.com/veltaran/algokit/graph"
)

// unset marks a state the DP has not reached (all real costs are
// non-negative, so MaxInt64 can double as +infinity).
const unset = int64(math.MaxInt64)

// stateTable stores the DP value cost(mask, j) = cheapest walk that starts
// at the start vertex, visits exactly the subset mask, and ends at j,
// together with j's predecessor for tour reconstruction. The solver is
// agnostic to the storage strategy behind it.
type stateTable interface {
	get(mask uint32, j int) (cost int64, parent int, ok bool)
	put(mask uint32, j int, cost int64, parent int)
}

// denseTable backs the DP with one flat array per field: O(2^n · n)
// memory regardless of how many states are reachable.
type denseTable struct {
	n      int
	cost   []int64
	parent []int32
}

func newDenseTable(n int) *denseTable {
	size := (1 << n) * n
	t := &denseTable{n: n, cost: make([]int64, size), parent: make([]int32, size)}
	for i := range t.cost {
		t.cost[i] = unset
	}

	return t
}

func (t *denseTable) get(mask uint32, j int) (int64, int, bool) {
	i := int(mask)*t.n + j
	if t.cost[i] == unset {
		return 0, 0, false
	}

	return t.cost[i], int(t.parent[i]), true
}

func (t *denseTable) put(mask uint32, j int, cost int64, parent int) {
	i := int(mask)*t.n + j
	t.cost[i] = cost
	t.parent[i] = int32(parent)
}

// sparseEntry is one hashed DP state value.
type sparseEntry struct {
	cost   int64
	parent int32
}

// sparseTable backs the DP with a map keyed by (mask, endpoint); on sparse
// graphs only reachable states occupy memory.
type sparseTable struct {
	m map[uint64]sparseEntry
}

func newSparseTable() *sparseTable {
	return &sparseTable{m: make(map[uint64]sparseEntry)}
}

// key packs the subset mask and the endpoint; MaxVertices leaves ample
// room for the endpoint bits.
func (t *sparseTable) key(mask uint32, j int) uint64 {
	return uint64(mask)<<8 | uint64(j)
}

func (t *sparseTable) get(mask uint32, j int) (int64, int, bool) {
	e, ok := t.m[t.key(mask, j)]
	if !ok {
		return 0, 0, false
	}

	return e.cost, int(e.parent), true
}

func (t *sparseTable) put(mask uint32, j int, cost int64, parent int) {
	t.m[t.key(mask, j)] = sparseEntry{cost: cost, parent: int32(parent)}
}

// SolveExact finds a minimum-weight Hamiltonian cycle through every vertex
// of a weighted graph, starting and ending at start. Directed graphs are
// honored; on undirected graphs each edge is usable both ways. Parallel
// edges contribute their lightest weight.
//
// Complexity: O(2^V · V^2) time; memory O(2^V · V) dense, O(reachable
// states) with WithSparseStates.
func SolveExact(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, graph.ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweighted
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartRange, start)
	}
	n := g.VertexCount()
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, MaxVertices)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if n == 1 {
		return &Result{Tour: []int{start, start}, Cost: 0}, nil
	}

	dist, err := distanceMatrix(g, start)
	if err != nil {
		return nil, err
	}

	var table stateTable
	if o.SparseStates {
		table = newSparseTable()
	} else {
		table = newDenseTable(n)
	}

	// base: the walk {0} ending at 0 costs nothing (0 is the relabeled start)
	table.put(1, 0, 0, -1)

	full := uint32(1)<<n - 1
	for mask := uint32(1); mask <= full; mask++ {
		if mask&1 == 0 {
			continue // every walk contains the start
		}
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			best, bestParent := unset, -1
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || dist[k][j] == unset {
					continue
				}
				c, _, ok := table.get(prev, k)
				if ok && c+dist[k][j] < best {
					best = c + dist[k][j]
					bestParent = k
				}
			}
			if best != unset {
				table.put(mask, j, best, bestParent)
			}
		}
	}

	// close the cycle back into the start vertex
	bestCost, last := unset, -1
	for j := 1; j < n; j++ {
		if dist[j][0] == unset {
			continue
		}
		c, _, ok := table.get(full, j)
		if ok && c+dist[j][0] < bestCost {
			bestCost = c + dist[j][0]
			last = j
		}
	}
	if last < 0 {
		return nil, ErrNoTour
	}

	return reconstruct(table, full, last, bestCost, start, n)
}

// distanceMatrix collapses the adjacency lists into pairwise minima,
// relabeling vertices so the start vertex becomes 0.
func distanceMatrix(g *graph.Graph, start int) ([][]int64, error) {
	n := g.VertexCount()
	relabel := make([]int, n) // original → DP numbering
	for v := 0; v < n; v++ {
		relabel[v] = v
	}
	relabel[start], relabel[0] = 0, relabel[start]

	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			dist[i][j] = unset
		}
	}
	for v := 0; v < n; v++ {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %d on edge %d-%d", ErrNegativeWeight, e.Weight, e.From, e.To)
			}
			i, j := relabel[e.From], relabel[e.To]
			if e.Weight < dist[i][j] {
				dist[i][j] = e.Weight
			}
		}
	}

	return dist, nil
}

// reconstruct walks the parent chain backwards from the closing vertex and
// maps the DP numbering back to the caller's vertex numbers.
func reconstruct(table stateTable, full uint32, last int, cost int64, start, n int) (*Result, error) {
	unlabel := make([]int, n) // DP numbering → original
	for v := 0; v < n; v++ {
		unlabel[v] = v
	}
	unlabel[0], unlabel[start] = start, unlabel[0]

	seq := make([]int, 0, n+1)
	mask, j := full, last
	for j != -1 {
		seq = append(seq, unlabel[j])
		_, parent, ok := table.get(mask, j)
		if !ok {
			return nil, ErrNoTour
		}
		mask ^= 1 << j
		j = parent
	}
	// seq now runs last..start; reverse and close the cycle
	for i, k := 0, len(seq)-1; i < k; i, k = i+1, k-1 {
		seq[i], seq[k] = seq[k], seq[i]
	}
	seq = append(seq, unlabel[0])

	return &Result{Tour: seq, Cost: cost}, nil
}
