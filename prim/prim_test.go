package prim_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaran/algokit/graph"
	"github.com/veltaran/algokit/prim"
)

// refEdge is the plain edge record used by the reference Kruskal check.
type refEdge struct {
	u, v int
	w    int64
}

// buildTriangle returns 0-1 (1), 1-2 (2), 0-2 (3); its MST is {0-1, 1-2}
// with total weight 3.
func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(3, graph.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))

	return g
}

func TestMST_Validation(t *testing.T) {
	_, _, err := prim.MST(nil, 0)
	assert.ErrorIs(t, err, graph.ErrGraphNil)

	unweighted, err := graph.New(2)
	require.NoError(t, err)
	_, _, err = prim.MST(unweighted, 0)
	assert.ErrorIs(t, err, prim.ErrInvalidGraph)

	directed, err := graph.New(2, graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, err)
	_, _, err = prim.MST(directed, 0)
	assert.ErrorIs(t, err, prim.ErrInvalidGraph)

	g := buildTriangle(t)
	_, _, err = prim.MST(g, 7)
	assert.ErrorIs(t, err, prim.ErrRootRange)
}

func TestMST_Triangle(t *testing.T) {
	g := buildTriangle(t)

	edges, total, err := prim.MST(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, edges, 2)
	assert.Equal(t, graph.Edge{From: 0, To: 1, Weight: 1}, edges[0])
	assert.Equal(t, graph.Edge{From: 1, To: 2, Weight: 2}, edges[1])
}

func TestMST_SingleVertex(t *testing.T) {
	g, err := graph.New(1, graph.WithWeighted())
	require.NoError(t, err)

	edges, total, err := prim.MST(g, 0)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestMST_Disconnected(t *testing.T) {
	g, err := graph.New(4, graph.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	_, _, err = prim.MST(g, 0)
	assert.ErrorIs(t, err, prim.ErrDisconnected)
}

// TestMST_DecreaseKey builds a graph where the first crossing edge to a
// vertex is expensive and a cheaper one appears later, forcing the in-place
// Update path rather than a fresh push.
func TestMST_DecreaseKey(t *testing.T) {
	//  0 --10-- 2
	//  0 --1--- 1
	//  1 --2--- 2     MST: 0-1 (1), 1-2 (2); the 0-2 (10) entry must be
	//                 relaxed down to 2 while already in the frontier.
	g, err := graph.New(3, graph.WithWeighted())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 10))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	edges, total, err := prim.MST(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, edges, 2)
	assert.Equal(t, graph.Edge{From: 1, To: 2, Weight: 2}, edges[1])
}

// TestMST_MatchesKruskalWeight cross-checks Prim's total weight against an
// independent Kruskal implementation on random connected graphs.
func TestMST_MatchesKruskalWeight(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 2 + r.Intn(40)
		g, err := graph.New(n, graph.WithWeighted())
		require.NoError(t, err)

		var all []refEdge
		// random spanning chain keeps the graph connected
		for i := 1; i < n; i++ {
			w := int64(1 + r.Intn(100))
			require.NoError(t, g.AddEdge(i-1, i, w))
			all = append(all, refEdge{i - 1, i, w})
		}
		for extra := 0; extra < 2*n; extra++ {
			u, v := r.Intn(n), r.Intn(n)
			if u == v {
				continue
			}
			w := int64(1 + r.Intn(100))
			require.NoError(t, g.AddEdge(u, v, w))
			all = append(all, refEdge{u, v, w})
		}

		_, total, err := prim.MST(g, r.Intn(n))
		require.NoError(t, err)

		assert.Equal(t, kruskalWeight(n, all), total, "trial %d (n=%d)", trial, n)
	}
}

// kruskalWeight is a reference MST weight via sort + union-find.
func kruskalWeight(n int, edges []refEdge) int64 {
	for i := 1; i < len(edges); i++ { // insertion sort by weight
		for j := i; j > 0 && edges[j].w < edges[j-1].w; j-- {
			edges[j], edges[j-1] = edges[j-1], edges[j]
		}
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	var total int64
	for _, e := range edges {
		ru, rv := find(e.u), find(e.v)
		if ru != rv {
			parent[ru] = rv
			total += e.w
		}
	}

	return total
}

// BenchmarkMST measures Prim on a random dense-ish graph.
func BenchmarkMST(b *testing.B) {
	const n = 2000
	r := rand.New(rand.NewSource(5))
	g, _ := graph.New(n, graph.WithWeighted())
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i, int64(1+r.Intn(1000)))
	}
	for extra := 0; extra < 8*n; extra++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(u, v, int64(1+r.Intn(1000)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := prim.MST(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// ExampleMST wires a small utility network and prints the cheapest way to
// connect every site.
func ExampleMST() {
	g, _ := graph.New(4, graph.WithWeighted())
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)
	_ = g.AddEdge(1, 3, 5)
	_ = g.AddEdge(2, 3, 8)

	edges, total, err := prim.MST(g, 0)
	if err != nil {
		fmt.Println("mst:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%d-%d (%d)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)
	// Output:
	// 0-2 (1)
	// 2-1 (2)
	// 1-3 (5)
	// total: 8
}
