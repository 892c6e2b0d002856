package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltaran/algokit/graph"
)

func TestNew_Validation(t *testing.T) {
	_, err := graph.New(-1)
	assert.ErrorIs(t, err, graph.ErrBadVertexCount)

	g, err := graph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())

	g, err = graph.New(5, graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 2, 0), graph.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(0, 3, 0), graph.ErrVertexRange)
	assert.ErrorIs(t, g.AddEdge(1, 1, 0), graph.ErrLoop)
	assert.ErrorIs(t, g.AddEdge(0, 1, 7), graph.ErrBadWeight) // unweighted graph
	assert.Equal(t, 0, g.EdgeCount())
}

// TestUndirected_MirroredHalfEdges verifies that one AddEdge is visible
// from both endpoints with a consistent From field.
func TestUndirected_MirroredHalfEdges(t *testing.T) {
	g, err := graph.New(4, graph.WithWeighted())
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 7))
	assert.Equal(t, 2, g.EdgeCount())

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, n0, 1)
	assert.Equal(t, graph.Edge{From: 0, To: 1, Weight: 5}, n0[0])

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, n1, 2)
	assert.Equal(t, graph.Edge{From: 1, To: 0, Weight: 5}, n1[0])
	assert.Equal(t, graph.Edge{From: 1, To: 2, Weight: 7}, n1[1])

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestDirected_OneWay(t *testing.T) {
	g, err := graph.New(3, graph.WithDirected(), graph.WithWeighted())
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 4))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, n0, 1)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, n1)
}

func TestNeighbors_Range(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, graph.ErrVertexRange)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, graph.ErrVertexRange)
}

// TestParallelEdges confirms multi-edges are kept in insertion order.
func TestParallelEdges(t *testing.T) {
	g, err := graph.New(2, graph.WithWeighted())
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 1, 2))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, n0, 2)
	assert.Equal(t, int64(9), n0[0].Weight)
	assert.Equal(t, int64(2), n0[1].Weight)
}
