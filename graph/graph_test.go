package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapbench/graph"
)

func TestBuilder_EmptyGraphFails(t *testing.T) {
	_, err := graph.NewBuilder().Build()
	require.ErrorIs(t, err, graph.ErrGraphEmpty)
}

func TestBuilder_RejectsNegativeVertex(t *testing.T) {
	b := graph.NewBuilder()
	err := b.AddEdge(-1, 0, 5)
	require.ErrorIs(t, err, graph.ErrNegativeVertex)
}

func TestBuilder_RejectsNegativeWeight(t *testing.T) {
	b := graph.NewBuilder()
	err := b.AddEdge(0, 1, -5)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestBuilder_NodeCountFromHighestVertex(t *testing.T) {
	b := graph.NewBuilder()
	require.NoError(t, b.AddEdge(0, 9, 20))
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 10, g.NodeCount())
}

func TestGraph_NeighborsAndUnknownVertex(t *testing.T) {
	b := graph.NewBuilder()
	require.NoError(t, b.AddEdge(0, 1, 4))
	require.NoError(t, b.AddEdge(0, 2, 1))
	g, err := b.Build()
	require.NoError(t, err)

	edges, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, 2, g.EdgeCount())

	_, err = g.Neighbors(99)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestGraph_TenVertexTopology(t *testing.T) {
	// Verifies the loaded topology matches the edge list used for
	// shortest-path assertions elsewhere.
	edges := []graph.Edge{
		{From: 0, To: 1, Weight: 4}, {From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 2}, {From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 5}, {From: 3, To: 4, Weight: 3},
		{From: 4, To: 5, Weight: 1}, {From: 5, To: 6, Weight: 2},
		{From: 6, To: 7, Weight: 2}, {From: 7, To: 8, Weight: 2},
		{From: 8, To: 9, Weight: 2}, {From: 0, To: 9, Weight: 20},
		{From: 2, To: 5, Weight: 10},
	}
	b := graph.NewBuilder()
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e.From, e.To, e.Weight))
	}
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 10, g.NodeCount())
	require.Equal(t, len(edges), g.EdgeCount())

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, n0, 3)
}
