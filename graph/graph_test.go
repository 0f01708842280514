package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	EnableIntegrityChecks(true)
	m.Run()
}

func TestAddNode(t *testing.T) {
	g := New[string, float64]()
	assert.Equal(t, 0, g.Size())

	assert.True(t, g.AddNode("a"))
	assert.True(t, g.NodeExists("a"))
	assert.Equal(t, 1, g.Size())

	// Adding again is a no-op.
	assert.False(t, g.AddNode("a"))
	assert.Equal(t, 1, g.Size())

	assert.True(t, g.AddNode("b"))
	assert.Equal(t, 2, g.Size())
	assert.False(t, g.NodeExists("c"))
}

func TestNewWithNode(t *testing.T) {
	g := NewWithNode[string, float64]("seed")
	assert.Equal(t, 1, g.Size())
	assert.True(t, g.NodeExists("seed"))
}

func TestAddEdge(t *testing.T) {
	g := New[string, float64]()
	g.AddNode("a")
	g.AddNode("b")

	// Endpoints must exist.
	err := g.AddEdge("a", "x", 1)
	assert.ErrorIs(t, err, ErrNotFound)
	err = g.AddEdge("x", "b", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, g.AddEdge("a", "b", 1))
	assert.True(t, g.EdgeExists("a", "b", 1))
	assert.False(t, g.EdgeExists("b", "a", 1))
	assert.False(t, g.EdgeExists("a", "b", 2))

	// The exact triple may only exist once.
	err = g.AddEdge("a", "b", 1)
	assert.ErrorIs(t, err, ErrDuplicateEdge)

	// A parallel edge with a different label is fine.
	require.NoError(t, g.AddEdge("a", "b", 2))
	assert.True(t, g.EdgeExists("a", "b", 2))

	// A self edge is fine too.
	require.NoError(t, g.AddEdge("a", "a", 3))
	assert.True(t, g.EdgeExists("a", "a", 3))
}

func TestDeleteEdge(t *testing.T) {
	g := New[string, float64]()
	g.AddNode("a")
	g.AddNode("b")
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 2))

	err := g.DeleteEdge("a", "x", 1)
	assert.ErrorIs(t, err, ErrNotFound)
	err = g.DeleteEdge("a", "b", 7)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting one label keeps the other.
	require.NoError(t, g.DeleteEdge("a", "b", 1))
	assert.False(t, g.EdgeExists("a", "b", 1))
	assert.True(t, g.EdgeExists("a", "b", 2))
	assert.Equal(t, []string{"b"}, g.Children("a"))

	// Deleting the last label removes the edge entry entirely.
	require.NoError(t, g.DeleteEdge("a", "b", 2))
	assert.Empty(t, g.Children("a"))
	assert.Empty(t, g.Labels("a", "b"))

	// The edge is gone, but the nodes stay.
	assert.True(t, g.NodeExists("a"))
	assert.True(t, g.NodeExists("b"))
	err = g.DeleteEdge("a", "b", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNode(t *testing.T) {
	g := New[string, float64]()
	for _, n := range []string{"a", "b", "c"} {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 2))
	require.NoError(t, g.AddEdge("c", "b", 3))

	err := g.DeleteNode("x")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting b removes its incoming and outgoing edges as well.
	require.NoError(t, g.DeleteNode("b"))
	assert.False(t, g.NodeExists("b"))
	assert.Equal(t, 2, g.Size())
	assert.Empty(t, g.Children("a"))
	assert.Empty(t, g.Children("c"))
	assert.False(t, g.EdgeExists("a", "b", 1))
	assert.False(t, g.EdgeExists("b", "c", 2))
}

func TestLabels(t *testing.T) {
	g := New[string, float64]()
	g.AddNode("a")
	g.AddNode("b")

	// No edge yet.
	assert.Empty(t, g.Labels("a", "b"))
	assert.Empty(t, g.Labels("x", "y"))

	require.NoError(t, g.AddEdge("a", "b", 7))
	require.NoError(t, g.AddEdge("a", "b", 2))
	require.NoError(t, g.AddEdge("a", "b", 5))

	// Labels are returned in ascending order.
	assert.Equal(t, []float64{2, 5, 7}, g.Labels("a", "b"))

	// The returned slice is a copy.
	labels := g.Labels("a", "b")
	labels[0] = 99
	assert.Equal(t, []float64{2, 5, 7}, g.Labels("a", "b"))
}

func TestListCopies(t *testing.T) {
	g := New[string, float64]()
	g.AddNode("a")
	g.AddNode("b")
	require.NoError(t, g.AddEdge("a", "b", 1))

	nodes := g.Nodes()
	assert.ElementsMatch(t, []string{"a", "b"}, nodes)
	nodes[0] = "mutated"
	assert.ElementsMatch(t, []string{"a", "b"}, g.Nodes())

	children := g.Children("a")
	assert.Equal(t, []string{"b"}, children)
	children[0] = "mutated"
	assert.Equal(t, []string{"b"}, g.Children("a"))

	// A valid node without outgoing edges has no children.
	assert.Empty(t, g.Children("b"))
}

func TestErrorIdentity(t *testing.T) {
	g := New[string, float64]()
	g.AddNode("a")

	err := g.AddEdge("a", "missing", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrDuplicateEdge))
}
