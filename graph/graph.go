// Package graph provides a mutable directed labeled multigraph.
//
// Each edge connects an ordered pair of nodes and carries a set of labels, so
// two nodes may be connected by multiple parallel edges that are told apart by
// their label. Nodes are unique by value equality. Labels must be ordered, as
// they are enumerated in their natural order.
package graph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrNotFound is returned when a referenced node or edge is not in the graph.
	ErrNotFound = errors.New("not found in graph")

	// ErrDuplicateEdge is returned when an edge with the same parent, child and
	// label already exists.
	ErrDuplicateEdge = errors.New("edge already exists")
)

// Graph is a mutable directed labeled multigraph.
// It is not safe for concurrent use.
type Graph[N comparable, L constraints.Ordered] struct {
	nodes map[N]struct{}
	// edges maps a parent node to its children, and each child to the set of
	// labels on the parent->child edge. A present label set is never empty.
	edges map[N]map[N]map[L]struct{}
}

// New returns a new empty Graph.
func New[N comparable, L constraints.Ordered]() *Graph[N, L] {
	return &Graph[N, L]{
		nodes: make(map[N]struct{}),
		edges: make(map[N]map[N]map[L]struct{}),
	}
}

// NewWithNode returns a new Graph seeded with a single node.
func NewWithNode[N comparable, L constraints.Ordered](node N) *Graph[N, L] {
	g := New[N, L]()
	g.AddNode(node)
	return g
}

// Size returns the number of nodes in the graph.
func (g *Graph[N, L]) Size() int {
	return len(g.nodes)
}

// AddNode adds the given node to the graph and reports whether it was newly
// added. Adding an existing node is a no-op.
func (g *Graph[N, L]) AddNode(node N) (added bool) {
	if _, ok := g.nodes[node]; ok {
		return false
	}
	g.nodes[node] = struct{}{}
	g.checkIntegrity()
	return true
}

// NodeExists reports whether the given node is in the graph.
func (g *Graph[N, L]) NodeExists(node N) bool {
	_, ok := g.nodes[node]
	return ok
}

// DeleteNode removes the given node together with all its incident edges, in
// both directions. It returns ErrNotFound if the node is not in the graph.
func (g *Graph[N, L]) DeleteNode(node N) error {
	if !g.NodeExists(node) {
		return fmt.Errorf("delete node: %w", ErrNotFound)
	}
	delete(g.nodes, node)

	// Remove all outgoing edges.
	delete(g.edges, node)
	// Remove all incoming edges, cleaning up parents left without children.
	for parent, children := range g.edges {
		delete(children, node)
		if len(children) == 0 {
			delete(g.edges, parent)
		}
	}

	g.checkIntegrity()
	return nil
}

// EdgeExists reports whether an edge from parent to child with the given
// label is in the graph.
func (g *Graph[N, L]) EdgeExists(parent, child N, label L) bool {
	_, ok := g.edges[parent][child][label]
	return ok
}

// AddEdge adds an edge from parent to child with the given label.
// It returns ErrNotFound if either endpoint is not in the graph and
// ErrDuplicateEdge if the exact edge already exists.
func (g *Graph[N, L]) AddEdge(parent, child N, label L) error {
	if !g.NodeExists(parent) {
		return fmt.Errorf("add edge: parent %v: %w", parent, ErrNotFound)
	}
	if !g.NodeExists(child) {
		return fmt.Errorf("add edge: child %v: %w", child, ErrNotFound)
	}
	if g.EdgeExists(parent, child, label) {
		return fmt.Errorf("add edge %v -> %v (%v): %w", parent, child, label, ErrDuplicateEdge)
	}

	children, ok := g.edges[parent]
	if !ok {
		children = make(map[N]map[L]struct{})
		g.edges[parent] = children
	}
	labels, ok := children[child]
	if !ok {
		labels = make(map[L]struct{})
		children[child] = labels
	}
	labels[label] = struct{}{}

	g.checkIntegrity()
	return nil
}

// DeleteEdge removes the edge from parent to child with the given label.
// When the last label of an edge is removed, the edge entry is removed as
// well, as is the parent entry if it is left without children.
// It returns ErrNotFound if either endpoint or the edge itself is not in the
// graph.
func (g *Graph[N, L]) DeleteEdge(parent, child N, label L) error {
	if !g.NodeExists(parent) {
		return fmt.Errorf("delete edge: parent %v: %w", parent, ErrNotFound)
	}
	if !g.NodeExists(child) {
		return fmt.Errorf("delete edge: child %v: %w", child, ErrNotFound)
	}
	if !g.EdgeExists(parent, child, label) {
		return fmt.Errorf("delete edge %v -> %v (%v): %w", parent, child, label, ErrNotFound)
	}

	labels := g.edges[parent][child]
	delete(labels, label)
	if len(labels) == 0 {
		delete(g.edges[parent], child)
		if len(g.edges[parent]) == 0 {
			delete(g.edges, parent)
		}
	}

	g.checkIntegrity()
	return nil
}

// Labels returns the labels on the edge from parent to child in ascending
// order. It returns an empty slice if there is no such edge. The returned
// slice is a copy and may be modified by the caller.
func (g *Graph[N, L]) Labels(parent, child N) []L {
	labels := maps.Keys(g.edges[parent][child])
	slices.Sort(labels)
	return labels
}

// Nodes returns a copy of all nodes in the graph in no particular order.
func (g *Graph[N, L]) Nodes() []N {
	return maps.Keys(g.nodes)
}

// Children returns all nodes the given parent has an outgoing edge to, in no
// particular order. It returns an empty slice if the parent has no outgoing
// edges, whether or not the parent itself is in the graph.
func (g *Graph[N, L]) Children(parent N) []N {
	return maps.Keys(g.edges[parent])
}
