// Package navigator answers shortest-route queries over the campus map.
//
// It holds the generic shortest-path search and the Map facade that connects
// building names and locations to the walkway graph.
package navigator

import (
	"fmt"
	"strings"
)

// Step is a single hop of a Path, holding the node reached and the cost of
// reaching it from the previous node.
type Step[N comparable] struct {
	Node N
	Cost float64
}

// Path is a walk through a graph, starting at a fixed node.
// A Path is immutable once built, Extend returns a new Path.
// It always contains at least its start node.
type Path[N comparable] struct {
	steps []Step[N]
	cost  float64
}

// NewPath returns a zero-cost Path containing only the given start node.
func NewPath[N comparable](start N) *Path[N] {
	return &Path[N]{
		steps: []Step[N]{{Node: start}},
	}
}

// Extend returns a new Path with the given node appended and the given cost
// added to the total. The receiver is left untouched.
func (p *Path[N]) Extend(node N, cost float64) *Path[N] {
	steps := make([]Step[N], len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	return &Path[N]{
		steps: append(steps, Step[N]{Node: node, Cost: cost}),
		cost:  p.cost + cost,
	}
}

// Start returns the first node of the Path.
func (p *Path[N]) Start() N {
	return p.steps[0].Node
}

// End returns the last node of the Path.
func (p *Path[N]) End() N {
	return p.steps[len(p.steps)-1].Node
}

// Cost returns the total cost of the Path.
func (p *Path[N]) Cost() float64 {
	return p.cost
}

// Len returns the number of nodes in the Path, including the start node.
func (p *Path[N]) Len() int {
	return len(p.steps)
}

// Steps returns a copy of all steps of the Path. The first step is the start
// node with a cost of zero.
func (p *Path[N]) Steps() []Step[N] {
	steps := make([]Step[N], len(p.steps))
	copy(steps, p.steps)
	return steps
}

func (p *Path[N]) String() string {
	b := &strings.Builder{}
	for i, step := range p.steps {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(b, "%v", step.Node)
	}
	fmt.Fprintf(b, " (%.1f)", p.cost)
	return b.String()
}
