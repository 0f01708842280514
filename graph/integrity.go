package graph

import (
	"fmt"

	"github.com/tevino/abool"
)

// integrityChecks controls whether the structural invariant is verified after
// every mutation. This is meant for tests and development builds, not for
// production hot paths.
var integrityChecks = abool.New()

// EnableIntegrityChecks toggles invariant verification after mutations.
// A detected violation panics, as it always indicates a bug in this package.
func EnableIntegrityChecks(enable bool) {
	integrityChecks.SetTo(enable)
}

// checkIntegrity verifies that every node referenced by the edge map is in
// the node set and that no present label set is empty.
func (g *Graph[N, L]) checkIntegrity() {
	if !integrityChecks.IsSet() {
		return
	}

	for parent, children := range g.edges {
		if _, ok := g.nodes[parent]; !ok {
			panic(fmt.Sprintf("graph: edge parent %v is not a node", parent))
		}
		if len(children) == 0 {
			panic(fmt.Sprintf("graph: node %v has an empty children entry", parent))
		}
		for child, labels := range children {
			if _, ok := g.nodes[child]; !ok {
				panic(fmt.Sprintf("graph: edge child %v is not a node", child))
			}
			if len(labels) == 0 {
				panic(fmt.Sprintf("graph: edge %v -> %v has no labels", parent, child))
			}
		}
	}
}
