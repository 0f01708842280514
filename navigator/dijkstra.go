package navigator

import (
	"container/heap"

	"github.com/wayfind/campus/graph"
)

// FindShortestPath runs a single-source Dijkstra search from src to dst over
// a graph whose edge labels are non-negative weights. It returns the path of
// minimum total weight, or ok=false if dst is unreachable from src.
//
// When parallel edges connect the same pair of nodes, only the minimum-weight
// label is considered for relaxation. A heavier parallel edge can never be
// part of a cheaper path, so this choice loses no routes.
//
// Both endpoints must be nodes of the graph, validating that is up to the
// caller. The search itself never fails: an unknown src simply yields an
// empty frontier and so reports no path.
func FindShortestPath[N comparable](g *graph.Graph[N, float64], src, dst N) (path *Path[N], ok bool) {
	frontier := &pathHeap[N]{NewPath(src)}
	settled := make(map[N]struct{})

	for frontier.Len() > 0 {
		minPath := heap.Pop(frontier).(*Path[N])
		tail := minPath.End()

		// The frontier yields paths in ascending cost order, so the first
		// path reaching dst is minimal. With src == dst this triggers on the
		// very first extraction, returning the zero-cost single-node path.
		if tail == dst {
			return minPath, true
		}
		if _, done := settled[tail]; done {
			continue
		}

		for _, child := range g.Children(tail) {
			if _, done := settled[child]; done {
				continue
			}
			labels := g.Labels(tail, child)
			if len(labels) == 0 {
				continue
			}
			// Labels are sorted ascending, relax with the lightest one.
			heap.Push(frontier, minPath.Extend(child, labels[0]))
		}
		settled[tail] = struct{}{}
	}

	return nil, false
}

// pathHeap is a min-heap of paths, ordered by total cost only. Equal-cost
// paths are yielded in no particular order.
type pathHeap[N comparable] []*Path[N]

func (h pathHeap[N]) Len() int           { return len(h) }
func (h pathHeap[N]) Less(i, j int) bool { return h[i].Cost() < h[j].Cost() }
func (h pathHeap[N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pathHeap[N]) Push(x any) {
	*h = append(*h, x.(*Path[N]))
}

func (h *pathHeap[N]) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return p
}
