package search

import "container/heap"

// node is a single A* frontier entry. Mirrors the teacher's pathfinding
// node/openHeap pair (container/heap over a *node slice, openIdx tracked
// on the node itself so heap.Fix can be used on decrease-key).
type node struct {
	id      NodeID
	g, f    float64
	parent  EdgeID // edge used to reach this node, NoEdge for start
	prevID  NodeID
	openIdx int
	closed  bool
}

type openHeap []*node

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f == h[j].f {
		return h[i].g > h[j].g // ties broken by larger g: favour progress
	}
	return h[i].f < h[j].f
}
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].openIdx, h[j].openIdx = i, j
}
func (h *openHeap) Push(x any) {
	n := x.(*node)
	n.openIdx = len(*h)
	*h = append(*h, n)
}
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	x.openIdx = -1
	*h = old[:n-1]
	return x
}

var _ heap.Interface = (*openHeap)(nil)
