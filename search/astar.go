package search

import (
	"container/heap"
	"time"
)

// Result is the outcome of a single AStar call.
type Result struct {
	Nodes []NodeID
	Edges []EdgeID
	Cost  float64
	Found bool
	Stats Stats
}

// AStar runs A* over g from start to goal, relaxing only edges that pass
// filter. It is used unmodified for both the level-0 base graph and the
// level-1 abstract graph — the caller supplies the heuristic-relevant
// coordinates through g.Coord and the admissibility rules through
// filter. Pass AllowAll when no restriction applies.
func AStar(g Graph, start, goal NodeID, filter EdgeFilter) Result {
	t0 := time.Now()
	if start == NoNode || goal == NoNode {
		return Result{Stats: Stats{SearchTime: time.Since(t0)}}
	}
	if start == goal {
		return Result{Nodes: []NodeID{start}, Found: true, Stats: Stats{NodesTouched: 1, SearchTime: time.Since(t0)}}
	}

	expected := 64
	ar := acquireArena(expected)
	defer releaseArena(expected, ar)

	byID := make(map[NodeID]*node, expected)
	open := make(openHeap, 0, expected)

	goalCoord := g.Coord(goal)

	get := func(id NodeID) *node {
		if n, ok := byID[id]; ok {
			return n
		}
		n := ar.alloc()
		n.id = id
		n.g = infinity
		n.f = infinity
		n.parent = NoEdge
		n.prevID = NoNode
		n.openIdx = -1
		byID[id] = n
		return n
	}

	var stats Stats

	s := get(start)
	s.g = 0
	s.f = Octile(g.Coord(start), goalCoord)
	heap.Push(&open, s)
	stats.NodesTouched++

	for open.Len() > 0 {
		cur := heap.Pop(&open).(*node)
		if cur.closed {
			continue
		}
		cur.closed = true
		stats.NodesExpanded++

		if cur.id == goal {
			nodes, edges, cost := reconstruct(byID, cur)
			stats.SearchTime = time.Since(t0)
			return Result{Nodes: nodes, Edges: edges, Cost: cost, Found: true, Stats: stats}
		}

		for _, e := range g.Neighbors(cur.id) {
			from, to := g.Endpoints(e)
			nbrID := to
			if from != cur.id {
				nbrID = from
			}
			if !filter(e, cur.id, nbrID) {
				continue
			}
			nbr := get(nbrID)
			if nbr.closed {
				continue
			}
			tentative := cur.g + g.Weight(e)
			if tentative >= nbr.g {
				continue
			}
			firstSeen := nbr.g == infinity
			nbr.g = tentative
			nbr.f = tentative + Octile(g.Coord(nbrID), goalCoord)
			nbr.parent = e
			nbr.prevID = cur.id
			if firstSeen {
				heap.Push(&open, nbr)
				stats.NodesTouched++
			} else if nbr.openIdx >= 0 {
				heap.Fix(&open, nbr.openIdx)
			} else {
				heap.Push(&open, nbr)
			}
		}
	}

	stats.SearchTime = time.Since(t0)
	return Result{Found: false, Stats: stats}
}

const infinity = 1e18

func reconstruct(byID map[NodeID]*node, goal *node) ([]NodeID, []EdgeID, float64) {
	cost := goal.g
	var nodes []NodeID
	var edges []EdgeID
	for n := goal; ; {
		nodes = append(nodes, n.id)
		if n.parent == NoEdge {
			break
		}
		edges = append(edges, n.parent)
		n = byID[n.prevID]
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return nodes, edges, cost
}
