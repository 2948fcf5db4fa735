package search

import "testing"

// lineGraph is a minimal test fixture: nodes are laid out on a line
// 0..n-1, each connected to its immediate neighbour with weight 1.
type lineGraph struct {
	n     int
	edges [][2]NodeID // edge i connects edges[i][0]-edges[i][1]
}

func newLineGraph(n int) *lineGraph {
	lg := &lineGraph{n: n}
	for i := 0; i < n-1; i++ {
		lg.edges = append(lg.edges, [2]NodeID{NodeID(i), NodeID(i + 1)})
	}
	return lg
}

func (lg *lineGraph) Neighbors(n NodeID) []EdgeID {
	var out []EdgeID
	for i, e := range lg.edges {
		if e[0] == n || e[1] == n {
			out = append(out, EdgeID(i))
		}
	}
	return out
}

func (lg *lineGraph) Endpoints(e EdgeID) (NodeID, NodeID) {
	pair := lg.edges[e]
	return pair[0], pair[1]
}

func (lg *lineGraph) Weight(EdgeID) float64 { return 1 }

func (lg *lineGraph) Coord(n NodeID) Coord { return Coord{X: int32(n), Y: 0} }

func TestAStarFindsShortestPathOnLine(t *testing.T) {
	g := newLineGraph(5)
	res := AStar(g, 0, 4, AllowAll)
	if !res.Found {
		t.Fatalf("expected path found")
	}
	if res.Cost != 4 {
		t.Fatalf("expected cost 4, got %v", res.Cost)
	}
	want := []NodeID{0, 1, 2, 3, 4}
	if len(res.Nodes) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %v", len(want), len(res.Nodes), res.Nodes)
	}
	for i, n := range want {
		if res.Nodes[i] != n {
			t.Fatalf("node %d: expected %d, got %d", i, n, res.Nodes[i])
		}
	}
	if len(res.Edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(res.Edges))
	}
}

func TestAStarUnreachableWhenFiltered(t *testing.T) {
	g := newLineGraph(5)
	blockAll := func(EdgeID, NodeID, NodeID) bool { return false }
	res := AStar(g, 0, 4, blockAll)
	if res.Found {
		t.Fatalf("expected no path when all edges filtered out")
	}
}

func TestAStarSameStartAndGoal(t *testing.T) {
	g := newLineGraph(3)
	res := AStar(g, 1, 1, AllowAll)
	if !res.Found || res.Cost != 0 {
		t.Fatalf("expected trivial zero-cost path, got %+v", res)
	}
	if len(res.Nodes) != 1 || res.Nodes[0] != 1 {
		t.Fatalf("expected single-node path [1], got %v", res.Nodes)
	}
}

func TestAStarNullEndpoints(t *testing.T) {
	g := newLineGraph(3)
	res := AStar(g, NoNode, 1, AllowAll)
	if res.Found {
		t.Fatalf("expected no result for null start")
	}
}

func TestOctileHeuristicSymmetric(t *testing.T) {
	a := Coord{X: 0, Y: 0}
	b := Coord{X: 3, Y: 4}
	if Octile(a, b) != Octile(b, a) {
		t.Fatalf("octile heuristic should be symmetric")
	}
	// cardinal-only distance: pure chebyshev degenerates to manhattan-free max
	c := Coord{X: 5, Y: 0}
	if got := Octile(a, c); got != 5 {
		t.Fatalf("expected pure horizontal octile 5, got %v", got)
	}
}
