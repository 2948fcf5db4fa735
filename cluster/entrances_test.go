package cluster

import (
	"testing"

	"github.com/agungprasetyosakti/ahastar/abstractgraph"
	"github.com/agungprasetyosakti/ahastar/grid"
)

func buildAbstraction(t *testing.T, w, h, size int, quality AbstractionQuality) (*Store, *abstractgraph.Graph) {
	t.Helper()
	m := allGroundMap(w, h)
	base := grid.NewBaseGraph(m, []grid.Capability{grid.Capability(grid.Ground)})
	store := Partition(base, size)
	ag := abstractgraph.NewGraph(base)
	BuildEntrances(store, ag, quality)
	return store, ag
}

func TestBuildEntrancesCacheMatchesEdgeCount(t *testing.T) {
	_, ag := buildAbstraction(t, 10, 10, 5, High)
	if ag.Cache().Len() != ag.EdgeCount() {
		t.Fatalf("expected |cache| == |abstract_edges|, got cache=%d edges=%d", ag.Cache().Len(), ag.EdgeCount())
	}
}

func TestBuildEntrancesProducesNodesAndEdges(t *testing.T) {
	_, ag := buildAbstraction(t, 10, 10, 5, High)
	if ag.NodeCount() == 0 {
		t.Fatalf("expected at least one abstract node for an open 10x10 map partitioned into 4 clusters")
	}
	if ag.EdgeCount() == 0 {
		t.Fatalf("expected at least one abstract edge")
	}
}

func TestDominanceMonotonicity(t *testing.T) {
	_, highAg := buildAbstraction(t, 10, 10, 5, High)
	_, medAg := buildAbstraction(t, 10, 10, 5, Medium)
	_, lowAg := buildAbstraction(t, 10, 10, 5, Low)

	if highAg.EdgeCount() > medAg.EdgeCount() {
		t.Fatalf("expected High edge count (%d) <= Medium edge count (%d)", highAg.EdgeCount(), medAg.EdgeCount())
	}
	if medAg.EdgeCount() > lowAg.EdgeCount() {
		t.Fatalf("expected Medium edge count (%d) <= Low edge count (%d)", medAg.EdgeCount(), lowAg.EdgeCount())
	}
}

func TestSingleClusterMapHasNoInterEdges(t *testing.T) {
	_, ag := buildAbstraction(t, 4, 4, 100, High)
	for i := 0; i < ag.EdgeCount(); i++ {
		if ag.Edge(abstractgraph.EdgeID(i)).Kind == abstractgraph.Inter {
			t.Fatalf("expected no inter-edges when S > map size (single cluster), found one at index %d", i)
		}
	}
}
