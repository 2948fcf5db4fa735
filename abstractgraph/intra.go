package abstractgraph

import (
	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/search"
)

// BuildIntraEdges attempts a concrete path between nodes a and b,
// confined to the tile rectangle (x0,y0,w,h), for every capability class
// in classes. Each feasible class installs one intra-edge plus its
// matching cache entry, per §4.3/§4.4: "for each capability C present on
// their incident inter-edges... an intra-edge (u,v) is created with that
// (C,k,cost)". Shared by the entrance builder (classes = the union of
// capabilities on a's and b's incident inter-edges, per §4.3) and the
// surgeon (classes = every annotated capability class, since a freshly
// inserted transient node has no incident inter-edges of its own to
// narrow the set — per §4.4's "each feasible (C,k) combination").
func (g *Graph) BuildIntraEdges(a, b NodeID, x0, y0, w, h int32, classes []grid.Capability) ([]EdgeID, search.Stats) {
	bound := boundsFilter(g, x0, y0, w, h)
	var created []EdgeID
	var stats search.Stats

	for _, c := range classes {
		filter := combineFilters(g.tiles.CapabilityClearanceFilter(c, 1), bound)
		res := search.AStar(g.tiles, search.NodeID(g.nodes[a].Tile), search.NodeID(g.nodes[b].Tile), filter)
		stats.Add(res.Stats)
		if !res.Found {
			continue
		}
		bottleneck := bottleneckClearance(g.tiles, res.Edges, c)
		if bottleneck == 0 {
			continue
		}
		path := make([]grid.TileID, len(res.Nodes))
		for i, n := range res.Nodes {
			path[i] = grid.TileID(n)
		}
		eid := g.AddEdge(Edge{Kind: Intra, From: a, To: b, Weight: res.Cost, Capability: c, Clearance: bottleneck})
		g.cache.Put(eid, path)
		created = append(created, eid)
	}
	return created, stats
}
