package abstractgraph

import (
	"math"

	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/search"
)

// Graph is the level-1 arena: abstract nodes, abstract edges and their
// path cache, keyed by stable ids the arena itself hands out — mirrors
// the teacher's columnStore.Intern/nextID convention in
// world_store.go, generalised from a content-addressed arena (dedup by
// hash) to an append-only one (abstract nodes are never deduplicated,
// only reused when a tile already owns one).
type Graph struct {
	tiles  *grid.BaseGraph
	nodes  []Node
	edges  []Edge
	byTile map[grid.TileID]NodeID
	adj    map[NodeID][]EdgeID
	byCluster map[ClusterID][]NodeID
	cache  *Cache
}

// NewGraph creates an empty abstract graph over the given base graph.
func NewGraph(base *grid.BaseGraph) *Graph {
	return &Graph{
		tiles:     base,
		byTile:    make(map[grid.TileID]NodeID),
		adj:       make(map[NodeID][]EdgeID),
		byCluster: make(map[ClusterID][]NodeID),
		cache:     newCache(),
	}
}

// Cache exposes the path cache for the entrance builder and the
// hierarchical query engine.
func (g *Graph) Cache() *Cache { return g.cache }

// Base returns the underlying level-0 graph.
func (g *Graph) Base() *grid.BaseGraph { return g.tiles }

// NodeCount and EdgeCount back the idempotence property tests. They
// count live nodes and edges only: slots that RemoveNode/RemoveEdge
// leave behind in the uncompacted arenas are not counted.
func (g *Graph) NodeCount() int { return len(g.byTile) }
func (g *Graph) EdgeCount() int {
	n := 0
	for _, ids := range g.adj {
		n += len(ids)
	}
	return n / 2 // every live edge sits in both endpoints' lists
}

// Node returns the node record for id.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// Edge returns the edge record for id.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// NodeAt returns the abstract node id backing tile, or NoNode.
func (g *Graph) NodeAt(tile grid.TileID) NodeID {
	id, ok := g.byTile[tile]
	if !ok {
		return NoNode
	}
	return id
}

// ClusterNodes returns the abstract nodes currently owned by cluster k.
func (g *Graph) ClusterNodes(k ClusterID) []NodeID {
	return g.byCluster[k]
}

// IncidentInterCapabilities returns the deduplicated set of capability
// classes carried by n's incident Inter edges — the "capability C
// present on their incident inter-edges" set §4.3 scopes the
// intra-edge build to.
func (g *Graph) IncidentInterCapabilities(n NodeID) []grid.Capability {
	seen := make(map[grid.Capability]bool)
	var out []grid.Capability
	for _, eid := range g.adj[n] {
		e := g.edges[eid]
		if e.Kind != Inter || seen[e.Capability] {
			continue
		}
		seen[e.Capability] = true
		out = append(out, e.Capability)
	}
	return out
}

// AddNode allocates a new abstract node for tile in cluster k and
// records tile.parent = new id on the caller-owned tile object. Returns
// (existing id, false) without allocating if tile already has a node —
// the caller (surgeon) uses the created flag to decide whether a
// transient node must be journaled for later removal.
func (g *Graph) AddNode(tile *grid.Tile, tileID grid.TileID, k ClusterID) (NodeID, bool) {
	if existing, ok := g.byTile[tileID]; ok {
		return existing, false
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Tile: tileID, Cluster: k})
	g.byTile[tileID] = id
	g.byCluster[k] = append(g.byCluster[k], id)
	tile.Parent = int32(id)
	return id, true
}

// RemoveNode deletes node id, undoing AddNode exactly: clears the
// tile->node lookup, strips it from its cluster's owned list, and
// resets the caller-owned tile's Parent back to NoParent. It does not
// compact the node arena — abstract edges index into it by value, and
// node ids must remain stable across the lifetime of the graph; a
// removed node's slot is simply left unreferenced until GC.
func (g *Graph) RemoveNode(id NodeID, tile *grid.Tile) {
	n := g.nodes[id]
	delete(g.byTile, n.Tile)
	list := g.byCluster[n.Cluster]
	for i, nid := range list {
		if nid == id {
			g.byCluster[n.Cluster] = append(list[:i], list[i+1:]...)
			break
		}
	}
	tile.Parent = grid.NoParent
}

// AddEdge allocates a new edge and wires it into both endpoints'
// adjacency lists. The caller is responsible for installing the
// matching cache entry.
func (g *Graph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], id)
	g.adj[e.To] = append(g.adj[e.To], id)
	return id
}

// RemoveEdge deletes edge id from both endpoints' adjacency lists and
// its cache entry. Like RemoveNode, it does not compact the edge arena.
func (g *Graph) RemoveEdge(id EdgeID) {
	e := g.edges[id]
	g.adj[e.From] = removeEdgeID(g.adj[e.From], id)
	g.adj[e.To] = removeEdgeID(g.adj[e.To], id)
	g.cache.Delete(id)
}

func removeEdgeID(list []EdgeID, id EdgeID) []EdgeID {
	for i, e := range list {
		if e == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// --- search.Graph implementation ---

func (g *Graph) Neighbors(n search.NodeID) []search.EdgeID {
	ids := g.adj[NodeID(n)]
	out := make([]search.EdgeID, len(ids))
	for i, e := range ids {
		out[i] = search.EdgeID(e)
	}
	return out
}

func (g *Graph) Endpoints(e search.EdgeID) (search.NodeID, search.NodeID) {
	edge := g.edges[e]
	return search.NodeID(edge.From), search.NodeID(edge.To)
}

func (g *Graph) Weight(e search.EdgeID) float64 {
	return g.edges[e].Weight
}

// Coord returns the originating tile's coordinate, overriding any
// base-class assumption that abstract nodes lack tile coordinates — the
// octile heuristic needs it to run over the abstract graph exactly as
// it runs over the base graph.
func (g *Graph) Coord(n search.NodeID) search.Coord {
	node := g.nodes[n]
	w := g.tiles.Map().Width
	return search.Coord{X: node.Tile.X(w), Y: node.Tile.Y(w)}
}

var _ search.Graph = (*Graph)(nil)

// CapabilityClearanceFilter admits edge e iff the query capability c
// covers every terrain bit the edge's own capability class needed (e's
// capability is a subset of c) and e.clearance(C) >= k.
func (g *Graph) CapabilityClearanceFilter(c grid.Capability, k uint16) search.EdgeFilter {
	return func(e search.EdgeID, _, _ search.NodeID) bool {
		edge := g.edges[e]
		return edge.Capability&c == edge.Capability && edge.Clearance >= k
	}
}

// EdgeLength is a small helper the entrance builder uses when it needs
// the euclidean length of a straight intra/inter segment rather than a
// routed A* cost.
func EdgeLength(a, b grid.TileID, w int) float64 {
	dx := float64(a.X(w) - b.X(w))
	dy := float64(a.Y(w) - b.Y(w))
	return math.Hypot(dx, dy)
}
