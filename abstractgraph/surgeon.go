package abstractgraph

import (
	"time"

	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/search"
)

// Geometry is the minimal cluster-shape contract the surgeon needs,
// implemented by package cluster's cluster store. Kept here rather than
// imported to avoid abstractgraph depending on cluster (cluster already
// depends on abstractgraph).
type Geometry interface {
	ClusterAt(x, y int32) ClusterID
	Bounds(k ClusterID) (x0, y0, w, h int32)
}

// Endpoint is a query-time tile reference plus its abstraction level,
// carried explicitly (rather than inferred) so Insert can detect the
// NonZeroAbstractionLevel violation the original implementation guards
// against with a pointer-level check.
type Endpoint struct {
	Tile  grid.TileID
	Level int
}

// InsertStats mirrors the bookkeeping Insert must record per the
// component design: A* node expansions, nodes touched, and wall time
// spent building intra-edges for the newly inserted node(s).
type InsertStats struct {
	NodesExpanded int
	NodesTouched  int
	WallTime      time.Duration
}

type insertJournal struct {
	nodes []NodeID
	edges []EdgeID
}

// Surgeon injects and removes the transient start/goal endpoints a
// single query needs, per the abstract-graph surgeon component. One
// Surgeon instance is scoped to one query; Insert must be followed by
// exactly one Remove before the next Insert (enforced by the caller,
// the hpa.Engine state machine).
type Surgeon struct {
	graph    *Graph
	geometry Geometry
	StartID  NodeID
	GoalID   NodeID
	journal  insertJournal
}

// NewSurgeon returns a surgeon bound to graph and geometry, with no
// transient endpoints installed.
func NewSurgeon(graph *Graph, geometry Geometry) *Surgeon {
	return &Surgeon{graph: graph, geometry: geometry, StartID: NoNode, GoalID: NoNode}
}

func validateEndpoint(g *Graph, ep Endpoint) error {
	if ep.Tile == grid.NoTile {
		return &Error{Kind: NullEndpoint}
	}
	if ep.Level != 0 {
		return &Error{Kind: NonZeroAbstractionLevel}
	}
	if g.tiles.Tile(ep.Tile) == nil {
		return &Error{Kind: NonTraversableEndpoint}
	}
	return nil
}

// Insert implements C6's Insert(start_tile, goal_tile). Validation
// failures leave the abstraction exactly as it was (atomic): both
// endpoints are validated before either is installed.
func (s *Surgeon) Insert(start, goal Endpoint) (InsertStats, error) {
	if err := validateEndpoint(s.graph, start); err != nil {
		return InsertStats{}, err
	}
	if err := validateEndpoint(s.graph, goal); err != nil {
		return InsertStats{}, err
	}

	t0 := time.Now()
	var stats InsertStats

	s.StartID = s.insertEndpoint(start.Tile, &stats)
	s.GoalID = s.insertEndpoint(goal.Tile, &stats)

	stats.WallTime = time.Since(t0)
	return stats, nil
}

func (s *Surgeon) insertEndpoint(tileID grid.TileID, stats *InsertStats) NodeID {
	tile := s.graph.tiles.Tile(tileID)
	k := s.geometry.ClusterAt(tile.X, tile.Y)

	id, created := s.graph.AddNode(tile, tileID, k)
	if !created {
		return NoNode
	}
	s.journal.nodes = append(s.journal.nodes, id)
	s.buildIntraEdges(id, k, stats)
	return id
}

// buildIntraEdges runs the shared intra-edge builder for the newly
// added node a against every other abstract node already in cluster k,
// journaling every edge it creates so Remove can undo them exactly. a
// is a freshly inserted transient endpoint with no incident inter-edges
// of its own to narrow the capability set by, so every annotated class
// is attempted, per §4.4's "each feasible (C,k) combination".
func (s *Surgeon) buildIntraEdges(a NodeID, k ClusterID, stats *InsertStats) {
	x0, y0, w, h := s.geometry.Bounds(k)
	classes := s.graph.tiles.Clearances().Classes()
	for _, b := range s.graph.ClusterNodes(k) {
		if b == a {
			continue
		}
		ids, sub := s.graph.BuildIntraEdges(b, a, x0, y0, w, h, classes)
		stats.NodesExpanded += sub.NodesExpanded
		stats.NodesTouched += sub.NodesTouched
		s.journal.edges = append(s.journal.edges, ids...)
	}
}

func bottleneckClearance(base *grid.BaseGraph, edges []search.EdgeID, c grid.Capability) uint16 {
	var min uint16 = ^uint16(0)
	for _, e := range edges {
		cl := base.EdgeClearance(e, c)
		if cl < min {
			min = cl
		}
	}
	if len(edges) == 0 {
		return 1 // single-tile path (start == goal), trivially clearance 1
	}
	return min
}

func boundsFilter(g *Graph, x0, y0, w, h int32) search.EdgeFilter {
	mapW := g.tiles.Map().Width
	inBounds := func(n search.NodeID) bool {
		id := grid.TileID(n)
		x, y := id.X(mapW), id.Y(mapW)
		return x >= x0 && x < x0+w && y >= y0 && y < y0+h
	}
	return func(_ search.EdgeID, from, to search.NodeID) bool {
		return inBounds(from) && inBounds(to)
	}
}

func combineFilters(a, b search.EdgeFilter) search.EdgeFilter {
	return func(e search.EdgeID, from, to search.NodeID) bool {
		return a(e, from, to) && b(e, from, to)
	}
}

// Remove implements C6's Remove(): a perfect inverse of the most recent
// Insert, using the insert-journal rather than re-deriving what was
// added.
func (s *Surgeon) Remove() {
	for _, eid := range s.journal.edges {
		s.graph.RemoveEdge(eid)
	}
	for _, nid := range s.journal.nodes {
		n := s.graph.Node(nid)
		tile := s.graph.tiles.Tile(n.Tile)
		s.graph.RemoveNode(nid, tile)
	}
	s.journal = insertJournal{}
	s.StartID = NoNode
	s.GoalID = NoNode
}
