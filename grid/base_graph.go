package grid

import (
	"math"

	"github.com/agungprasetyosakti/ahastar/search"
)

// baseEdge is one 8-connected level-0 edge. Clearance is stored per
// capability class rather than computed on demand, since edge_clearance
// is looked up on every relaxed edge during search.
type baseEdge struct {
	from, to   TileID
	diagonal   bool
	clearances map[Capability]uint16
}

// BaseGraph is the level-0 graph: one node per non-obstacle tile, an
// undirected 8-connected edge between every pair of adjacent
// non-obstacle tiles regardless of terrain match (base graph invariant
// in the data model — terrain filtering is deferred to search time).
// Grounded on AnnotatedMapAbstraction::addMissingEdges, which explicitly
// adds edges HOG's default abstraction would have omitted.
type BaseGraph struct {
	m       *Map
	tiles   map[TileID]*Tile
	clear   *ClearanceTable
	edges   []baseEdge
	adjacency map[TileID][]search.EdgeID
}

var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// NewBaseGraph implements build(map): constructs the level-0 graph and
// fills the clearance table for every given capability class.
func NewBaseGraph(m *Map, classes []Capability) *BaseGraph {
	g := &BaseGraph{
		m:         m,
		tiles:     make(map[TileID]*Tile),
		adjacency: make(map[TileID][]search.EdgeID),
	}
	g.clear = BuildClearanceTable(m, classes)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.At(x, y)
			if t == Obstacle {
				continue
			}
			id := m.TileID(x, y)
			g.tiles[id] = &Tile{X: int32(x), Y: int32(y), Terrain: t, Parent: NoParent}
		}
	}

	// Emit each undirected edge once: only look at the 4 "forward"
	// neighbours (east, south, southeast, southwest) to avoid duplicates.
	forward := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) == Obstacle {
				continue
			}
			fromID := m.TileID(x, y)
			for _, off := range forward {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || ny < 0 || nx >= m.Width || ny >= m.Height {
					continue
				}
				if m.At(nx, ny) == Obstacle {
					continue
				}
				toID := m.TileID(nx, ny)
				diagonal := off[0] != 0 && off[1] != 0
				cls := make(map[Capability]uint16, len(classes))
				for _, c := range classes {
					cf := g.clear.Clearance(fromID, c)
					ct := g.clear.Clearance(toID, c)
					if cf < ct {
						cls[c] = cf
					} else {
						cls[c] = ct
					}
				}
				e := baseEdge{from: fromID, to: toID, diagonal: diagonal, clearances: cls}
				eid := search.EdgeID(len(g.edges))
				g.edges = append(g.edges, e)
				g.adjacency[fromID] = append(g.adjacency[fromID], eid)
				g.adjacency[toID] = append(g.adjacency[toID], eid)
			}
		}
	}
	return g
}

// Tile returns the tile at id, or nil if id names an obstacle or
// out-of-range cell.
func (g *BaseGraph) Tile(id TileID) *Tile { return g.tiles[id] }

// Map returns the underlying terrain grid.
func (g *BaseGraph) Map() *Map { return g.m }

// Clearances exposes the computed clearance table (e.g. for the
// entrance builder's transition-point scan).
func (g *BaseGraph) Clearances() *ClearanceTable { return g.clear }

// EdgeClearance implements edge_clearance(e, C) = min(clearance[e.from,C], clearance[e.to,C]).
func (g *BaseGraph) EdgeClearance(e search.EdgeID, c Capability) uint16 {
	return g.edges[e].clearances[c]
}

// --- search.Graph implementation ---

func (g *BaseGraph) Neighbors(n search.NodeID) []search.EdgeID {
	return g.adjacency[TileID(n)]
}

func (g *BaseGraph) Endpoints(e search.EdgeID) (search.NodeID, search.NodeID) {
	edge := g.edges[e]
	return search.NodeID(edge.from), search.NodeID(edge.to)
}

func (g *BaseGraph) Weight(e search.EdgeID) float64 {
	if g.edges[e].diagonal {
		return math.Sqrt2
	}
	return 1.0
}

func (g *BaseGraph) Coord(n search.NodeID) search.Coord {
	id := TileID(n)
	return search.Coord{X: id.X(g.m.Width), Y: id.Y(g.m.Width)}
}

var _ search.Graph = (*BaseGraph)(nil)

// CapabilityClearanceFilter builds an EdgeFilter admitting edge e iff
// e.clearance(C) >= k — the evaluation predicate from the query engine
// design, specialised to the base graph.
func (g *BaseGraph) CapabilityClearanceFilter(c Capability, k uint16) search.EdgeFilter {
	return func(e search.EdgeID, _, _ search.NodeID) bool {
		return g.EdgeClearance(e, c) >= k
	}
}
