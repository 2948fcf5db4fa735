package search

// Graph is the minimal service contract the hierarchical planner needs
// from whatever concrete graph it is searching (base graph or abstract
// graph). Any implementation satisfying it may be substituted — this is
// the "abstract service" described for the generic graph/priority-queue
// substrate.
type Graph interface {
	// Neighbors returns the edges incident to n.
	Neighbors(n NodeID) []EdgeID
	// Endpoints returns the two nodes an edge connects.
	Endpoints(e EdgeID) (from, to NodeID)
	// Weight returns the concrete cost of traversing an edge.
	Weight(e EdgeID) float64
	// Coord returns the originating tile coordinate of a node, used by
	// the octile heuristic. Every node — including abstract nodes — must
	// report one.
	Coord(n NodeID) Coord
}

// EdgeFilter decides whether an edge may be relaxed during a specific
// search. Capability and clearance are baked into the closure by the
// caller (grid/cluster/hpa code), keeping this package ignorant of
// terrain and clearance types entirely.
type EdgeFilter func(e EdgeID, from, to NodeID) bool

// AllowAll is the trivial filter used when no admissibility restriction
// applies (e.g. plain grid A* at k=1, capability=full-union).
func AllowAll(EdgeID, NodeID, NodeID) bool { return true }
