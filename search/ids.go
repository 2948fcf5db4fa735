// Package search implements the graph/priority-queue substrate the
// hierarchical planner runs over. It knows nothing about tiles,
// clusters or terrain — only nodes, edges and an admissibility filter
// supplied by the caller — so the same A* runs unmodified over the
// level-0 base graph and the level-1 abstract graph.
package search

// NodeID and EdgeID are stable identifiers into whatever arena the
// caller's Graph implementation owns. They carry no meaning here beyond
// identity.
type NodeID int32

// EdgeID identifies an edge within a Graph.
type EdgeID int32

// NoNode is the sentinel absent-node id, mirrored on NoEdge below.
const NoNode NodeID = -1

// NoEdge is the sentinel absent-edge id.
const NoEdge EdgeID = -1

// Coord is the 2D grid coordinate a node originates from, used only for
// the octile heuristic. Abstract nodes report the coordinate of their
// originating level-0 tile.
type Coord struct {
	X, Y int32
}
