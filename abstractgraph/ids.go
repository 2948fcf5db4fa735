// Package abstractgraph implements the level-1 abstract graph: abstract
// nodes representing entrance tiles, inter/intra abstract edges, the
// concrete path cache, and the surgeon that injects/removes transient
// query endpoints. Depends on grid (tile terrain/clearance) and search
// (the A* substrate, used internally by the entrance builder's caller
// to populate intra-edges — though the entrance builder itself lives in
// package cluster, one layer up).
package abstractgraph

import "github.com/agungprasetyosakti/ahastar/grid"

// NodeID identifies an abstract node within a Graph's arena.
type NodeID int32

// NoNode is the sentinel absent-node id, also the value grid.Tile.Parent
// holds when a tile backs no abstract node.
const NoNode NodeID = -1

// EdgeID identifies an abstract edge within a Graph's arena, and doubles
// as the path cache key (every edge installs exactly one cache entry).
type EdgeID int32

// NoEdge is the sentinel absent-edge id.
const NoEdge EdgeID = -1

// ClusterID identifies a cluster; defined here (rather than imported
// from package cluster) to avoid an import cycle, since package cluster
// depends on abstractgraph, not the reverse.
type ClusterID int32

// Node is a level-1 node representing a specific level-0 tile that
// participates in an inter-cluster entrance, or a transient start/goal
// endpoint. Abstraction level is always 1 per the data model.
type Node struct {
	Tile    grid.TileID
	Cluster ClusterID
}

// EdgeKind distinguishes entrances (crossing a cluster boundary) from
// precomputed intra-cluster shortcuts.
type EdgeKind int

const (
	Inter EdgeKind = iota
	Intra
)

// Edge connects two abstract nodes. Weight is the length of the
// represented concrete path; Capability/Clearance describe the
// strongest (C,k) combination this specific edge was built for — the
// entrance builder may emit several edges between the same node pair
// for different (C,k) combinations when dominance does not collapse
// them (see cluster.AbstractionQuality).
type Edge struct {
	Kind       EdgeKind
	From, To   NodeID
	Weight     float64
	Capability grid.Capability
	Clearance  uint16
}
