package hpa

import (
	"fmt"

	"github.com/agungprasetyosakti/ahastar/abstractgraph"
	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/search"
)

// stitch implements the hierarchical path reassembly (§4.5 step 2-4):
// fetch each abstract edge's cached concrete path, orient it, and
// concatenate consecutive segments dropping the duplicated boundary
// tile. A cache miss or a broken overlap invariant is a fatal
// programming error — it indicates cache corruption, never a normal
// runtime outcome — so it's returned as an error for the caller to
// panic on rather than silently producing a wrong path.
func stitch(ag *abstractgraph.Graph, nodes []search.NodeID, edges []search.EdgeID) (Path, error) {
	if len(nodes) == 0 {
		return Path{}, fmt.Errorf("hpa: stitch called with an empty node sequence")
	}
	if len(edges) == 0 {
		tile := ag.Node(abstractgraph.NodeID(nodes[0])).Tile
		return Path{Tiles: []grid.TileID{tile}}, nil
	}

	var full []grid.TileID
	for i, e := range edges {
		fromNode := ag.Node(abstractgraph.NodeID(nodes[i]))
		seg, ok := ag.Cache().Get(abstractgraph.EdgeID(e), fromNode.Tile)
		if !ok {
			return Path{}, fmt.Errorf("hpa: cache miss for abstract edge %d (%w)", e, cacheMissErr)
		}
		if len(full) == 0 {
			full = append(full, seg...)
			continue
		}
		if full[len(full)-1] != seg[0] {
			return Path{}, fmt.Errorf("hpa: overlap invariant violated stitching edge %d: tail %v != head %v", e, full[len(full)-1], seg[0])
		}
		full = append(full, seg[1:]...)
	}
	return Path{Tiles: full}, nil
}

var cacheMissErr = &Error{Kind: CacheMiss}
