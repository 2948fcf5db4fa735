package hpa

import "github.com/agungprasetyosakti/ahastar/grid"

// Path is a non-empty ordered sequence of level-0 tiles, contiguous in
// the 8-connected sense, each step admissible under the query's
// (capability, clearance).
type Path struct {
	Tiles []grid.TileID
}

// Len returns the number of tiles in the path.
func (p Path) Len() int { return len(p.Tiles) }

// Reverse returns a new Path visiting the same tiles in reverse order,
// used by the round-trip property (plan(s,g) is the reverse of
// plan(g,s)).
func (p Path) Reverse() Path {
	out := make([]grid.TileID, len(p.Tiles))
	for i, t := range p.Tiles {
		out[len(p.Tiles)-1-i] = t
	}
	return Path{Tiles: out}
}
