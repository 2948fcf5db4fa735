// Package grid implements the level-0 tile model: terrain, per-tile
// clearance for every capability class, and the 8-connected base graph
// over non-obstacle tiles. Its only dependency inside this module is
// package search, whose Graph interface the base graph implements.
package grid

// Terrain is a single terrain bit. Capability classes are bitwise
// combinations of these.
type Terrain uint8

const (
	Ground Terrain = 1 << iota
	Trees
	Water
	Obstacle
)

// Capability is a bitmask of terrain types an agent can enter. Obstacle
// is never a valid bit in a capability mask — a tile flagged Obstacle
// has no clearance under any capability.
type Capability uint8

// Traversable reports whether a tile of terrain t may be entered by an
// agent with capability c: t's bits must all be present in c.
func (c Capability) Traversable(t Terrain) bool {
	return t&Obstacle == 0 && Terrain(c)&t == t
}

// FullUnion is the capability admitting every non-obstacle terrain bit
// defined above. Used by the k=1/C=full-union degenerate-to-plain-A*
// boundary case.
const FullUnion Capability = Capability(Ground | Trees | Water)
