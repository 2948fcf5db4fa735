package abstractgraph

import "github.com/agungprasetyosakti/ahastar/grid"

// Cache maps an abstract edge's id to its concrete level-0 path.
// Invariant: every abstract edge has exactly one entry, whose endpoints
// are the edge's endpoint tiles and whose length equals the edge
// weight within floating-point rounding.
type Cache struct {
	paths map[EdgeID][]grid.TileID
}

func newCache() *Cache {
	return &Cache{paths: make(map[EdgeID][]grid.TileID)}
}

// Put installs a copy of the concrete path for edge id, in the
// orientation given. Orientation is resolved only at read time by Get,
// which reverses a copy when needed and never the stored entry, so a
// cached path is never reversed twice across queries.
func (c *Cache) Put(id EdgeID, path []grid.TileID) {
	cp := make([]grid.TileID, len(path))
	copy(cp, path)
	c.paths[id] = cp
}

// Get returns the cached path for id oriented from `from`. If the
// cached path starts at the other endpoint, a reversed copy is
// returned; the stored entry itself is never mutated.
func (c *Cache) Get(id EdgeID, from grid.TileID) ([]grid.TileID, bool) {
	p, ok := c.paths[id]
	if !ok || len(p) == 0 {
		return nil, false
	}
	if p[0] == from {
		out := make([]grid.TileID, len(p))
		copy(out, p)
		return out, true
	}
	out := make([]grid.TileID, len(p))
	for i, t := range p {
		out[len(p)-1-i] = t
	}
	return out, true
}

// Delete removes the cache entry for id, used by the surgeon's Remove
// to undo exactly the entries its matching Insert created.
func (c *Cache) Delete(id EdgeID) {
	delete(c.paths, id)
}

// Len reports the number of cache entries, used by idempotence tests
// (|cache| must equal |abstract_edges| at every point between queries).
func (c *Cache) Len() int { return len(c.paths) }

// Has reports whether id has a cache entry.
func (c *Cache) Has(id EdgeID) bool {
	_, ok := c.paths[id]
	return ok
}
