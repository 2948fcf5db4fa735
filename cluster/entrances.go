package cluster

import (
	"github.com/agungprasetyosakti/ahastar/abstractgraph"
	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/search"
)

// segmentThreshold is the hard-coded run-length above which a segment
// is represented by two inter-edges (one near each end) instead of one
// at the midpoint.
const segmentThreshold = 6

// candidate is one representative inter-edge produced by the
// maximal-segment scan, before the dominance filter runs.
type candidate struct {
	tileA, tileB grid.TileID
	capability   grid.Capability
	clearance    uint16
}

// border describes one shared edge between two adjacent clusters as a
// pair of parallel coordinate walks, abstracting over the
// horizontal-vs-vertical adjacency direction.
type border struct {
	length int32
	sideA  func(i int32) (x, y int32)
	sideB  func(i int32) (x, y int32)
}

// BuildEntrances implements the entrance-builder component (§4.3): for
// every pair of adjacent clusters, scans the shared border for maximal
// (capability, clearance) transition segments, applies the configured
// dominance filter, and materializes surviving inter-edges (with cache
// entries) into ag. Once every cluster's inter-edges are fixed, a second
// pass fills in intra-cluster shortcut edges between every pair of
// abstract nodes sharing a cluster.
func BuildEntrances(store *Store, ag *abstractgraph.Graph, quality AbstractionQuality) {
	base := ag.Base()
	classes := base.Clearances().Classes()

	for ry := int32(0); ry < store.rows; ry++ {
		for rx := int32(0); rx < store.cols; rx++ {
			a := store.Cluster(ID(ry*store.cols + rx))

			if rx+1 < store.cols {
				b := store.Cluster(ID(ry*store.cols + rx + 1))
				xa := a.X0 + a.Width - 1
				xb := b.X0
				brd := border{
					length: a.Height,
					sideA:  func(i int32) (int32, int32) { return xa, a.Y0 + i },
					sideB:  func(i int32) (int32, int32) { return xb, a.Y0 + i },
				}
				processPair(base, ag, a.ID, b.ID, brd, classes, quality)
			}
			if ry+1 < store.rows {
				b := store.Cluster(ID((ry+1)*store.cols + rx))
				ya := a.Y0 + a.Height - 1
				yb := b.Y0
				brd := border{
					length: a.Width,
					sideA:  func(i int32) (int32, int32) { return a.X0 + i, ya },
					sideB:  func(i int32) (int32, int32) { return a.X0 + i, yb },
				}
				processPair(base, ag, a.ID, b.ID, brd, classes, quality)
			}
		}
	}

	for _, c := range store.All() {
		nodes := ag.ClusterNodes(c.ID)
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				pairClasses := incidentUnion(ag, nodes[i], nodes[j])
				if len(pairClasses) == 0 {
					continue
				}
				ag.BuildIntraEdges(nodes[i], nodes[j], c.X0, c.Y0, c.Width, c.Height, pairClasses)
			}
		}
	}
}

// incidentUnion returns the deduplicated union of capability classes
// present on u's and v's own incident inter-edges — the set §4.3 scopes
// a pair's intra-edge attempts to ("for each capability C present on
// their incident inter-edges").
func incidentUnion(ag *abstractgraph.Graph, u, v abstractgraph.NodeID) []grid.Capability {
	seen := make(map[grid.Capability]bool)
	var out []grid.Capability
	add := func(caps []grid.Capability) {
		for _, c := range caps {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	add(ag.IncidentInterCapabilities(u))
	add(ag.IncidentInterCapabilities(v))
	return out
}

func processPair(base *grid.BaseGraph, ag *abstractgraph.Graph, aID, bID ID, brd border, classes []grid.Capability, quality AbstractionQuality) {
	var candidates []candidate
	for _, c := range classes {
		candidates = append(candidates, scanSegments(base, brd, c)...)
	}
	candidates = filterDominance(base, quality, candidates)
	for _, cd := range candidates {
		materializeInterEdge(ag, aID, bID, cd)
	}
}

// scanSegments finds, for one capability class, every maximal run of
// border offsets where both sides are C-traversable with clearance >= 1,
// and emits its representative candidate edge(s).
func scanSegments(base *grid.BaseGraph, brd border, c grid.Capability) []candidate {
	m := base.Map()
	jc := make([]uint16, brd.length)
	for i := int32(0); i < brd.length; i++ {
		ax, ay := brd.sideA(i)
		bx, by := brd.sideB(i)
		ta, tb := m.At(int(ax), int(ay)), m.At(int(bx), int(by))
		if !c.Traversable(ta) || !c.Traversable(tb) {
			continue
		}
		idA, idB := m.TileID(int(ax), int(ay)), m.TileID(int(bx), int(by))
		ca := base.Clearances().Clearance(idA, c)
		cb := base.Clearances().Clearance(idB, c)
		if ca < cb {
			jc[i] = ca
		} else {
			jc[i] = cb
		}
	}

	var out []candidate
	start := int32(-1)
	flush := func(end int32) {
		if start < 0 {
			return
		}
		runLen := end - start
		clr := jc[start]
		for i := start + 1; i < end; i++ {
			if jc[i] < clr {
				clr = jc[i]
			}
		}
		emit := func(off int32) {
			ax, ay := brd.sideA(off)
			bx, by := brd.sideB(off)
			out = append(out, candidate{
				tileA:      m.TileID(int(ax), int(ay)),
				tileB:      m.TileID(int(bx), int(by)),
				capability: c,
				clearance:  clr,
			})
		}
		if runLen <= segmentThreshold {
			emit(start + runLen/2)
		} else {
			// long corridor: one entry/exit point in from each end.
			emit(start + 1)
			emit(end - 2)
		}
	}
	for i := int32(0); i < brd.length; i++ {
		if jc[i] > 0 {
			if start < 0 {
				start = i
			}
		} else {
			flush(i)
			start = -1
		}
	}
	flush(brd.length)
	return out
}

func filterDominance(base *grid.BaseGraph, quality AbstractionQuality, candidates []candidate) []candidate {
	if quality == Low || len(candidates) < 2 {
		return candidates
	}
	discarded := make([]bool, len(candidates))
	for i, e1 := range candidates {
		if discarded[i] {
			continue
		}
		for j, e2 := range candidates {
			if i == j || discarded[j] {
				continue
			}
			if dominates(base, quality, e1, e2) {
				discarded[j] = true
			}
		}
	}
	var out []candidate
	for i, cd := range candidates {
		if !discarded[i] {
			out = append(out, cd)
		}
	}
	return out
}

// dominates reports whether e1 dominates e2 under the given quality: e1
// must cover at least e2's capability and clearance, and (High only) an
// intra-cluster path must exist between e1's and e2's same-side
// endpoints admitting e2's (capability, clearance).
func dominates(base *grid.BaseGraph, quality AbstractionQuality, e1, e2 candidate) bool {
	if e1.capability&e2.capability != e2.capability {
		return false
	}
	if e1.clearance < e2.clearance {
		return false
	}
	if quality == Medium {
		return true
	}
	return reachableWithin(base, e1.tileA, e2.tileA, e2.capability, e2.clearance) &&
		reachableWithin(base, e1.tileB, e2.tileB, e2.capability, e2.clearance)
}

func reachableWithin(base *grid.BaseGraph, from, to grid.TileID, c grid.Capability, k uint16) bool {
	if from == to {
		return true
	}
	filter := base.CapabilityClearanceFilter(c, k)
	res := search.AStar(base, search.NodeID(from), search.NodeID(to), filter)
	return res.Found
}

func materializeInterEdge(ag *abstractgraph.Graph, aID, bID ID, cd candidate) {
	base := ag.Base()
	tileA := base.Tile(cd.tileA)
	tileB := base.Tile(cd.tileB)
	nodeA, _ := ag.AddNode(tileA, cd.tileA, aID)
	nodeB, _ := ag.AddNode(tileB, cd.tileB, bID)
	weight := abstractgraph.EdgeLength(cd.tileA, cd.tileB, base.Map().Width)
	eid := ag.AddEdge(abstractgraph.Edge{
		Kind:       abstractgraph.Inter,
		From:       nodeA,
		To:         nodeB,
		Weight:     weight,
		Capability: cd.capability,
		Clearance:  cd.clearance,
	})
	ag.Cache().Put(eid, []grid.TileID{cd.tileA, cd.tileB})
}
