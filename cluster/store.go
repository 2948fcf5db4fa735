// Package cluster implements the cluster decomposer and entrance
// builder: partitioning the map into fixed-size rectangular regions,
// discovering inter-cluster entrances under the configured dominance
// filter, and populating the abstract graph's inter/intra edges and
// path cache.
package cluster

import (
	"github.com/agungprasetyosakti/ahastar/abstractgraph"
	"github.com/agungprasetyosakti/ahastar/grid"
)

// ID identifies a cluster, aliasing abstractgraph's ClusterID so both
// packages share one identity space without cluster importing back into
// abstractgraph's internals.
type ID = abstractgraph.ClusterID

// Cluster is an axis-aligned rectangular region of the grid, at most
// S x S tiles. Origin, width and height are stored explicitly since the
// rightmost column and bottom row may be narrower than S.
type Cluster struct {
	ID            ID
	X0, Y0        int32
	Width, Height int32
}

// Store holds the result of partitioning a map: every cluster, indexed
// by its row-major id, plus the lookup tables the surgeon and entrance
// builder need (implements abstractgraph.Geometry).
type Store struct {
	size     int32
	cols     int32
	rows     int32
	mapW     int32
	mapH     int32
	clusters []Cluster
}

func ceilDiv(a, b int32) int32 {
	return (a + b - 1) / b
}

// Partition implements partition(map, S): builds ceil(W/S) x ceil(H/S)
// clusters in row-major order. Tie-break: the cluster at origin
// (floor(x/S)*S, floor(y/S)*S) owns tile (x,y) — matches
// AnnotatedClusterAbstraction::buildClusters sizing.
func Partition(base *grid.BaseGraph, size int) *Store {
	m := base.Map()
	s := int32(size)
	w, h := int32(m.Width), int32(m.Height)
	cols := ceilDiv(w, s)
	rows := ceilDiv(h, s)

	st := &Store{size: s, cols: cols, rows: rows, mapW: w, mapH: h}
	st.clusters = make([]Cluster, 0, cols*rows)
	for ry := int32(0); ry < rows; ry++ {
		for rx := int32(0); rx < cols; rx++ {
			x0 := rx * s
			y0 := ry * s
			cw := s
			if x0+cw > w {
				cw = w - x0
			}
			ch := s
			if y0+ch > h {
				ch = h - y0
			}
			id := ID(len(st.clusters))
			st.clusters = append(st.clusters, Cluster{ID: id, X0: x0, Y0: y0, Width: cw, Height: ch})
		}
	}
	return st
}

// Count returns the number of clusters.
func (s *Store) Count() int { return len(s.clusters) }

// Cluster returns the cluster record for id.
func (s *Store) Cluster(id ID) Cluster { return s.clusters[id] }

// All returns every cluster, row-major.
func (s *Store) All() []Cluster { return s.clusters }

// Cols and Rows report the cluster grid's own dimensions.
func (s *Store) Cols() int32 { return s.cols }
func (s *Store) Rows() int32 { return s.rows }

// ClusterAt implements abstractgraph.Geometry: the cluster at origin
// (floor(x/S)*S, floor(y/S)*S) owns (x,y).
func (s *Store) ClusterAt(x, y int32) ID {
	cx := x / s.size
	cy := y / s.size
	return ID(cy*s.cols + cx)
}

// Bounds implements abstractgraph.Geometry.
func (s *Store) Bounds(id ID) (x0, y0, w, h int32) {
	c := s.clusters[id]
	return c.X0, c.Y0, c.Width, c.Height
}

var _ abstractgraph.Geometry = (*Store)(nil)
