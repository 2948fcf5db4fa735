package hpa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agungprasetyosakti/ahastar/grid"
)

// TestScenarioClearanceRecurrence mirrors S1: a 3x3 all-Ground grid's
// clearances follow the bottom-right-to-top-left recurrence exactly.
func TestScenarioClearanceRecurrence(t *testing.T) {
	m := openMap(3, 3)
	ct := grid.BuildClearanceTable(m, []grid.Capability{grid.Capability(grid.Ground)})

	cases := []struct {
		x, y int
		want uint16
	}{
		{0, 0, 3}, {1, 0, 2}, {2, 0, 1},
		{0, 1, 2}, {1, 1, 2}, {2, 1, 1},
		{0, 2, 1}, {1, 2, 1}, {2, 2, 1},
	}
	for _, c := range cases {
		got := ct.Clearance(m.TileID(c.x, c.y), grid.Capability(grid.Ground))
		assert.Equalf(t, c.want, got, "clearance at (%d,%d)", c.x, c.y)
	}
}

// TestScenarioClusterCount mirrors S2 for an exact-multiple map: a
// 10x10 map at S=5 yields four 5x5 clusters. Remainder partitioning is
// covered by package cluster's TestPartitionRemainderWidthsHeights.
func TestScenarioClusterCount(t *testing.T) {
	m := openMap(10, 10)
	e := newReadyEngine(t, m, 5)
	assert.Equal(t, 4, e.store.Count())
	for _, c := range e.store.All() {
		assert.EqualValues(t, 5, c.Width)
		assert.EqualValues(t, 5, c.Height)
	}
}

// TestScenarioInsertRemoveIdempotence mirrors S5 at the engine level:
// a full Plan() round trip must leave (node count, edge count, cache
// size) exactly where they started.
func TestScenarioInsertRemoveIdempotence(t *testing.T) {
	m := openMap(10, 10)
	e := newReadyEngine(t, m, 5)

	n0, edge0, cache0 := e.ag.NodeCount(), e.ag.EdgeCount(), e.ag.Cache().Len()

	_, err := e.Plan(m.TileID(0, 0), m.TileID(9, 9), grid.Capability(grid.Ground), 1)
	require.NoError(t, err)

	assert.Equal(t, n0, e.ag.NodeCount())
	assert.Equal(t, edge0, e.ag.EdgeCount())
	assert.Equal(t, cache0, e.ag.Cache().Len())
	assert.Equal(t, e.ag.EdgeCount(), e.ag.Cache().Len(), "cache size must always equal edge count")
}

// TestScenarioUnreachableIsNormalOutcome mirrors the boundary behaviour:
// a query between two tiles separated by a solid wall with no gap
// reports Unreachable, not a fatal error, and the engine returns to Ready.
func TestScenarioUnreachableIsNormalOutcome(t *testing.T) {
	m := openMap(6, 6)
	for y := 0; y < 6; y++ {
		m.Set(3, y, grid.Obstacle)
	}
	cfg := DefaultConfig()
	cfg.ClusterSize = 3
	cfg.CapabilityClasses = []string{"Ground"}
	e := NewEngine(cfg)
	require.NoError(t, e.Build(m))

	_, err := e.Plan(m.TileID(0, 0), m.TileID(5, 5), grid.Capability(grid.Ground), 1)
	require.Error(t, err)
	herr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, Unreachable, herr.Kind)
	assert.Equal(t, Ready, e.State())
}
