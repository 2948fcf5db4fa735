package grid

import "testing"

func allGroundMap(w, h int) *Map {
	m := NewMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, Ground)
		}
	}
	return m
}

func TestClearanceRecurrence3x3AllGround(t *testing.T) {
	m := allGroundMap(3, 3)
	ct := BuildClearanceTable(m, []Capability{Capability(Ground)})

	want := map[[2]int]uint16{
		{0, 0}: 3, {1, 0}: 2, {2, 0}: 1,
		{0, 1}: 2, {1, 1}: 2, {2, 1}: 1,
		{0, 2}: 1, {1, 2}: 1, {2, 2}: 1,
	}
	for xy, exp := range want {
		id := m.TileID(xy[0], xy[1])
		got := ct.Clearance(id, Capability(Ground))
		if got != exp {
			t.Fatalf("clearance at (%d,%d): expected %d, got %d", xy[0], xy[1], exp, got)
		}
	}
}

func TestClearanceZeroForUnsupportedCapability(t *testing.T) {
	m := NewMap(2, 2)
	m.Set(0, 0, Ground)
	m.Set(1, 0, Trees)
	m.Set(0, 1, Ground)
	m.Set(1, 1, Ground)

	ct := BuildClearanceTable(m, []Capability{Capability(Ground)})
	id := m.TileID(1, 0)
	if got := ct.Clearance(id, Capability(Ground)); got != 0 {
		t.Fatalf("expected 0 clearance for Trees tile under Ground-only capability, got %d", got)
	}
}

func TestClearanceObstacleAlwaysZero(t *testing.T) {
	m := allGroundMap(3, 3)
	m.Set(1, 1, Obstacle)
	ct := BuildClearanceTable(m, []Capability{Capability(Ground)})
	id := m.TileID(1, 1)
	if got := ct.Clearance(id, Capability(Ground)); got != 0 {
		t.Fatalf("expected obstacle tile to have 0 clearance, got %d", got)
	}
}
