package grid

// ClearanceTable holds, for every tile and every capability class, the
// side length of the largest square of C-traversable tiles whose
// upper-left corner is that tile. Computed by a single reverse sweep,
// bottom-right to top-left, exactly as
// AnnotatedMapAbstraction::annotateMap does in the original
// implementation: clearance[t,C] = 1 + min(E,S,SE), with border tiles
// clamped to 1 and non-traversable tiles clamped to 0.
type ClearanceTable struct {
	m       *Map
	classes []Capability
	byClass map[Capability][]uint16
}

// BuildClearanceTable computes clearance for every tile under every
// capability class in classes.
func BuildClearanceTable(m *Map, classes []Capability) *ClearanceTable {
	ct := &ClearanceTable{m: m, classes: classes, byClass: make(map[Capability][]uint16, len(classes))}
	w, h := m.Width, m.Height
	for _, c := range classes {
		vals := make([]uint16, w*h)
		for y := h - 1; y >= 0; y-- {
			for x := w - 1; x >= 0; x-- {
				idx := y*w + x
				t := m.At(x, y)
				if !c.Traversable(t) {
					vals[idx] = 0
					continue
				}
				if x == w-1 || y == h-1 {
					vals[idx] = 1
					continue
				}
				e := vals[y*w+(x+1)]
				s := vals[(y+1)*w+x]
				se := vals[(y+1)*w+(x+1)]
				min := e
				if s < min {
					min = s
				}
				if se < min {
					min = se
				}
				vals[idx] = min + 1
			}
		}
		ct.byClass[c] = vals
	}
	return ct
}

// Clearance returns clearance[tile, c]. Tiles not covered by c report 0.
func (ct *ClearanceTable) Clearance(id TileID, c Capability) uint16 {
	vals, ok := ct.byClass[c]
	if !ok {
		return 0
	}
	if int(id) < 0 || int(id) >= len(vals) {
		return 0
	}
	return vals[id]
}

// Classes returns the capability classes this table was built for.
func (ct *ClearanceTable) Classes() []Capability { return ct.classes }
