package mapio

import (
	"strings"
	"testing"

	"github.com/agungprasetyosakti/ahastar/grid"
)

func TestLoadASCIIDefaultGlyphs(t *testing.T) {
	src := "..T\n.@.\nT..\n"
	m, err := LoadASCII(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Width != 3 || m.Height != 3 {
		t.Fatalf("expected 3x3 map, got %dx%d", m.Width, m.Height)
	}
	if m.At(2, 0) != grid.Trees {
		t.Fatalf("expected Trees at (2,0)")
	}
	if m.At(1, 1) != grid.Obstacle {
		t.Fatalf("expected Obstacle at (1,1)")
	}
}

func TestLoadASCIIRejectsRaggedRows(t *testing.T) {
	src := "..\n.\n"
	if _, err := LoadASCII(strings.NewReader(src), nil); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
}

func TestLoadASCIIRejectsUnknownGlyph(t *testing.T) {
	src := "..X\n"
	if _, err := LoadASCII(strings.NewReader(src), nil); err == nil {
		t.Fatalf("expected error for unknown glyph")
	}
}
