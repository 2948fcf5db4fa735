// Package mapio implements the map file loader, out of scope for the
// core pipeline but needed to turn an ASCII grid into a *grid.Map: each
// glyph maps to one terrain bit.
package mapio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/agungprasetyosakti/ahastar/grid"
)

// DefaultGlyphs is the fallback glyph table when the caller doesn't
// supply one: '.' Ground, 'T' Trees, '@' Obstacle.
func DefaultGlyphs() map[rune]grid.Terrain {
	return map[rune]grid.Terrain{
		'.': grid.Ground,
		'T': grid.Trees,
		'@': grid.Obstacle,
	}
}

// LoadASCII reads a rectangular ASCII grid from r, mapping each glyph to
// its terrain via glyphs (falls back to DefaultGlyphs when nil). All
// rows must have equal width; the map's height is the row count.
func LoadASCII(r io.Reader, glyphs map[rune]grid.Terrain) (*grid.Map, error) {
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}

	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mapio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("mapio: empty map")
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("mapio: row %d has width %d, expected %d", i, len(row), width)
		}
	}

	m := grid.NewMap(width, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			t, ok := glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("mapio: unknown glyph %q at (%d,%d)", ch, x, y)
			}
			m.Set(x, y, t)
		}
	}
	return m, nil
}
