package grid

import (
	"fmt"
	"strings"
)

var terrainNames = map[string]Terrain{
	"Ground":   Ground,
	"Trees":    Trees,
	"Water":    Water,
	"Obstacle": Obstacle,
}

// ParseTerrainName resolves a config-file terrain name to its bit.
func ParseTerrainName(name string) (Terrain, bool) {
	t, ok := terrainNames[name]
	return t, ok
}

// ParseCapability parses a "Ground|Trees"-style capability class name
// into its bitmask, used to decode YAML construction config.
func ParseCapability(name string) (Capability, error) {
	var c Capability
	for _, part := range strings.Split(name, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, ok := ParseTerrainName(part)
		if !ok {
			return 0, fmt.Errorf("grid: unknown terrain name %q", part)
		}
		if t == Obstacle {
			return 0, fmt.Errorf("grid: Obstacle is not a valid capability bit")
		}
		c |= Capability(t)
	}
	if c == 0 {
		return 0, fmt.Errorf("grid: empty capability class %q", name)
	}
	return c, nil
}
