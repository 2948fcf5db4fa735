package hpa

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/agungprasetyosakti/ahastar/cluster"
	"github.com/agungprasetyosakti/ahastar/grid"
)

// Config holds every construction parameter the engine needs, loadable
// from YAML the same way udisondev-la2go's LoginServer/DatabaseConfig
// are: a plain struct with yaml tags and a Default constructor.
type Config struct {
	ClusterSize        int               `yaml:"cluster_size"`
	AbstractionQuality string            `yaml:"abstraction_quality"`
	TerrainGlyphs      map[string]string `yaml:"terrain_glyphs"`
	CapabilityClasses  []string          `yaml:"capability_classes"`
}

// DefaultConfig mirrors DefaultLoginServer(): sane defaults for a
// quick-start engine over an ASCII Ground/Trees/Obstacle map.
func DefaultConfig() Config {
	return Config{
		ClusterSize:        10,
		AbstractionQuality: "High",
		TerrainGlyphs: map[string]string{
			".": "Ground",
			"T": "Trees",
			"@": "Obstacle",
		},
		CapabilityClasses: []string{"Ground", "Ground|Trees"},
	}
}

// LoadConfig decodes a YAML construction-parameter document.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("hpa: decode config: %w", err)
	}
	return cfg, nil
}

// Quality resolves the configured abstraction-quality name.
func (c Config) Quality() (cluster.AbstractionQuality, error) {
	switch c.AbstractionQuality {
	case "Low":
		return cluster.Low, nil
	case "Medium":
		return cluster.Medium, nil
	case "High", "":
		return cluster.High, nil
	default:
		return 0, fmt.Errorf("hpa: unknown abstraction quality %q", c.AbstractionQuality)
	}
}

// Classes resolves the configured capability class names into bitmasks.
func (c Config) Classes() ([]grid.Capability, error) {
	if len(c.CapabilityClasses) == 0 {
		return []grid.Capability{grid.FullUnion}, nil
	}
	out := make([]grid.Capability, 0, len(c.CapabilityClasses))
	for _, name := range c.CapabilityClasses {
		cap, err := grid.ParseCapability(name)
		if err != nil {
			return nil, err
		}
		out = append(out, cap)
	}
	return out, nil
}

// Glyphs resolves the configured terrain glyph table for the map loader.
func (c Config) Glyphs() (map[rune]grid.Terrain, error) {
	out := make(map[rune]grid.Terrain, len(c.TerrainGlyphs))
	for glyph, name := range c.TerrainGlyphs {
		if len([]rune(glyph)) != 1 {
			return nil, fmt.Errorf("hpa: terrain glyph %q must be a single character", glyph)
		}
		t, ok := grid.ParseTerrainName(name)
		if !ok {
			return nil, fmt.Errorf("hpa: unknown terrain name %q for glyph %q", name, glyph)
		}
		out[[]rune(glyph)[0]] = t
	}
	return out, nil
}
