// Command ahastar builds an annotated hierarchical pathfinding
// abstraction over a small demo map and runs a single plan() query
// against it, printing the resulting path and statistics readout.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/hpa"
	"github.com/agungprasetyosakti/ahastar/mapio"
)

const demoMap = `
..........
..@@@.....
..@.......
..@..T....
..........
..........
....@@@@..
....@.....
..........
..........
`

func main() {
	clusterSize := flag.Int("cluster-size", 5, "cluster size S")
	quality := flag.String("quality", "High", "abstraction quality: Low, Medium, High")
	flag.Parse()

	m, err := mapio.LoadASCII(strings.NewReader(strings.TrimSpace(demoMap)), nil)
	if err != nil {
		log.Fatalf("load map: %v", err)
	}

	cfg := hpa.DefaultConfig()
	cfg.ClusterSize = *clusterSize
	cfg.AbstractionQuality = *quality

	engine := hpa.NewEngine(cfg)
	if err := engine.Build(m); err != nil {
		log.Fatalf("build abstraction: %v", err)
	}

	start := m.TileID(0, 0)
	goal := m.TileID(m.Width-1, m.Height-1)

	path, err := engine.Plan(start, goal, grid.FullUnion, 1)
	if err != nil {
		log.Fatalf("plan: %v", err)
	}

	fmt.Printf("path length: %d tiles\n", path.Len())
	for _, t := range path.Tiles {
		fmt.Printf("(%d,%d) ", t.X(m.Width), t.Y(m.Width))
	}
	fmt.Println()

	stats := engine.Stats()
	fmt.Printf("nodesExpanded=%d nodesTouched=%d peakMemoryKB=%d searchTime=%s\n",
		stats.NodesExpanded, stats.NodesTouched, stats.PeakMemoryKB, stats.SearchTime)
}
