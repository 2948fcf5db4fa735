// Package hpa wires together the grid, cluster and abstractgraph
// packages into the hierarchical query engine (C7): construction of the
// two-layer abstraction and resolution of plan() queries against it.
package hpa

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/agungprasetyosakti/ahastar/abstractgraph"
	"github.com/agungprasetyosakti/ahastar/cluster"
	"github.com/agungprasetyosakti/ahastar/grid"
	"github.com/agungprasetyosakti/ahastar/search"
)

// State names the abstraction's construction state, per the state
// machine in §4.3: Empty -> Clustered -> Ready -> Querying -> Ready.
type State int

const (
	Empty State = iota
	Clustered
	Ready
	Querying
)

// Engine owns the whole abstraction: the base graph, cluster store,
// abstract graph/cache, and the query-scoped surgeon. mu serializes the
// entire Plan() call: Insert, the abstract search, stitch, and Remove
// all touch the same abstract graph arena, so one Plan call must finish
// before the next one starts rather than just around Insert/Remove.
// Grounded on the teacher's World.mu sync.RWMutex in world_store.go —
// mutating operations take the full lock; here the read-only search
// shares the lock too because it reads the same arena a concurrent
// Insert/Remove would mutate.
type Engine struct {
	config Config

	base  *grid.BaseGraph
	store *cluster.Store
	ag    *abstractgraph.Graph

	mu    sync.Mutex
	state State
	stats Stats
}

// NewEngine returns an Engine in the Empty state.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg, state: Empty}
}

// State returns the engine's current construction state.
func (e *Engine) State() State { return e.state }

// Stats returns the statistics readout from the most recently completed
// Plan call.
func (e *Engine) Stats() Stats { return e.stats }

// Partition implements Empty --partition()--> Clustered.
func (e *Engine) Partition(m *grid.Map) error {
	if e.state != Empty {
		return &Error{Kind: NotReady}
	}
	classes, err := e.config.Classes()
	if err != nil {
		return err
	}
	e.base = grid.NewBaseGraph(m, classes)
	size := e.config.ClusterSize
	if size < 2 {
		size = 2
	}
	e.store = cluster.Partition(e.base, size)
	e.state = Clustered
	log.Printf("hpa: partitioned %dx%d map into %d clusters (size=%d)", m.Width, m.Height, e.store.Count(), size)
	return nil
}

// BuildEntrances implements Clustered --buildEntrances()--> Ready.
func (e *Engine) BuildEntrances() error {
	if e.state != Clustered {
		return &Error{Kind: NotReady}
	}
	quality, err := e.config.Quality()
	if err != nil {
		return err
	}
	e.ag = abstractgraph.NewGraph(e.base)
	t0 := time.Now()
	cluster.BuildEntrances(e.store, e.ag, quality)
	e.state = Ready
	log.Printf("hpa: built entrances (%s quality): %d abstract nodes, %d abstract edges in %s",
		quality, e.ag.NodeCount(), e.ag.EdgeCount(), time.Since(t0))
	return nil
}

// Build runs Partition then BuildEntrances in sequence, the common case
// for callers that don't need to inspect the intermediate Clustered
// state.
func (e *Engine) Build(m *grid.Map) error {
	if err := e.Partition(m); err != nil {
		return err
	}
	return e.BuildEntrances()
}

// Plan implements the query API: plan(start, goal, capability,
// clearance) -> Path | Unreachable | Error(kind). The abstraction must
// be Ready; Plan transitions Ready -> Querying -> Ready for the
// duration of the call, always leaving it Ready on return (validation
// failures never installed a transient state to begin with).
func (e *Engine) Plan(start, goal grid.TileID, capability grid.Capability, clearance uint16) (Path, error) {
	// The whole state check -> Insert -> search -> Remove window is held
	// under one lock: the abstract graph's node/edge arenas
	// (abstractgraph/graph.go's adj/byTile/nodes/edges maps) are mutated
	// by Insert/Remove and read by AStar and stitch, so a second Plan
	// call's Insert racing the first call's still-unlocked search would
	// be a data race on those same maps, not just on the transient nodes
	// themselves. A concurrent caller waits here and then sees Ready.
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Ready {
		return Path{}, &Error{Kind: NotReady}
	}
	e.stats = Stats{}

	t0 := time.Now()

	surgeon := abstractgraph.NewSurgeon(e.ag, e.store)
	insertStats, err := surgeon.Insert(
		abstractgraph.Endpoint{Tile: start, Level: 0},
		abstractgraph.Endpoint{Tile: goal, Level: 0},
	)
	if err != nil {
		return Path{}, fromSurgeonError(err)
	}
	e.state = Querying
	defer func() {
		surgeon.Remove()
		e.state = Ready
	}()

	absStart := resolveAbstractNode(e.ag, surgeon.StartID, start)
	absGoal := resolveAbstractNode(e.ag, surgeon.GoalID, goal)

	filter := e.ag.CapabilityClearanceFilter(capability, clearance)
	res := search.AStar(e.ag, search.NodeID(absStart), search.NodeID(absGoal), filter)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)
	e.stats = Stats{
		NodesExpanded: insertStats.NodesExpanded + res.Stats.NodesExpanded,
		NodesTouched:  insertStats.NodesTouched + res.Stats.NodesTouched,
		PeakMemoryKB:  memAfter.Sys / 1024,
		SearchTime:    time.Since(t0),
	}

	if !res.Found {
		log.Printf("hpa: plan(%v,%v) unreachable under capability=%v clearance=%d", start, goal, capability, clearance)
		return Path{}, ErrUnreachable
	}

	path, err := stitch(e.ag, res.Nodes, res.Edges)
	if err != nil {
		log.Panicf("hpa: %v", err)
	}
	return path, nil
}

func resolveAbstractNode(ag *abstractgraph.Graph, transient abstractgraph.NodeID, tile grid.TileID) abstractgraph.NodeID {
	if transient != abstractgraph.NoNode {
		return transient
	}
	return ag.NodeAt(tile)
}
