package search

import "time"

// Stats reports the cost of a single AStar invocation. The hierarchical
// engine accumulates these across its level-0 and level-1 sub-searches
// into its own per-query Stats readout.
type Stats struct {
	NodesTouched  int // nodes pushed onto the open set at least once
	NodesExpanded int // nodes popped from the open set and relaxed
	SearchTime    time.Duration
}

// Add accumulates o's counters into s, used by callers that stitch
// several sub-searches into one reported Stats value (e.g.
// abstractgraph's BuildIntraEdges, which runs one A* per capability
// class).
func (s *Stats) Add(o Stats) {
	s.NodesTouched += o.NodesTouched
	s.NodesExpanded += o.NodesExpanded
	s.SearchTime += o.SearchTime
}
