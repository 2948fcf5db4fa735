package hpa

import "time"

// Stats is the statistics readout exposed read-only per §6, reset at
// the start of every Plan call.
type Stats struct {
	NodesExpanded int
	NodesTouched  int
	PeakMemoryKB  uint64
	SearchTime    time.Duration
}
