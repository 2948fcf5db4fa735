package search

import (
	"math/bits"

	"golang.org/x/sync/syncmap"
)

// arena owns every *node allocated during one search invocation and is
// released back to the size-classed pool when the search returns. This
// mirrors the teacher's NodePool/RichRangeNodeSlicePool arrangement in
// new_map/rich_range_tree_pool.go: a channel-backed pool bucketed by
// size class, indexed through a syncmap so buckets can be created
// lazily and shared across goroutines running independent queries
// against the same immutable abstraction.
type arena struct {
	nodes []node
}

func (a *arena) alloc() *node {
	a.nodes = append(a.nodes, node{})
	return &a.nodes[len(a.nodes)-1]
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
}

type arenaPool struct {
	pool chan *arena
	cap  int
}

func newArenaPool(size, sliceCap int) *arenaPool {
	return &arenaPool{pool: make(chan *arena, size), cap: sliceCap}
}

func (p *arenaPool) get() *arena {
	select {
	case a := <-p.pool:
		return a
	default:
		return &arena{nodes: make([]node, 0, p.cap)}
	}
}

func (p *arenaPool) put(a *arena) {
	a.reset()
	select {
	case p.pool <- a:
	default:
		// pool full, drop it for GC to reclaim
	}
}

var globalArenaPools syncmap.Map // size-class(int) -> *arenaPool

func sizeClass(hint int) int {
	if hint < 16 {
		hint = 16
	}
	k := bits.Len(uint(hint - 1))
	return k
}

func acquireArena(expectedNodes int) *arena {
	class := sizeClass(expectedNodes)
	v, ok := globalArenaPools.Load(class)
	if !ok {
		v, _ = globalArenaPools.LoadOrStore(class, newArenaPool(64, 1<<class))
	}
	return v.(*arenaPool).get()
}

func releaseArena(expectedNodes int, a *arena) {
	class := sizeClass(expectedNodes)
	v, ok := globalArenaPools.Load(class)
	if !ok {
		return
	}
	v.(*arenaPool).put(a)
}
