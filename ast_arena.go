package cdecl

import "sync/atomic"

// astAllocCount is a process-wide live-node counter (§5 init/teardown
// hooks). Go's garbage collector reclaims node memory on its own; the
// counter exists purely to preserve the observable invariant a
// debug build checks at teardown: zero outstanding nodes once every
// arena in use has been disposed.
var astAllocCount int64

// ASTAllocCount returns the number of nodes allocated from arenas that
// have not yet been disposed. A fresh process, or one after every
// arena's Dispose has run, reports zero.
func ASTAllocCount() int64 { return atomic.LoadInt64(&astAllocCount) }

// Arena owns a batch of AST nodes sharing one lifetime, e.g. the nodes
// of a single parsed declaration, or every node one Session builds.
// Nodes are never freed individually; Dispose
// releases the whole batch at once (§4.1 "O(1) bulk free").
type Arena struct {
	nodes []Node
	seq   int
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

func (a *Arena) nextID() int {
	a.seq++
	return a.seq
}

func (a *Arena) register(n Node) {
	a.nodes = append(a.nodes, n)
	atomic.AddInt64(&astAllocCount, 1)
}

// Len reports how many nodes the arena currently owns.
func (a *Arena) Len() int { return len(a.nodes) }

// Nodes returns the arena's nodes in allocation order. The returned
// slice is owned by the arena and must not be mutated.
func (a *Arena) Nodes() []Node { return a.nodes }

// Dispose drops the arena's references to its nodes and reconciles
// the global live-node counter. It is idempotent.
func (a *Arena) Dispose() {
	if len(a.nodes) == 0 {
		return
	}
	atomic.AddInt64(&astAllocCount, -int64(len(a.nodes)))
	a.nodes = nil
}
