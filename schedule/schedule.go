// Compute: topological rank + earliest/latest/float passes.

package schedule

import (
	"errors"
	"sort"

	"github.com/katalvlaran/critpath/core"
)

// Sentinel errors for the scheduling pass.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Compute.
	ErrGraphNil = errors.New("schedule: graph is nil")

	// ErrNotAcyclic is the defensive failure when Compute cannot derive
	// a complete topological order; validate.Check should have caught
	// the cycle before this point.
	ErrNotAcyclic = errors.New("schedule: graph is not acyclic")
)

// Result holds the four node-indexed metric mappings plus the order
// they were derived in. Slices are indexed by node index
// (0 = Start .. Order-1 = End) and are recomputed in full per run.
type Result struct {
	// Order is the deterministic topological order used by the passes.
	Order []int

	// Rank is the topological depth of each node (Start = 0).
	Rank []int

	// Earliest is the earliest date each node's work can begin.
	Earliest []int64

	// Latest is the latest date each node can begin without delaying
	// the computed project completion.
	Latest []int64

	// Float is Latest − Earliest per node; 0 marks critical nodes.
	Float []int64
}

// Duration returns the computed project duration, earliest[End].
func (r *Result) Duration() int64 {
	return r.Earliest[len(r.Earliest)-1]
}

// TaskFloats maps each original task ID to its float, slicing the
// synthetic anchors out of the per-node view for callers that only
// report "real" tasks.
func (r *Result) TaskFloats(table *core.NodeTable) map[int]int64 {
	floats := make(map[int]int64, table.Len())
	for idx := 1; idx <= table.Len(); idx++ {
		id, err := table.IDOf(idx)
		if err != nil {
			continue // anchors and out-of-range never reach here
		}
		floats[id] = r.Float[idx]
	}

	return floats
}

// Compute derives all scheduling metrics for g.
//
// Preconditions: g validated acyclic with non-negative weights (see
// package validate). A cyclic graph fails with ErrNotAcyclic instead of
// producing partial dates.
// Complexity: O(V log V + E) time, O(V) memory.
func Compute(g *core.Graph) (*Result, error) {
	// 1. Guard the graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()

	// 2. Deterministic topological order; incomplete order means a cycle.
	order, ok := topoOrder(g)
	if !ok {
		return nil, ErrNotAcyclic
	}

	res := &Result{
		Order:    order,
		Rank:     make([]int, n),
		Earliest: make([]int64, n),
		Latest:   make([]int64, n),
		Float:    make([]int64, n),
	}

	// 3. Forward sweep in topological order: rank and earliest dates.
	//    Every predecessor of v precedes v in order, so single-pass
	//    maxima are exact longest-path values.
	for _, v := range order {
		var rank int
		var earliest int64
		for _, u := range g.Predecessors(v) {
			if res.Rank[u]+1 > rank {
				rank = res.Rank[u] + 1
			}
			w, _ := g.Weight(u, v)
			if res.Earliest[u]+w > earliest {
				earliest = res.Earliest[u] + w
			}
		}
		// Sources (Start, or a disconnected node) keep the 0 defaults:
		// rank 0, startable at project time 0.
		res.Rank[v] = rank
		res.Earliest[v] = earliest
	}

	// 4. Backward sweep in reverse order: latest dates, anchored at the
	//    computed completion of End — never an external deadline.
	projectEnd := res.Earliest[g.End()]
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		latest := projectEnd // default for End itself and for sinks
		for _, v := range g.Successors(u) {
			w, _ := g.Weight(u, v)
			if res.Latest[v]-w < latest {
				latest = res.Latest[v] - w
			}
		}
		res.Latest[u] = latest
	}

	// 5. Float per node.
	for v := 0; v < n; v++ {
		res.Float[v] = res.Latest[v] - res.Earliest[v]
	}

	return res, nil
}

// topoOrder produces the smallest-index-first Kahn order. The second
// return is false when nodes remain unordered (cycle present).
func topoOrder(g *core.Graph) ([]int, bool) {
	n := g.Order()
	indeg := make([]int, n)
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		indeg[v] = g.InDegree(v)
		if indeg[v] == 0 {
			queue = append(queue, v) // ascending by construction
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		// Pop the front; the queue is re-sorted on every insertion, so
		// the pop is always the smallest ready index.
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		freed := false
		for _, v := range g.Successors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
				freed = true
			}
		}
		if freed {
			sort.Ints(queue)
		}
	}

	return order, len(order) == n
}
