// Check: full-report graph validation (cycles + negative weights).

package validate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/critpath/core"
)

// Sentinel errors for validation outcomes.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Check.
	ErrGraphNil = errors.New("validate: graph is nil")

	// ErrCyclicGraph indicates the graph contains at least one cycle;
	// the Report carries the full unschedulable node set.
	ErrCyclicGraph = errors.New("validate: graph contains a cycle")

	// ErrNegativeWeight indicates at least one edge has a negative
	// weight; the Report carries every offending (from, to) pair.
	ErrNegativeWeight = errors.New("validate: negative edge weight")
)

// Report is the structured outcome of a validation run. Both checks
// always complete, so a single Report can carry cycle and weight
// violations at the same time.
type Report struct {
	// CycleNodes is the set of node indices the source-elimination pass
	// could not schedule, ascending. Empty means acyclic.
	CycleNodes []int

	// NegativeEdges lists every edge (from, to) with weight < 0, in
	// lexicographic order. Empty means all weights are non-negative.
	NegativeEdges [][2]int
}

// Ok reports whether the graph passed both checks. Scheduling must not
// run unless Ok is true.
func (r *Report) Ok() bool {
	return len(r.CycleNodes) == 0 && len(r.NegativeEdges) == 0
}

// Err folds the report into an error: nil when Ok, otherwise the first
// applicable sentinel (cycles take precedence) wrapped with counts so
// callers can branch via errors.Is and still log something readable.
func (r *Report) Err() error {
	if len(r.CycleNodes) > 0 {
		return fmt.Errorf("%w: %d unschedulable node(s)", ErrCyclicGraph, len(r.CycleNodes))
	}
	if len(r.NegativeEdges) > 0 {
		return fmt.Errorf("%w: %d edge(s)", ErrNegativeWeight, len(r.NegativeEdges))
	}

	return nil
}

// Check runs both validation passes over g and returns the collected
// Report. The only hard failure is a nil graph.
// Complexity: O(V + E) time, O(V) memory.
func Check(g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Report{
		CycleNodes:    stuckNodes(g),
		NegativeEdges: negativeEdges(g),
	}, nil
}

// stuckNodes runs Kahn-style source elimination and returns the node
// indices that never reached in-degree 0, ascending. An empty result
// proves the graph acyclic.
func stuckNodes(g *core.Graph) []int {
	order := g.Order()

	// 1. In-degree per node from the full edge set.
	indeg := make([]int, order)
	eliminated := make([]bool, order)
	for v := 0; v < order; v++ {
		indeg[v] = g.InDegree(v)
	}

	// 2. Initial frontier: every current source. Ascending index scan
	//    keeps elimination order deterministic.
	frontier := make([]int, 0, order)
	for v := 0; v < order; v++ {
		if indeg[v] == 0 {
			frontier = append(frontier, v)
		}
	}

	// 3. Peel sources round by round, decrementing successor in-degrees;
	//    a node enters the frontier exactly once, when it hits zero.
	for len(frontier) > 0 {
		next := frontier[:0:0]
		for _, u := range frontier {
			eliminated[u] = true
			for _, v := range g.Successors(u) {
				indeg[v]--
				if indeg[v] == 0 {
					next = append(next, v)
				}
			}
		}
		sort.Ints(next)
		frontier = next
	}

	// 4. Whatever survived elimination is stuck inside (or behind) a cycle.
	var stuck []int
	for v := 0; v < order; v++ {
		if !eliminated[v] {
			stuck = append(stuck, v)
		}
	}

	return stuck
}

// negativeEdges scans every defined edge once and collects all (u, v)
// pairs with weight < 0 in lexicographic order.
func negativeEdges(g *core.Graph) [][2]int {
	var bad [][2]int
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Successors(u) { // ascending, so output is lexicographic
			if w, _ := g.Weight(u, v); w < 0 {
				bad = append(bad, [2]int{u, v})
			}
		}
	}

	return bad
}
