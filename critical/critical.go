// Paths: stack-based enumeration of all tight Start→End chains.

package critical

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/schedule"
)

// Sentinel errors for path enumeration.
var (
	// ErrGraphNil is returned for a nil graph or nil schedule result.
	ErrGraphNil = errors.New("critical: graph or schedule result is nil")

	// ErrBadResult indicates the schedule result does not belong to the
	// given graph (slice lengths differ from the graph order).
	ErrBadResult = errors.New("critical: schedule result does not match graph")

	// ErrPathLimit indicates enumeration stopped at the configured cap.
	// The slice returned alongside it holds the truncated path prefix;
	// schedule metrics remain fully valid.
	ErrPathLimit = errors.New("critical: path enumeration limit reached")
)

// DefaultMaxPaths is the enumeration cap applied when no WithMaxPaths
// option is given. Generous for real constraint files (tens of tasks),
// small enough to stop adversarial diamond stacks from hanging a run.
const DefaultMaxPaths = 1024

// Path is an ordered node-index sequence from Start to End.
type Path []int

// Option configures optional behavior of Paths.
type Option func(*options)

// options holds the resolved enumeration settings.
type options struct {
	maxPaths int // cap on emitted paths; <= 0 means unlimited
}

// defaultOptions returns the default settings (DefaultMaxPaths cap).
func defaultOptions() options {
	return options{maxPaths: DefaultMaxPaths}
}

// WithMaxPaths returns an Option bounding the number of enumerated
// paths. A non-positive n removes the cap entirely — the caller then
// accepts the exponential worst case.
func WithMaxPaths(n int) Option {
	return func(o *options) { o.maxPaths = n }
}

// frame is one level of the explicit DFS stack: a node plus a cursor
// over its tight predecessors.
type frame struct {
	node  int
	preds []int // tight incoming neighbors, ascending
	next  int   // cursor into preds
}

// Paths enumerates every Start→End path whose edges are all tight
// under res.Earliest, in deterministic order (ascending predecessor
// index at each branch point).
//
// Returns ErrPathLimit together with the truncated prefix when the cap
// is hit. The result is a fresh slice each call — re-running the
// enumeration on the same inputs yields the same paths.
func Paths(g *core.Graph, res *schedule.Result, opts ...Option) ([]Path, error) {
	// 1. Guard inputs.
	if g == nil || res == nil {
		return nil, ErrGraphNil
	}
	if len(res.Earliest) != g.Order() {
		return nil, fmt.Errorf("%w: %d metric entries for order %d", ErrBadResult, len(res.Earliest), g.Order())
	}

	// 2. Resolve options.
	opt := defaultOptions()
	for _, apply := range opts {
		apply(&opt)
	}

	start, end := g.Start(), g.End()

	// 3. Backward DFS from End over tight edges with an explicit stack.
	//    chain mirrors the stack's node column: chain[0] == End, and the
	//    current partial path reads backward from it.
	var paths []Path
	stack := []frame{{node: end, preds: tightPredecessors(g, res, end)}}
	chain := []int{end}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 3a. Reaching Start completes a path: emit the chain reversed.
		if top.node == start {
			if opt.maxPaths > 0 && len(paths) >= opt.maxPaths {
				return paths, fmt.Errorf("%w: cap %d", ErrPathLimit, opt.maxPaths)
			}
			paths = append(paths, reversed(chain))
			stack = stack[:len(stack)-1]
			chain = chain[:len(chain)-1]
			continue
		}

		// 3b. Exhausted branch (includes dead-ends with no tight
		//     predecessor, which only non-Start sources produce).
		if top.next >= len(top.preds) {
			stack = stack[:len(stack)-1]
			chain = chain[:len(chain)-1]
			continue
		}

		// 3c. Descend into the next tight predecessor.
		u := top.preds[top.next]
		top.next++
		stack = append(stack, frame{node: u, preds: tightPredecessors(g, res, u)})
		chain = append(chain, u)
	}

	return paths, nil
}

// Labels renders a path as its human-meaningful node labels
// (Start, Task <id>, ..., End) for the presentation layer.
func Labels(path Path, table *core.NodeTable) []string {
	labels := make([]string, len(path))
	for i, idx := range path {
		labels[i] = table.Label(idx)
	}

	return labels
}

// tightPredecessors returns the sources of all tight edges entering v,
// ascending. Start never has incoming edges, so its slice is empty.
func tightPredecessors(g *core.Graph, res *schedule.Result, v int) []int {
	var tight []int
	for _, u := range g.Predecessors(v) { // ascending order
		w, _ := g.Weight(u, v)
		if res.Earliest[u]+w == res.Earliest[v] {
			tight = append(tight, u)
		}
	}

	return tight
}

// reversed copies chain back-to-front, turning the End→Start walk into
// a Start→End path.
func reversed(chain []int) Path {
	out := make(Path, len(chain))
	for i, v := range chain {
		out[len(chain)-1-i] = v
	}

	return out
}
