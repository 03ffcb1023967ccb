// This file declares Task, the sentinel errors, and the NewGraph
// constructor for the dense-index CPM graph.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrIndexRange indicates a node index outside the graph's [0, Order) range.
	ErrIndexRange = errors.New("core: node index out of range")

	// ErrUnknownTaskID indicates an original task ID with no NodeTable entry.
	ErrUnknownTaskID = errors.New("core: unknown task id")
)

// Task represents one schedulable unit of work.
//
// ID uniquely identifies the task within its input set and must be a
// positive integer; IDs need not be contiguous. Duration is the time
// the task consumes once started (negative values survive construction
// and are rejected by the validator as negative edge weights).
// Predecessors lists the IDs of tasks that must complete first; it may
// be empty and its order carries no meaning.
type Task struct {
	// ID is the unique positive identifier for this task.
	ID int

	// Duration is the integer time cost of the task.
	Duration int64

	// Predecessors holds the IDs of tasks this one depends on.
	Predecessors []int
}

// Graph is the dense-index weighted digraph the scheduling passes
// operate on.
//
// Nodes are opaque integer indices: 0 is Start, 1..n are tasks, n+1 is
// End. Both adjacency directions are materialized so the forward
// (earliest) and backward (latest) passes each walk their natural
// direction without rescans.
type Graph struct {
	n int // number of real task nodes (total order is n+2)

	// out[u][v] = w and in[v][u] = w for every edge u→v of weight w.
	// A missing key means "no edge"; a present key with value 0 is a
	// real zero-weight edge.
	out []map[int]int64
	in  []map[int]int64

	edgeCount int
}

// NewGraph creates an empty graph for n task nodes plus the two
// synthetic anchors, with no edges.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	order := n + 2
	g := &Graph{
		n:   n,
		out: make([]map[int]int64, order),
		in:  make([]map[int]int64, order),
	}
	for i := 0; i < order; i++ {
		g.out[i] = make(map[int]int64)
		g.in[i] = make(map[int]int64)
	}

	return g
}
