// Package core defines the central Task, Graph, and NodeTable types
// for critical path analysis.
//
// What:
//
//   - Task: a schedulable unit of work — positive integer ID, integer
//     duration, explicit predecessor ID set.
//   - Graph: a dense-index weighted digraph over {Start} ∪ Tasks ∪ {End}.
//     Index 0 is reserved for the synthetic Start node, indices 1..N map
//     to tasks in ascending order of their original IDs, index N+1 is
//     the synthetic End node. Edges are stored sparsely in both
//     directions: the absence of an edge is distinct from an edge of
//     weight 0 (Start→task edges legitimately weigh 0).
//   - NodeTable: the bijective index ↔ original-ID mapping retained for
//     reporting, plus human-meaningful node labels.
//
// Why:
//
//	Scheduling passes index flat slices by node index, so task IDs are
//	remapped once into opaque dense handles instead of scattering ID
//	arithmetic through every algorithm.
//
// Graphs here are plain single-goroutine values: each analysis run
// builds a fresh Graph, derives its metrics, and discards them. Nothing
// in this package prints or locks.
//
// Errors:
//
//	ErrIndexRange    - node index outside [0, Order).
//	ErrUnknownTaskID - original task ID absent from the NodeTable.
package core
