// Package schedule computes the CPM date metrics over a validated
// graph: topological rank, earliest dates, latest dates, and per-node
// float.
//
// What:
//
//   - Topological order: Kahn elimination with a sorted ready-queue —
//     ties among equally-deep nodes break toward the smallest index, so
//     the produced order (and therefore every derived metric) is fully
//     deterministic.
//   - Rank: topological depth; 0 for sources, otherwise
//     1 + max(rank of predecessors).
//   - Earliest date (forward longest-path pass, in order):
//     earliest[v] = max over edges u→v of earliest[u] + weight(u, v),
//     defaulting to 0 for nodes without incoming edges.
//   - Latest date (backward pass, in reverse order), anchored at the
//     computed completion latest[End] = earliest[End] — never an
//     external deadline: latest[u] = min over edges u→v of
//     latest[v] − weight(u, v), defaulting to latest[End] for sinks.
//   - Float: latest − earliest per node; ≥ 0 on any validated graph,
//     exactly 0 for Start and End.
//
// The caller is expected to gate Compute behind validate.Check; the
// pass still re-derives its own order and fails with ErrNotAcyclic
// rather than looping if handed a cyclic graph. Results are plain
// node-indexed slices, recomputed in full on every call — no state
// survives between runs.
//
// Errors:
//
//	ErrGraphNil   - nil graph.
//	ErrNotAcyclic - the elimination order did not cover every node.
//
// Complexity: O(V log V + E) time, O(V) memory.
package schedule
