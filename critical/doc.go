// Package critical enumerates every critical path of a scheduled CPM
// graph: the Start→End chains composed entirely of tight edges.
//
// What:
//
//	An edge u→v is tight iff earliest[v] = earliest[u] + weight(u, v) —
//	zero slack, no room to slip. Paths walks backward from End along
//	tight incoming edges and emits every complete chain reaching Start,
//	as ordered Start→End node-index sequences. Multiple predecessors of
//	a node can be tight simultaneously, so this is a full enumeration,
//	not a single longest-path backtrack; every returned path's total
//	weight equals the project duration earliest[End].
//
// The traversal is an explicit stack-based depth-first walk — no
// recursion, since diamond-shaped critical structures branch and the
// path count can grow exponentially. For that same reason enumeration
// is capped (WithMaxPaths, default 1024): past the cap the collected
// prefix is returned together with ErrPathLimit, leaving the schedule
// metrics themselves untouched and usable. The output is a plain
// finite slice, re-enumerable at will, deterministic (branches explore
// ascending predecessor indices).
//
// Errors:
//
//	ErrGraphNil  - nil graph or nil schedule result.
//	ErrBadResult - result slices do not match the graph's order.
//	ErrPathLimit - enumeration stopped at the configured cap;
//	               the returned slice holds the truncated prefix.
//
// Complexity: O(P·L + V + E) time for P emitted paths of average
// length L — exponential in the worst case, bounded by the cap.
package critical
