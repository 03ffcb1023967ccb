// Package validate gates the scheduling passes: a graph must be proven
// acyclic and free of negative edge weights before any date is computed.
//
// What:
//
//   - Cycle detection by iterative elimination of zero-in-degree nodes
//     (Kahn-style source peeling). When the process stalls with nodes
//     left over, those nodes — the members of every cycle plus anything
//     reachable only through one — form the reported stuck set, which is
//     exactly what a user needs to debug a constraint file.
//   - Negative-weight detection by a single scan over all defined edges.
//
// Both checks always run to completion and collect *every* violation,
// never just the first: one validation run should let the user fix all
// problems at once. The result is a structured Report; nothing here
// prints — the presentation layer decides how to render diagnostics.
//
// Errors:
//
//	ErrGraphNil       - nil graph handed to Check.
//	ErrCyclicGraph    - the stuck set is non-empty.
//	ErrNegativeWeight - at least one edge weight is negative.
//
// Complexity: O(V + E) time, O(V) memory.
package validate
