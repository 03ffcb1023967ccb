// Package builder converts a task collection into the dense-index CPM
// graph, wiring the synthetic Start and End anchors.
//
// What:
//
//	FromTasks takes the parsed task slice, verifies its referential
//	integrity, assigns dense node indices 1..N by ascending original ID,
//	and materializes the CPM edge rules:
//
//	  - Start → t  (weight 0)           for every task without predecessors
//	  - p → t      (weight duration(p)) for every precedence pair (p, t)
//	  - t → End    (weight duration(t)) for every task nothing depends on
//	  - Start → End (weight 0)          when the task set is empty
//
//	The p→t weight models the time consumed completing p before t may
//	begin; the duration of a terminal task is carried on its edge to End.
//
// Input checks (all violations of a class are collected and reported
// together, not just the first):
//
//   - ErrDuplicateTask      - the same ID appears more than once
//   - ErrBadTaskID          - an ID is zero or negative
//   - ErrUnknownPredecessor - a predecessor references an absent ID
//
// Negative durations deliberately pass through: they surface as
// negative edge weights for the validate package to collect, keeping
// the two validation layers independent.
//
// Determinism: index assignment is a pure function of the sorted ID
// set, so identical input always yields an identical graph layout.
//
// Complexity: O(T log T + P) for T tasks and P precedence pairs.
package builder
