// FromTasks: task slice → validated dense-index graph + node table.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/critpath/core"
)

// FromTasks builds the CPM graph for the given task set.
//
// The returned NodeTable retains the index ↔ original-ID bijection for
// reporting. Input order carries no meaning: indices are assigned by
// ascending original ID, so the layout is reproducible for any
// permutation of the same tasks.
//
// Errors (in check order, each reporting all violations of its class):
// ErrBadTaskID, ErrDuplicateTask, ErrUnknownPredecessor.
// Complexity: O(T log T + P) for T tasks and P precedence pairs.
func FromTasks(tasks []core.Task) (*core.Graph, *core.NodeTable, error) {
	// 1. Structural ID checks before any graph state exists.
	if err := checkIDs(tasks); err != nil {
		return nil, nil, err
	}

	// 2. Assemble the ID set and the duration lookup.
	ids := make([]int, 0, len(tasks))
	durations := make(map[int]int64, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
		durations[task.ID] = task.Duration
	}

	// 3. Referential integrity: every predecessor must name a known ID.
	if err := checkPredecessors(tasks, durations); err != nil {
		return nil, nil, err
	}

	// 4. Dense remap (sorted ascending inside NewNodeTable).
	table := core.NewNodeTable(ids)
	g := core.NewGraph(table.Len())

	// 5. Degenerate empty set: keep Start and End connected so the
	//    trivial schedule and the trivial critical path fall out of the
	//    ordinary passes.
	if len(tasks) == 0 {
		_ = g.SetWeight(g.Start(), g.End(), 0)

		return g, table, nil
	}

	// 6. Wire precedence edges and Start anchors.
	//    blockers records every ID that appears as someone's predecessor,
	//    i.e. every task that is not terminal.
	blockers := make(map[int]struct{}, len(tasks))
	for _, task := range tasks {
		tIdx := mustIndex(table, task.ID)
		if len(task.Predecessors) == 0 {
			// Entry task: startable immediately at project time 0.
			_ = g.SetWeight(g.Start(), tIdx, 0)
			continue
		}
		for _, pred := range task.Predecessors {
			pIdx := mustIndex(table, pred)
			// Weight = time consumed by completing pred before task begins.
			_ = g.SetWeight(pIdx, tIdx, durations[pred])
			blockers[pred] = struct{}{}
		}
	}

	// 7. Wire End anchors for terminal tasks, carrying their own duration.
	for _, task := range tasks {
		if _, blocks := blockers[task.ID]; blocks {
			continue
		}
		_ = g.SetWeight(mustIndex(table, task.ID), g.End(), task.Duration)
	}

	return g, table, nil
}

// checkIDs collects non-positive and duplicated IDs across the whole
// input before reporting, so one run surfaces every offender.
func checkIDs(tasks []core.Task) error {
	var bad []int
	seen := make(map[int]int, len(tasks)) // ID → occurrence count
	for _, task := range tasks {
		if task.ID <= 0 {
			bad = append(bad, task.ID)
		}
		seen[task.ID]++
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrBadTaskID, joinInts(bad))
	}

	var dups []int
	for id, count := range seen {
		if count > 1 {
			dups = append(dups, id)
		}
	}
	if len(dups) > 0 {
		sort.Ints(dups)

		return fmt.Errorf("%w: %s", ErrDuplicateTask, joinInts(dups))
	}

	return nil
}

// checkPredecessors collects every dangling (task, predecessor) pair.
func checkPredecessors(tasks []core.Task, known map[int]int64) error {
	var dangling []string
	for _, task := range tasks {
		for _, pred := range task.Predecessors {
			if _, ok := known[pred]; !ok {
				dangling = append(dangling, fmt.Sprintf("task %d → %d", task.ID, pred))
			}
		}
	}
	if len(dangling) > 0 {
		sort.Strings(dangling)

		return fmt.Errorf("%w: %s", ErrUnknownPredecessor, strings.Join(dangling, ", "))
	}

	return nil
}

// mustIndex resolves an ID already verified against the table; a miss
// here is a programming error, not an input error.
func mustIndex(table *core.NodeTable, id int) int {
	idx, err := table.IndexOf(id)
	if err != nil {
		panic(err)
	}

	return idx
}

// joinInts renders a sorted-as-given int list as "a, b, c".
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, ", ")
}
