// This file implements NodeTable, the retained bijection between dense
// node indices and the original task IDs, plus node labeling.

package core

import (
	"fmt"
	"sort"
)

// Reserved labels for the synthetic anchor nodes.
const (
	StartLabel = "Start"
	EndLabel   = "End"
)

// NodeTable is the bijective index ↔ original-ID lookup built once at
// graph construction. Task indices run 1..Len(); indices 0 and Len()+1
// belong to the synthetic anchors and have no original ID.
type NodeTable struct {
	idByIndex []int       // position i-1 holds the original ID of node index i
	indexByID map[int]int // original ID → node index
}

// NewNodeTable builds the lookup table for the given task IDs. The IDs
// are sorted ascending internally, so index assignment is a pure
// function of the ID set regardless of input order.
// Complexity: O(n log n).
func NewNodeTable(ids []int) *NodeTable {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	t := &NodeTable{
		idByIndex: sorted,
		indexByID: make(map[int]int, len(sorted)),
	}
	for i, id := range sorted {
		t.indexByID[id] = i + 1 // index 0 is reserved for Start
	}

	return t
}

// Len returns the number of task entries (excluding the anchors).
func (t *NodeTable) Len() int { return len(t.idByIndex) }

// IndexOf returns the dense node index for an original task ID.
// Returns ErrUnknownTaskID if the ID was not part of the task set.
func (t *NodeTable) IndexOf(id int) (int, error) {
	idx, ok := t.indexByID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownTaskID, id)
	}

	return idx, nil
}

// IDOf returns the original task ID for a task node index.
// Returns ErrIndexRange for the anchor indices and anything outside 1..Len().
func (t *NodeTable) IDOf(idx int) (int, error) {
	if idx < 1 || idx > len(t.idByIndex) {
		return 0, fmt.Errorf("%w: %d", ErrIndexRange, idx)
	}

	return t.idByIndex[idx-1], nil
}

// Label returns the human-meaningful name of a node index:
// "Start", "Task <id>", or "End". Out-of-range indices label as "?".
func (t *NodeTable) Label(idx int) string {
	switch {
	case idx == 0:
		return StartLabel
	case idx == len(t.idByIndex)+1:
		return EndLabel
	case idx >= 1 && idx <= len(t.idByIndex):
		return fmt.Sprintf("Task %d", t.idByIndex[idx-1])
	default:
		return "?"
	}
}
