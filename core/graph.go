// This file implements the Graph accessors and mutators: edge
// insertion, weight lookup, degree queries, and deterministic
// neighbor enumeration.

package core

import "sort"

// Order returns the total node count, synthetic anchors included.
func (g *Graph) Order() int { return g.n + 2 }

// TaskCount returns the number of real task nodes (Order minus the two anchors).
func (g *Graph) TaskCount() int { return g.n }

// Start returns the index of the synthetic Start node (always 0).
func (g *Graph) Start() int { return 0 }

// End returns the index of the synthetic End node (always TaskCount+1).
func (g *Graph) End() int { return g.n + 1 }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// inRange reports whether idx is a valid node index.
func (g *Graph) inRange(idx int) bool { return idx >= 0 && idx < g.n+2 }

// SetWeight inserts or overwrites the directed edge u→v with weight w.
// Overwriting an existing edge does not change EdgeCount.
// Returns ErrIndexRange if either endpoint is out of range.
// Complexity: O(1).
func (g *Graph) SetWeight(u, v int, w int64) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrIndexRange
	}
	if _, exists := g.out[u][v]; !exists {
		g.edgeCount++
	}
	g.out[u][v] = w
	g.in[v][u] = w

	return nil
}

// Weight reports the weight of edge u→v and whether the edge exists.
// The boolean is the authoritative existence test: a (0, true) result
// is a genuine zero-weight edge, not a default.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return 0, false
	}
	w, ok := g.out[u][v]

	return w, ok
}

// Successors returns the targets of all edges leaving u, in ascending
// index order. The slice is freshly allocated on every call.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Successors(u int) []int {
	if !g.inRange(u) {
		return nil
	}

	return sortedKeys(g.out[u])
}

// Predecessors returns the sources of all edges entering v, in
// ascending index order. The slice is freshly allocated on every call.
// Complexity: O(d log d) for in-degree d.
func (g *Graph) Predecessors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	return sortedKeys(g.in[v])
}

// InDegree returns the number of edges entering v, or 0 for an
// out-of-range index.
func (g *Graph) InDegree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return len(g.in[v])
}

// OutDegree returns the number of edges leaving u, or 0 for an
// out-of-range index.
func (g *Graph) OutDegree(u int) int {
	if !g.inRange(u) {
		return 0
	}

	return len(g.out[u])
}

// sortedKeys extracts the keys of a sparse adjacency row in ascending
// order; shared by Successors and Predecessors so every caller sees the
// same deterministic neighbor order.
func sortedKeys(row map[int]int64) []int {
	keys := make([]int, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
