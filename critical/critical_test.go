package critical_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/builder"
	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/critical"
	"github.com/katalvlaran/critpath/schedule"
)

// analyze builds and schedules a task set in one go.
func analyze(t *testing.T, tasks []core.Task) (*core.Graph, *core.NodeTable, *schedule.Result) {
	t.Helper()
	g, table, err := builder.FromTasks(tasks)
	require.NoError(t, err)
	res, err := schedule.Compute(g)
	require.NoError(t, err)

	return g, table, res
}

// pathWeight sums the edge weights along a path.
func pathWeight(t *testing.T, g *core.Graph, p critical.Path) int64 {
	t.Helper()
	var total int64
	for i := 0; i+1 < len(p); i++ {
		w, ok := g.Weight(p[i], p[i+1])
		require.Truef(t, ok, "edge %d→%d missing from path", p[i], p[i+1])
		total += w
	}

	return total
}

// TestPaths_NilGuards covers the input guards.
func TestPaths_NilGuards(t *testing.T) {
	g, _, res := analyze(t, nil)

	_, err := critical.Paths(nil, res)
	assert.ErrorIs(t, err, critical.ErrGraphNil)
	_, err = critical.Paths(g, nil)
	assert.ErrorIs(t, err, critical.ErrGraphNil)
}

// TestPaths_MismatchedResult rejects a result from a different graph.
func TestPaths_MismatchedResult(t *testing.T) {
	g, _, _ := analyze(t, []core.Task{{ID: 1, Duration: 1}})
	_, _, smaller := analyze(t, nil)

	_, err := critical.Paths(g, smaller)
	assert.ErrorIs(t, err, critical.ErrBadResult)
}

// TestPaths_ScenarioA expects the single critical chain
// Start→1→3→End with total weight 7.
func TestPaths_ScenarioA(t *testing.T) {
	g, table, res := analyze(t, []core.Task{
		{ID: 1, Duration: 3},
		{ID: 2, Duration: 2, Predecessors: []int{1}},
		{ID: 3, Duration: 4, Predecessors: []int{1}},
	})

	paths, err := critical.Paths(g, res)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, critical.Path{0, 1, 3, 4}, paths[0])
	assert.Equal(t, res.Duration(), pathWeight(t, g, paths[0]))
	assert.Equal(t,
		[]string{"Start", "Task 1", "Task 3", "End"},
		critical.Labels(paths[0], table))
}

// TestPaths_TwoDisjointChains covers scenario D: two equal-length
// chains both reaching End yield exactly two critical paths.
func TestPaths_TwoDisjointChains(t *testing.T) {
	// Chain A: 1(2) → 2(3), total 5. Chain B: 3(4) → 4(1), total 5.
	g, _, res := analyze(t, []core.Task{
		{ID: 1, Duration: 2},
		{ID: 2, Duration: 3, Predecessors: []int{1}},
		{ID: 3, Duration: 4},
		{ID: 4, Duration: 1, Predecessors: []int{3}},
	})

	paths, err := critical.Paths(g, res)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, res.Duration(), pathWeight(t, g, p))
	}
	assert.Equal(t, critical.Path{0, 1, 2, 5}, paths[0])
	assert.Equal(t, critical.Path{0, 3, 4, 5}, paths[1])
}

// TestPaths_TightnessComplete verifies the converse property on a
// diamond with equal arms: every Start→End path of total weight equal
// to the project duration appears in the output.
func TestPaths_TightnessComplete(t *testing.T) {
	// 1(2) feeds both 2(3) and 3(3); both feed 4(1). Both arms tight.
	g, _, res := analyze(t, []core.Task{
		{ID: 1, Duration: 2},
		{ID: 2, Duration: 3, Predecessors: []int{1}},
		{ID: 3, Duration: 3, Predecessors: []int{1}},
		{ID: 4, Duration: 1, Predecessors: []int{2, 3}},
	})

	paths, err := critical.Paths(g, res)
	require.NoError(t, err)
	assert.Equal(t, []critical.Path{
		{0, 1, 2, 4, 5},
		{0, 1, 3, 4, 5},
	}, paths)
}

// TestPaths_SlackArmExcluded ensures a non-tight arm never appears.
func TestPaths_SlackArmExcluded(t *testing.T) {
	// Arm via 2 is shorter: 1(5)→2(1)→4 vs 1(5)→3(10)→4.
	g, _, res := analyze(t, []core.Task{
		{ID: 1, Duration: 5},
		{ID: 2, Duration: 1, Predecessors: []int{1}},
		{ID: 3, Duration: 10, Predecessors: []int{1}},
		{ID: 4, Duration: 1, Predecessors: []int{2, 3}},
	})

	paths, err := critical.Paths(g, res)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, critical.Path{0, 1, 3, 4, 5}, paths[0])
}

// TestPaths_EmptyTaskSet returns the single trivial Start→End path.
func TestPaths_EmptyTaskSet(t *testing.T) {
	g, table, res := analyze(t, nil)

	paths, err := critical.Paths(g, res)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, critical.Path{0, 1}, paths[0])
	assert.Equal(t, []string{"Start", "End"}, critical.Labels(paths[0], table))
}

// TestPaths_Determinism re-enumerates and expects identical output.
func TestPaths_Determinism(t *testing.T) {
	g, _, res := analyze(t, diamondStack(4))

	first, err := critical.Paths(g, res)
	require.NoError(t, err)
	second, err := critical.Paths(g, res)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestPaths_ExplosionCap stacks diamonds (2^k tight paths) and checks
// the cap truncates with ErrPathLimit while keeping the prefix.
func TestPaths_ExplosionCap(t *testing.T) {
	g, _, res := analyze(t, diamondStack(3)) // 2³ = 8 tight paths

	full, err := critical.Paths(g, res)
	require.NoError(t, err)
	require.Len(t, full, 8)
	for _, p := range full {
		assert.Equal(t, res.Duration(), pathWeight(t, g, p))
	}

	capped, err := critical.Paths(g, res, critical.WithMaxPaths(5))
	assert.ErrorIs(t, err, critical.ErrPathLimit)
	assert.Len(t, capped, 5)
	assert.Equal(t, full[:5], capped)

	// Non-positive cap removes the bound.
	unlimited, err := critical.Paths(g, res, critical.WithMaxPaths(0))
	require.NoError(t, err)
	assert.Equal(t, full, unlimited)
}

// diamondStack builds k chained diamonds with equal arms, giving 2^k
// critical paths. IDs are assigned sequentially: hub, armA, armB, hub...
func diamondStack(k int) []core.Task {
	var tasks []core.Task
	nextID := 1
	hub := nextID
	tasks = append(tasks, core.Task{ID: hub, Duration: 1})
	nextID++
	for i := 0; i < k; i++ {
		armA, armB, nextHub := nextID, nextID+1, nextID+2
		nextID += 3
		tasks = append(tasks,
			core.Task{ID: armA, Duration: 2, Predecessors: []int{hub}},
			core.Task{ID: armB, Duration: 2, Predecessors: []int{hub}},
			core.Task{ID: nextHub, Duration: 1, Predecessors: []int{armA, armB}},
		)
		hub = nextHub
	}

	return tasks
}

// ExamplePaths demonstrates enumerating the critical chain of a tiny
// project and printing it with node labels.
func ExamplePaths() {
	g, table, _ := builder.FromTasks([]core.Task{
		{ID: 1, Duration: 3},
		{ID: 2, Duration: 2, Predecessors: []int{1}},
		{ID: 3, Duration: 4, Predecessors: []int{1}},
	})
	res, _ := schedule.Compute(g)
	paths, _ := critical.Paths(g, res)
	for _, p := range paths {
		labels := critical.Labels(p, table)
		fmt.Printf("%v (duration %d)\n", labels, res.Duration())
	}
	// Output:
	// [Start Task 1 Task 3 End] (duration 7)
}
