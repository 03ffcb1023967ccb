package schedule_test

import (
	"testing"

	"github.com/katalvlaran/critpath/builder"
	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/schedule"
)

// layeredTasks builds width×depth tasks where each layer fully depends
// on the previous one — a dense scheduling workload.
func layeredTasks(width, depth int) []core.Task {
	tasks := make([]core.Task, 0, width*depth)
	id := 1
	var prevLayer []int
	for d := 0; d < depth; d++ {
		var layer []int
		for x := 0; x < width; x++ {
			tasks = append(tasks, core.Task{
				ID:           id,
				Duration:     int64(1 + (id % 7)),
				Predecessors: append([]int(nil), prevLayer...),
			})
			layer = append(layer, id)
			id++
		}
		prevLayer = layer
	}

	return tasks
}

// BenchmarkCompute measures the full rank/earliest/latest/float pass
// over a layered DAG of 200 tasks.
func BenchmarkCompute(b *testing.B) {
	g, _, err := builder.FromTasks(layeredTasks(10, 20))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = schedule.Compute(g); err != nil {
			b.Fatal(err)
		}
	}
}
