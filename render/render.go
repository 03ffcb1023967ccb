// Package render is the presentation layer: it turns the engine's
// structured results — schedules, adjacency matrices, critical paths,
// validation diagnostics — into styled terminal output.
//
// Everything writes to a caller-supplied io.Writer; the algorithmic
// packages never print. Styling uses fatih/color Sprint functions,
// which degrade to plain text on non-TTY writers and honor NO_COLOR.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/critical"
	"github.com/katalvlaran/critpath/schedule"
	"github.com/katalvlaran/critpath/validate"
)

// Sprint color functions for building styled strings.
var (
	bold       = color.New(color.Bold).SprintFunc()
	dim        = color.New(color.Faint).SprintFunc()
	red        = color.New(color.FgRed).SprintFunc()
	green      = color.New(color.FgGreen).SprintFunc()
	yellow     = color.New(color.FgYellow).SprintFunc()
	boldRed    = color.New(color.Bold, color.FgRed).SprintFunc()
	boldGreen  = color.New(color.Bold, color.FgGreen).SprintFunc()
	boldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	cyanSprint = color.New(color.FgCyan).SprintFunc()
)

// absentCell marks a missing edge in the matrix dump. Distinct from
// "0", which is a real zero-weight edge.
const absentCell = "."

// Schedule writes the per-node metric table: label, rank, earliest,
// latest, float, and a marker on zero-float (critical) nodes.
func Schedule(w io.Writer, g *core.Graph, table *core.NodeTable, res *schedule.Result) {
	fmt.Fprintf(w, "%s\n", bold("node        rank  earliest  latest  float"))
	for v := 0; v < g.Order(); v++ {
		line := fmt.Sprintf("%-10s  %4d  %8d  %6d  %5d",
			table.Label(v), res.Rank[v], res.Earliest[v], res.Latest[v], res.Float[v])
		if res.Float[v] == 0 {
			fmt.Fprintf(w, "%s %s\n", line, boldRed("*"))
		} else {
			fmt.Fprintf(w, "%s\n", line)
		}
	}
	fmt.Fprintf(w, "\n%s %s\n", bold("project duration:"), boldCyan(fmt.Sprintf("%d", res.Duration())))
}

// Matrix writes the weighted adjacency matrix with row/column labels.
// Absent edges print as "." so a genuine zero-weight edge stays visible.
func Matrix(w io.Writer, g *core.Graph, table *core.NodeTable) {
	order := g.Order()

	// Header row of column labels.
	fmt.Fprintf(w, "%-10s", "")
	for v := 0; v < order; v++ {
		fmt.Fprintf(w, " %8s", dim(table.Label(v)))
	}
	fmt.Fprintln(w)

	for u := 0; u < order; u++ {
		fmt.Fprintf(w, "%-10s", table.Label(u))
		for v := 0; v < order; v++ {
			if wgt, ok := g.Weight(u, v); ok {
				fmt.Fprintf(w, " %8s", cyanSprint(fmt.Sprintf("%d", wgt)))
			} else {
				fmt.Fprintf(w, " %8s", absentCell)
			}
		}
		fmt.Fprintln(w)
	}
}

// CriticalPaths writes every enumerated path as an arrow-joined label
// chain. truncated flags a capped enumeration (ErrPathLimit): the list
// is then an incomplete prefix and is marked as such.
func CriticalPaths(w io.Writer, table *core.NodeTable, paths []critical.Path, duration int64, truncated bool) {
	if len(paths) == 0 {
		fmt.Fprintf(w, "%s\n", yellow("no critical path (graph has no tight Start→End chain)"))
		return
	}
	fmt.Fprintf(w, "%s (duration %s)\n",
		bold(fmt.Sprintf("%d critical path(s)", len(paths))),
		boldCyan(fmt.Sprintf("%d", duration)))
	for i, p := range paths {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, green(strings.Join(critical.Labels(p, table), " → ")))
	}
	if truncated {
		fmt.Fprintf(w, "  %s\n", yellow("... enumeration capped; list is truncated"))
	}
}

// Diagnostics writes a validation report: the unschedulable node set
// of each cycle and every negative-weight edge, in engine order.
func Diagnostics(w io.Writer, table *core.NodeTable, report *validate.Report) {
	if report.Ok() {
		fmt.Fprintf(w, "%s\n", boldGreen("graph valid: acyclic, non-negative weights"))
		return
	}
	if len(report.CycleNodes) > 0 {
		labels := make([]string, len(report.CycleNodes))
		for i, v := range report.CycleNodes {
			labels[i] = table.Label(v)
		}
		fmt.Fprintf(w, "%s %s\n",
			boldRed("cycle detected — unschedulable nodes:"),
			strings.Join(labels, ", "))
	}
	if len(report.NegativeEdges) > 0 {
		pairs := make([]string, len(report.NegativeEdges))
		for i, e := range report.NegativeEdges {
			pairs[i] = fmt.Sprintf("%s → %s", table.Label(e[0]), table.Label(e[1]))
		}
		fmt.Fprintf(w, "%s %s\n",
			red("negative edge weight(s):"),
			strings.Join(pairs, ", "))
	}
}
