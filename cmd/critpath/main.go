// Command critpath runs critical path analysis over whitespace-
// delimited constraint files.
//
// Subcommands:
//
//	analyze  - full report: validation, schedule table, critical paths
//	paths    - critical paths only
//	matrix   - weighted adjacency matrix dump
//
// With no file arguments, analyze drops into an interactive loop that
// prompts for one file per run; a blank line exits. Validation errors
// are reported and the loop keeps going — a bad file never ends the
// session.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/critpath/builder"
	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/critical"
	"github.com/katalvlaran/critpath/render"
	"github.com/katalvlaran/critpath/schedule"
	"github.com/katalvlaran/critpath/taskfile"
	"github.com/katalvlaran/critpath/validate"
)

var (
	flagMaxPaths int
	flagJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "critpath",
		Short: "Critical path method analysis over task constraint files",
		Long: `critpath reads task constraint files (one "<id> <duration> [<pred>...]"
line per task), builds the precedence graph with synthetic Start/End
anchors, validates it, and reports topological rank, earliest/latest
dates, float, and every zero-float path from Start to End.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().IntVar(&flagMaxPaths, "max-paths", critical.DefaultMaxPaths,
		"Cap on enumerated critical paths (<= 0 removes the cap)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false,
		"Machine-readable JSON output")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(pathsCmd())
	rootCmd.AddCommand(matrixCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Validate, schedule, and report critical paths (interactive without args)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return interactiveLoop(cmd.OutOrStdout())
			}
			var failed bool
			for _, path := range args {
				if err := runFile(cmd.OutOrStdout(), path, modeAnalyze); err != nil {
					reportError(cmd.ErrOrStderr(), path, err)
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("analysis failed for at least one file")
			}

			return nil
		},
	}
}

func pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths <file>",
		Short: "Print only the critical paths of a constraint file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd.OutOrStdout(), args[0], modePaths)
		},
	}
}

func matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <file>",
		Short: "Print the weighted adjacency matrix of a constraint file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd.OutOrStdout(), args[0], modeMatrix)
		},
	}
}

// Report modes select which slices of the analysis get rendered.
const (
	modeAnalyze = iota
	modePaths
	modeMatrix
)

// jsonReport is the machine-readable analysis shape for --json.
type jsonReport struct {
	File     string     `json:"file"`
	Duration int64      `json:"duration"`
	Nodes    []jsonNode `json:"nodes"`
	Paths    [][]string `json:"critical_paths"`
	Capped   bool       `json:"paths_truncated,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

type jsonNode struct {
	Label    string `json:"label"`
	Rank     int    `json:"rank"`
	Earliest int64  `json:"earliest"`
	Latest   int64  `json:"latest"`
	Float    int64  `json:"float"`
}

// runFile executes one full invocation over a single constraint file:
// parse → build → validate → schedule → extract, rendering per mode.
// Validation failures render diagnostics and skip scheduling, mirroring
// the engine contract; they are not treated as process errors.
func runFile(w io.Writer, path string, mode int) error {
	tasks, err := taskfile.ParseFile(path)
	if err != nil {
		return err
	}

	g, table, err := builder.FromTasks(tasks)
	if err != nil {
		return err
	}

	if mode == modeMatrix {
		render.Matrix(w, g, table)
		return nil
	}

	report, err := validate.Check(g)
	if err != nil {
		return err
	}
	if !report.Ok() {
		if flagJSON {
			return writeJSON(w, jsonReport{File: path, Errors: diagnosticStrings(table, report)})
		}
		render.Diagnostics(w, table, report)

		return nil // diagnostics reported; scheduling skipped, session intact
	}

	res, err := schedule.Compute(g)
	if err != nil {
		return err
	}

	paths, err := critical.Paths(g, res, critical.WithMaxPaths(flagMaxPaths))
	truncated := errors.Is(err, critical.ErrPathLimit)
	if err != nil && !truncated {
		return err
	}

	if flagJSON {
		return writeJSON(w, buildJSONReport(path, g, table, res, paths, truncated))
	}

	if mode == modeAnalyze {
		render.Diagnostics(w, table, report)
		fmt.Fprintln(w)
		render.Schedule(w, g, table, res)
		fmt.Fprintln(w)
	}
	render.CriticalPaths(w, table, paths, res.Duration(), truncated)

	return nil
}

// interactiveLoop prompts for one constraint file per run until a blank
// line or EOF. Per-file failures are reported and the loop continues.
func interactiveLoop(w io.Writer) error {
	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.Bold, color.FgCyan).SprintFunc()
	for {
		fmt.Fprintf(w, "%s ", prompt("constraint file (blank to quit):"))
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		path := scanner.Text()
		if path == "" {
			return nil
		}
		if err := runFile(w, path, modeAnalyze); err != nil {
			reportError(w, path, err)
		}
		fmt.Fprintln(w)
	}
}

// reportError prints a one-line styled failure for a file.
func reportError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", color.New(color.Bold, color.FgRed).Sprint("error:"), path, err)
}

func buildJSONReport(path string, g *core.Graph, table *core.NodeTable,
	res *schedule.Result, paths []critical.Path, truncated bool) jsonReport {
	out := jsonReport{
		File:     path,
		Duration: res.Duration(),
		Capped:   truncated,
		Paths:    make([][]string, 0, len(paths)),
	}
	for v := 0; v < g.Order(); v++ {
		out.Nodes = append(out.Nodes, jsonNode{
			Label:    table.Label(v),
			Rank:     res.Rank[v],
			Earliest: res.Earliest[v],
			Latest:   res.Latest[v],
			Float:    res.Float[v],
		})
	}
	for _, p := range paths {
		out.Paths = append(out.Paths, critical.Labels(p, table))
	}

	return out
}

// diagnosticStrings flattens a failed validation report for JSON output.
func diagnosticStrings(table *core.NodeTable, report *validate.Report) []string {
	var msgs []string
	for _, v := range report.CycleNodes {
		msgs = append(msgs, fmt.Sprintf("unschedulable: %s", table.Label(v)))
	}
	for _, e := range report.NegativeEdges {
		msgs = append(msgs, fmt.Sprintf("negative weight: %s → %s", table.Label(e[0]), table.Label(e[1])))
	}

	return msgs
}

func writeJSON(w io.Writer, report jsonReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
