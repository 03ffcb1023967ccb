// Package critpath is a Critical Path Method (CPM) engine for task
// precedence graphs: given tasks with durations and predecessor sets it
// builds an indexed weighted DAG with synthetic Start/End anchors,
// validates it, and derives the full scheduling picture — topological
// rank, earliest/latest start dates, per-node float, and every
// zero-float path from Start to End.
//
// The engine is organized as small, print-free subpackages that feed
// each other strictly forward:
//
//	core/     — Task, dense-index Graph, NodeTable (index ↔ original id)
//	builder/  — task set → validated graph with Start/End wiring
//	validate/ — cycle & negative-weight checks, full diagnostic report
//	schedule/ — rank, earliest, latest, float (forward/backward passes)
//	critical/ — enumeration of all tight Start→End paths
//	taskfile/ — whitespace-delimited constraint file parser
//	render/   — terminal presentation of matrices, tables and paths
//
// A thin CLI lives in cmd/critpath. The algorithmic packages never
// write to the console: validation and scheduling return structured
// data, and the presentation layer decides how to show it.
//
//	go get github.com/katalvlaran/critpath
package critpath
