// Package taskfile reads whitespace-delimited constraint files into
// the core.Task model.
//
// Format, one task per line:
//
//	<task_id> <duration> [<predecessor_id> ...]
//
// Blank lines are skipped, and everything from a '#' to the end of the
// line is a comment. Fields are integers separated by any run of
// spaces or tabs.
//
// The parser is deliberately only syntactic: it guarantees integer
// fields and the id/duration minimum per line, nothing more. Semantic
// checks — unique positive IDs, predecessor referential integrity —
// belong to the builder, so tasks are returned in file order with
// duplicates intact for the builder to report.
//
// Errors:
//
//	ErrSyntax - malformed line; wrapped with the 1-based line number.
package taskfile
