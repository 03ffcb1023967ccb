// Sentinel errors for the builder package. Callers branch with
// errors.Is; the builder wraps each sentinel with the offending IDs.

package builder

import "errors"

// ErrDuplicateTask indicates the input presented the same task ID more
// than once. The wrapped message lists every duplicated ID.
var ErrDuplicateTask = errors.New("builder: duplicate task id")

// ErrBadTaskID indicates a task ID that is not a positive integer.
var ErrBadTaskID = errors.New("builder: task id must be positive")

// ErrUnknownPredecessor indicates a predecessor reference to a task ID
// absent from the input set. The wrapped message lists every dangling
// (task, predecessor) pair.
var ErrUnknownPredecessor = errors.New("builder: predecessor references unknown task")
