// Parse / ParseFile: constraint file → []core.Task, syntactic checks only.

package taskfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/critpath/core"
)

// ErrSyntax indicates a malformed constraint line. The wrapped message
// carries the 1-based line number and the offending field.
var ErrSyntax = errors.New("taskfile: malformed line")

const commentMarker = "#"

// Parse reads constraint lines from r and returns the tasks in file
// order. Semantic validation (duplicates, dangling predecessors) is
// left to builder.FromTasks.
// Complexity: O(total input length).
func Parse(r io.Reader) ([]core.Task, error) {
	var tasks []core.Task
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Strip comments, then whitespace; skip what remains empty.
		if cut := strings.Index(line, commentMarker); cut >= 0 {
			line = line[:cut]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w %d: need at least <id> <duration>, got %q", ErrSyntax, lineNo, line)
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w %d: task id %q is not an integer", ErrSyntax, lineNo, fields[0])
		}
		duration, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: duration %q is not an integer", ErrSyntax, lineNo, fields[1])
		}

		var preds []int
		for _, field := range fields[2:] {
			pred, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w %d: predecessor %q is not an integer", ErrSyntax, lineNo, field)
			}
			preds = append(preds, pred)
		}

		tasks = append(tasks, core.Task{ID: id, Duration: duration, Predecessors: preds})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("taskfile: read: %w", err)
	}

	return tasks, nil
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) ([]core.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("taskfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
