// Package csvio implements the CSV exchange format for session
// history. The seven-column header is the one bit-exact boundary
// contract in the system; import applies validation, sanitization, and
// deduplication before anything is accepted.
package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tomato-timer/tomato/internal/domain"
)

// Header is the exact column list of the exchange format.
var Header = []string{"id", "taskId", "taskName", "taskColor", "mode", "duration", "completedAt"}

// Export writes the full history as CSV. taskColor is resolved by
// joining taskId against the current task list, falling back to the
// default color when the task no longer exists. completedAt is written
// as Unix milliseconds.
func Export(w io.Writer, history []domain.HistoryEntry, tasks []domain.Task) error {
	colors := make(map[string]string, len(tasks))
	for _, t := range tasks {
		colors[t.ID] = t.Color
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range history {
		color, ok := colors[e.TaskID]
		if !ok {
			color = domain.DefaultTaskColor
		}
		record := []string{
			e.ID,
			e.TaskID,
			e.TaskName,
			color,
			string(e.Mode),
			strconv.Itoa(e.Duration),
			strconv.FormatInt(e.CompletedAt.UnixMilli(), 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
