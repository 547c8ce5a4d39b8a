package domain

import (
	"fmt"
	"time"
)

// HistoryEntry records one completed timer session. Entries are
// immutable once created and are kept newest-first.
//
// TaskName is a denormalized snapshot taken at completion time, so
// history survives task deletion. GitBranch and GitCommit are optional
// context captured when the session completed inside a git worktree;
// they are not part of the CSV exchange format.
type HistoryEntry struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	TaskName    string    `json:"taskName"`
	Mode        Mode      `json:"mode"`
	Duration    int       `json:"duration"` // seconds
	CompletedAt time.Time `json:"completedAt"`
	GitBranch   string    `json:"gitBranch,omitempty"`
	GitCommit   string    `json:"gitCommit,omitempty"`
}

// DedupKey returns the composite key used to detect duplicate entries
// during import: (taskId, completedAt, duration, mode).
func (e HistoryEntry) DedupKey() string {
	return fmt.Sprintf("%s|%d|%d|%s", e.TaskID, e.CompletedAt.UnixMilli(), e.Duration, e.Mode)
}

// IsWork reports whether the entry counts toward statistics and goals.
func (e HistoryEntry) IsWork() bool {
	return e.Mode == ModeWork
}
