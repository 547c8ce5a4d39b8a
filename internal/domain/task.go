package domain

import (
	"regexp"
	"time"
)

// NoTaskID is the sentinel task id for sessions completed without a
// selected task.
const NoTaskID = "none"

// GenericTaskName is the display name used for sessions without a task.
const GenericTaskName = "Generic"

// DefaultTaskColor is the fallback color for tasks with a missing or
// invalid color.
const DefaultTaskColor = "#d95550"

var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Task represents a user-defined activity that work sessions can be
// attributed to. Tasks are never mutated after creation.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTask creates a new task with the given name and color.
func NewTask(name, color string) (*Task, error) {
	if name == "" {
		return nil, ErrEmptyTaskName
	}
	return &Task{
		ID:        NewID(),
		Name:      name,
		Color:     NormalizeColor(color),
		CreatedAt: time.Now(),
	}, nil
}

// NormalizeColor validates a hex color, returning DefaultTaskColor when
// the input does not match a strict 6-hex-digit pattern. A missing
// leading "#" is tolerated and added.
func NormalizeColor(color string) string {
	if !hexColorPattern.MatchString(color) {
		return DefaultTaskColor
	}
	if color[0] != '#' {
		return "#" + color
	}
	return color
}
