package services

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/ports"
)

// TaskService handles task-related use cases.
type TaskService struct {
	store ports.Store
}

// NewTaskService creates a new task service.
func NewTaskService(store ports.Store) *TaskService {
	return &TaskService{store: store}
}

// AddTask creates a new task and appends it to the task list.
func (s *TaskService) AddTask(ctx context.Context, name, color string) (*domain.Task, error) {
	task, err := domain.NewTask(name, color)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	tasks = append(tasks, *task)

	if err := s.store.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}
	return task, nil
}

// ListTasks returns all tasks, optionally fuzzy-filtered by name.
func (s *TaskService) ListTasks(ctx context.Context, filter string) ([]domain.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	if filter == "" {
		return tasks, nil
	}

	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Name
	}
	matches := fuzzy.Find(filter, names)

	filtered := make([]domain.Task, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, tasks[m.Index])
	}
	return filtered, nil
}

// FindTask resolves a task by id, or by exact name when no id matches.
func (s *TaskService) FindTask(ctx context.Context, idOrName string) (*domain.Task, error) {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == idOrName {
			return &tasks[i], nil
		}
	}
	for i := range tasks {
		if tasks[i].Name == idOrName {
			return &tasks[i], nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// DeleteTask removes a task. History entries attributed to it are kept;
// if it was the selected task, the selection is cleared.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	kept := tasks[:0]
	found := false
	for _, task := range tasks {
		if task.ID == id {
			found = true
			continue
		}
		kept = append(kept, task)
	}
	if !found {
		return domain.ErrTaskNotFound
	}

	if err := s.store.SaveTasks(ctx, kept); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	current, err := s.store.CurrentTaskID(ctx)
	if err != nil {
		return fmt.Errorf("failed to load current task: %w", err)
	}
	if current == id {
		return s.store.SetCurrentTaskID(ctx, "")
	}
	return nil
}

// UseTask selects the task future work sessions are attributed to.
func (s *TaskService) UseTask(ctx context.Context, idOrName string) (*domain.Task, error) {
	task, err := s.FindTask(ctx, idOrName)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentTaskID(ctx, task.ID); err != nil {
		return nil, fmt.Errorf("failed to set current task: %w", err)
	}
	return task, nil
}

// ClearTask deselects the current task.
func (s *TaskService) ClearTask(ctx context.Context) error {
	return s.store.SetCurrentTaskID(ctx, "")
}

// CurrentTask returns the selected task, or nil if none is selected.
func (s *TaskService) CurrentTask(ctx context.Context) (*domain.Task, error) {
	id, err := s.store.CurrentTaskID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current task: %w", err)
	}
	if id == "" {
		return nil, nil
	}
	task, err := s.FindTask(ctx, id)
	if err == domain.ErrTaskNotFound {
		// Stale selection, e.g. the task list was replaced by an import.
		return nil, nil
	}
	return task, err
}
