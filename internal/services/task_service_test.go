package services

import (
	"context"
	"testing"

	"github.com/tomato-timer/tomato/internal/domain"
)

func TestTaskService_AddTask(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewTaskService(store)
	ctx := context.Background()

	t.Run("add valid task", func(t *testing.T) {
		task, err := service.AddTask(ctx, "Write docs", "#4ECDC4")
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task.Name != "Write docs" || task.Color != "#4ECDC4" {
			t.Errorf("AddTask() = %+v", task)
		}
		if task.ID == "" {
			t.Error("AddTask() should assign an id")
		}
	})

	t.Run("invalid color falls back to default", func(t *testing.T) {
		task, err := service.AddTask(ctx, "Misc", "not-a-color")
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task.Color != domain.DefaultTaskColor {
			t.Errorf("AddTask() color = %v, want %v", task.Color, domain.DefaultTaskColor)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := service.AddTask(ctx, "", ""); err != domain.ErrEmptyTaskName {
			t.Errorf("AddTask() error = %v, want ErrEmptyTaskName", err)
		}
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewTaskService(store)
	ctx := context.Background()

	for _, name := range []string{"Write report", "Review code", "Reply to email"} {
		if _, err := service.AddTask(ctx, name, ""); err != nil {
			t.Fatalf("AddTask(%q) error = %v", name, err)
		}
	}

	t.Run("list all", func(t *testing.T) {
		tasks, err := service.ListTasks(ctx, "")
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if len(tasks) != 3 {
			t.Errorf("ListTasks() returned %d tasks, want 3", len(tasks))
		}
	})

	t.Run("fuzzy filter", func(t *testing.T) {
		tasks, err := service.ListTasks(ctx, "report")
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if len(tasks) != 1 || tasks[0].Name != "Write report" {
			t.Errorf("ListTasks(report) = %v, want only Write report", tasks)
		}
	})
}

func TestTaskService_UseAndClear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewTaskService(store)
	ctx := context.Background()

	task, err := service.AddTask(ctx, "Deep work", "")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	t.Run("use by name", func(t *testing.T) {
		selected, err := service.UseTask(ctx, "Deep work")
		if err != nil {
			t.Fatalf("UseTask() error = %v", err)
		}
		if selected.ID != task.ID {
			t.Errorf("UseTask() selected %v, want %v", selected.ID, task.ID)
		}
		current, err := service.CurrentTask(ctx)
		if err != nil {
			t.Fatalf("CurrentTask() error = %v", err)
		}
		if current == nil || current.ID != task.ID {
			t.Errorf("CurrentTask() = %v, want %v", current, task.ID)
		}
	})

	t.Run("use unknown task", func(t *testing.T) {
		if _, err := service.UseTask(ctx, "no-such-task"); err != domain.ErrTaskNotFound {
			t.Errorf("UseTask() error = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("clear selection", func(t *testing.T) {
		if err := service.ClearTask(ctx); err != nil {
			t.Fatalf("ClearTask() error = %v", err)
		}
		current, err := service.CurrentTask(ctx)
		if err != nil {
			t.Fatalf("CurrentTask() error = %v", err)
		}
		if current != nil {
			t.Errorf("CurrentTask() = %v, want nil", current)
		}
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	service := NewTaskService(store)
	ctx := context.Background()

	task, err := service.AddTask(ctx, "Doomed", "")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := service.UseTask(ctx, task.ID); err != nil {
		t.Fatalf("UseTask() error = %v", err)
	}

	t.Run("delete clears selection", func(t *testing.T) {
		if err := service.DeleteTask(ctx, task.ID); err != nil {
			t.Fatalf("DeleteTask() error = %v", err)
		}
		current, err := service.CurrentTask(ctx)
		if err != nil {
			t.Fatalf("CurrentTask() error = %v", err)
		}
		if current != nil {
			t.Errorf("CurrentTask() = %v, want nil after delete", current)
		}
	})

	t.Run("delete unknown task", func(t *testing.T) {
		if err := service.DeleteTask(ctx, "missing"); err != domain.ErrTaskNotFound {
			t.Errorf("DeleteTask() error = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("history survives the delete", func(t *testing.T) {
		entry := domain.HistoryEntry{
			ID:       domain.NewID(),
			TaskID:   task.ID,
			TaskName: task.Name,
			Mode:     domain.ModeWork,
			Duration: 1500,
		}
		if err := store.AppendHistory(ctx, entry); err != nil {
			t.Fatalf("AppendHistory() error = %v", err)
		}
		history, err := store.History(ctx)
		if err != nil {
			t.Fatalf("History() error = %v", err)
		}
		if len(history) != 1 || history[0].TaskID != task.ID {
			t.Errorf("History() = %v, want the orphaned entry kept", history)
		}
	})
}
