package storage

import (
	"context"
	"testing"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/ports"
)

func setupTestStore(t *testing.T) (ports.Store, func()) {
	t.Helper()
	store, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	return store, func() { _ = store.Close() }
}

func TestKV_GetSetRemove(t *testing.T) {
	kv, err := NewMemoryKV()
	if err != nil {
		t.Fatalf("NewMemoryKV() error = %v", err)
	}
	defer kv.Close()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() on missing key reported ok")
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	value, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", value, ok, err)
	}
	if value != "v2" {
		t.Errorf("Get() = %q, want last write v2", value)
	}

	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Errorf("Remove() on absent key error = %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Error("key still present after Remove()")
	}
}

func TestKV_SetMany(t *testing.T) {
	kv, err := NewMemoryKV()
	if err != nil {
		t.Fatalf("NewMemoryKV() error = %v", err)
	}
	defer kv.Close()
	ctx := context.Background()

	pairs := map[string]string{"a": "1", "b": "2", "c": "3"}
	if err := kv.SetMany(ctx, pairs); err != nil {
		t.Fatalf("SetMany() error = %v", err)
	}
	for k, want := range pairs {
		got, ok, _ := kv.Get(ctx, k)
		if !ok || got != want {
			t.Errorf("Get(%q) = %q, %v, want %q", k, got, ok, want)
		}
	}
}

func TestStore_TasksRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	tasks, err := store.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("fresh store has %d tasks", len(tasks))
	}

	task, _ := domain.NewTask("Write tests", "#3366ff")
	if err := store.SaveTasks(ctx, []domain.Task{*task}); err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}

	tasks, err = store.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Write tests" {
		t.Errorf("Tasks() = %+v", tasks)
	}
}

func TestStore_AppendHistoryNewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	older := domain.HistoryEntry{
		ID: "1", TaskID: domain.NoTaskID, TaskName: domain.GenericTaskName,
		Mode: domain.ModeWork, Duration: 1500, CompletedAt: time.Now().Add(-time.Hour),
	}
	newer := older
	newer.ID = "2"
	newer.CompletedAt = time.Now()

	if err := store.AppendHistory(ctx, older); err != nil {
		t.Fatalf("AppendHistory() error = %v", err)
	}
	if err := store.AppendHistory(ctx, newer); err != nil {
		t.Fatalf("AppendHistory() error = %v", err)
	}

	history, err := store.History(ctx)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History() length = %d, want 2", len(history))
	}
	if history[0].ID != "2" {
		t.Errorf("History()[0].ID = %q, want newest first", history[0].ID)
	}
}

func TestStore_SettingsDefaults(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	settings, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if settings != domain.DefaultSettings() {
		t.Errorf("fresh store settings = %+v, want defaults", settings)
	}

	settings.WorkDuration = 50
	settings.DailyGoal = 8
	if err := store.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	loaded, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings() error = %v", err)
	}
	if loaded != settings {
		t.Errorf("Settings() = %+v, want %+v", loaded, settings)
	}
}

func TestStore_CurrentTask(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	id, err := store.CurrentTaskID(ctx)
	if err != nil {
		t.Fatalf("CurrentTaskID() error = %v", err)
	}
	if id != "" {
		t.Errorf("fresh store current task = %q", id)
	}

	if err := store.SetCurrentTaskID(ctx, "t1"); err != nil {
		t.Fatalf("SetCurrentTaskID() error = %v", err)
	}
	if id, _ = store.CurrentTaskID(ctx); id != "t1" {
		t.Errorf("CurrentTaskID() = %q, want t1", id)
	}

	if err := store.SetCurrentTaskID(ctx, ""); err != nil {
		t.Fatalf("SetCurrentTaskID(\"\") error = %v", err)
	}
	if id, _ = store.CurrentTaskID(ctx); id != "" {
		t.Errorf("CurrentTaskID() after clear = %q", id)
	}
}

func TestStore_TimerState(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, ok, err := store.TimerState(ctx)
	if err != nil {
		t.Fatalf("TimerState() error = %v", err)
	}
	if ok {
		t.Error("fresh store reported a persisted timer state")
	}

	state := domain.TimerState{Mode: domain.ModeBreak, TimeLeft: 120, IsRunning: true, Sessions: 5}
	if err := store.SaveTimerState(ctx, state); err != nil {
		t.Fatalf("SaveTimerState() error = %v", err)
	}

	loaded, ok, err := store.TimerState(ctx)
	if err != nil || !ok {
		t.Fatalf("TimerState() = %v, %v", ok, err)
	}
	if loaded != state {
		t.Errorf("TimerState() = %+v, want %+v", loaded, state)
	}
}

func TestStore_LastImportAt(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	ts, err := store.LastImportAt(ctx)
	if err != nil {
		t.Fatalf("LastImportAt() error = %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("fresh store LastImportAt() = %v, want zero", ts)
	}

	now := time.Now()
	if err := store.SetLastImportAt(ctx, now); err != nil {
		t.Fatalf("SetLastImportAt() error = %v", err)
	}

	loaded, err := store.LastImportAt(ctx)
	if err != nil {
		t.Fatalf("LastImportAt() error = %v", err)
	}
	if !loaded.Equal(now) {
		t.Errorf("LastImportAt() = %v, want %v", loaded, now)
	}
}

func TestStore_SaveTasksAndHistoryTogether(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	task, _ := domain.NewTask("Imported", "#3366ff")
	entry := domain.HistoryEntry{
		ID: "1", TaskID: task.ID, TaskName: task.Name,
		Mode: domain.ModeWork, Duration: 1500, CompletedAt: time.Now(),
	}

	if err := store.SaveTasksAndHistory(ctx, []domain.Task{*task}, []domain.HistoryEntry{entry}); err != nil {
		t.Fatalf("SaveTasksAndHistory() error = %v", err)
	}

	tasks, _ := store.Tasks(ctx)
	history, _ := store.History(ctx)
	if len(tasks) != 1 || len(history) != 1 {
		t.Errorf("got %d tasks, %d history entries, want 1 and 1", len(tasks), len(history))
	}
}
