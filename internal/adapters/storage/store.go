package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/ports"
)

// Logical keys in the key-value store.
const (
	KeyTasks       = "tomato_tasks"
	KeyHistory     = "tomato_history"
	KeySettings    = "tomato_settings"
	KeyCurrentTask = "tomato_current_task"
	KeyTimerState  = "tomato_timer_state"
	KeyLastImport  = "tomato_last_import"
)

// store implements ports.Store over a ports.KV with JSON encoding.
type store struct {
	kv ports.KV
}

var _ ports.Store = (*store)(nil)

// NewStore wraps a key-value store with the typed record accessors.
func NewStore(kv ports.KV) ports.Store {
	return &store{kv: kv}
}

// New opens the SQLite-backed typed store at dbPath.
func New(dbPath string) (ports.Store, error) {
	kv, err := NewKV(dbPath)
	if err != nil {
		return nil, err
	}
	return NewStore(kv), nil
}

// NewMemory creates an in-memory typed store for testing.
func NewMemory() (ports.Store, error) {
	kv, err := NewMemoryKV()
	if err != nil {
		return nil, err
	}
	return NewStore(kv), nil
}

func (s *store) Tasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.load(ctx, KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	return s.save(ctx, KeyTasks, tasks)
}

func (s *store) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	var history []domain.HistoryEntry
	if err := s.load(ctx, KeyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *store) SaveHistory(ctx context.Context, history []domain.HistoryEntry) error {
	return s.save(ctx, KeyHistory, history)
}

// AppendHistory prepends the entry, keeping the list newest-first.
func (s *store) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	history, err := s.History(ctx)
	if err != nil {
		return err
	}
	history = append([]domain.HistoryEntry{entry}, history...)
	return s.SaveHistory(ctx, history)
}

// SaveTasksAndHistory persists both records in one transaction, so an
// import cannot leave tasks saved while history is not.
func (s *store) SaveTasksAndHistory(ctx context.Context, tasks []domain.Task, history []domain.HistoryEntry) error {
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return s.kv.SetMany(ctx, map[string]string{
		KeyTasks:   string(tasksJSON),
		KeyHistory: string(historyJSON),
	})
}

func (s *store) Settings(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	value, ok, err := s.kv.Get(ctx, KeySettings)
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func (s *store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.save(ctx, KeySettings, settings)
}

func (s *store) CurrentTaskID(ctx context.Context) (string, error) {
	value, _, err := s.kv.Get(ctx, KeyCurrentTask)
	return value, err
}

// SetCurrentTaskID stores the selection; an empty id clears it.
func (s *store) SetCurrentTaskID(ctx context.Context, id string) error {
	if id == "" {
		return s.kv.Remove(ctx, KeyCurrentTask)
	}
	return s.kv.Set(ctx, KeyCurrentTask, id)
}

func (s *store) TimerState(ctx context.Context) (domain.TimerState, bool, error) {
	var state domain.TimerState
	value, ok, err := s.kv.Get(ctx, KeyTimerState)
	if err != nil || !ok {
		return state, false, err
	}
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return state, false, fmt.Errorf("failed to decode timer state: %w", err)
	}
	return state, true, nil
}

func (s *store) SaveTimerState(ctx context.Context, state domain.TimerState) error {
	return s.save(ctx, KeyTimerState, state)
}

func (s *store) LastImportAt(ctx context.Context) (time.Time, error) {
	value, ok, err := s.kv.Get(ctx, KeyLastImport)
	if err != nil || !ok {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to decode %q: %w", KeyLastImport, err)
	}
	return ts, nil
}

func (s *store) SetLastImportAt(ctx context.Context, t time.Time) error {
	return s.kv.Set(ctx, KeyLastImport, t.Format(time.RFC3339Nano))
}

func (s *store) Close() error {
	return s.kv.Close()
}

// load unmarshals the JSON value at key into dst, leaving dst untouched
// when the key is absent.
func (s *store) load(ctx context.Context, key string, dst any) error {
	value, ok, err := s.kv.Get(ctx, key)
	if err != nil || !ok {
		return err
	}
	if err := json.Unmarshal([]byte(value), dst); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

func (s *store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(data))
}
