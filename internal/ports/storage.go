// Package ports defines the interfaces (driven and driving ports)
// for the Tomato application following hexagonal architecture
// principles. These interfaces define the contracts between the domain
// layer and external infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
)

// KV is the raw key-value persistence contract. Values are opaque
// strings; last write wins. This is a driven port (implemented by
// adapters).
type KV interface {
	// Get returns the value for key, or ok=false if absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// SetMany stores all pairs in a single transaction, so multi-key
	// updates (tasks plus history on import) commit together or not
	// at all.
	SetMany(ctx context.Context, pairs map[string]string) error

	// Close releases the underlying store.
	Close() error
}

// Store provides typed access to the logical records kept in the
// KV store. This is a driven port (implemented by adapters).
type Store interface {
	Tasks(ctx context.Context) ([]domain.Task, error)
	SaveTasks(ctx context.Context, tasks []domain.Task) error

	// History returns all entries, newest first.
	History(ctx context.Context) ([]domain.HistoryEntry, error)
	SaveHistory(ctx context.Context, history []domain.HistoryEntry) error

	// AppendHistory prepends an entry, keeping newest-first order.
	AppendHistory(ctx context.Context, entry domain.HistoryEntry) error

	// SaveTasksAndHistory persists both records atomically.
	SaveTasksAndHistory(ctx context.Context, tasks []domain.Task, history []domain.HistoryEntry) error

	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// CurrentTaskID returns the selected task id, or "" if none.
	CurrentTaskID(ctx context.Context) (string, error)
	SetCurrentTaskID(ctx context.Context, id string) error

	// TimerState returns the persisted countdown state, ok=false on a
	// cold start.
	TimerState(ctx context.Context) (domain.TimerState, bool, error)
	SaveTimerState(ctx context.Context, state domain.TimerState) error

	// LastImportAt returns when the last import ran, zero if never.
	// Persisted so the import rate limit spans processes.
	LastImportAt(ctx context.Context) (time.Time, error)
	SetLastImportAt(ctx context.Context, t time.Time) error

	Close() error
}
