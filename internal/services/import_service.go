package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/tomato-timer/tomato/internal/csvio"
	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/ports"
)

// importCooldown is the minimum gap between import attempts.
const importCooldown = 5 * time.Second

// confirmThreshold is the entry count above which an import requires
// explicit confirmation before anything is persisted.
const confirmThreshold = 100

// ImportService handles history export and import.
type ImportService struct {
	mu    sync.Mutex
	store ports.Store
	now   func() time.Time
}

// NewImportService creates a new import service.
func NewImportService(store ports.Store) *ImportService {
	return &ImportService{store: store, now: time.Now}
}

// ImportSummary reports what an import did.
type ImportSummary struct {
	Imported   int `json:"imported"`
	NewTasks   int `json:"newTasks"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

// Export writes the full history as CSV.
func (s *ImportService) Export(ctx context.Context, w io.Writer) error {
	history, err := s.store.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	return csvio.Export(w, history, tasks)
}

// ImportFile reads and imports a CSV file from disk. When confirmed is
// false and the file holds more than confirmThreshold new entries, it
// returns ErrImportNeedsConfirm without persisting anything.
func (s *ImportService) ImportFile(ctx context.Context, path string, confirmed bool) (*ImportSummary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat import file: %w", err)
	}
	if err := csvio.ValidateFile(info.Name(), info.Size()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return s.Import(ctx, data, confirmed)
}

// Import parses and persists an exported history file. The whole
// import commits atomically: either every accepted entry and
// synthesized task lands, or nothing does.
func (s *ImportService) Import(ctx context.Context, data []byte, confirmed bool) (*ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The attempt timestamp is persisted so the cooldown holds across
	// separate CLI invocations, not just within one process.
	now := s.now()
	last, err := s.store.LastImportAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load last import time: %w", err)
	}
	if !last.IsZero() && now.Sub(last) < importCooldown {
		return nil, domain.ErrImportRateLimit
	}
	if err := s.store.SetLastImportAt(ctx, now); err != nil {
		return nil, fmt.Errorf("failed to record import time: %w", err)
	}

	history, err := s.store.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	tasks, err := s.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	result, err := csvio.ParseImport(ctx, data, history, tasks, now)
	if err != nil {
		return nil, err
	}
	if !confirmed && len(result.Entries) > confirmThreshold {
		return nil, domain.ErrImportNeedsConfirm
	}

	summary := &ImportSummary{
		Imported:   len(result.Entries),
		NewTasks:   len(result.NewTasks),
		Skipped:    result.Skipped,
		Duplicates: result.Duplicates,
	}
	if len(result.Entries) == 0 && len(result.NewTasks) == 0 {
		return summary, nil
	}

	merged := append(history, result.Entries...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CompletedAt.After(merged[j].CompletedAt)
	})
	tasks = append(tasks, result.NewTasks...)

	if err := s.store.SaveTasksAndHistory(ctx, tasks, merged); err != nil {
		return nil, fmt.Errorf("failed to persist import: %w", err)
	}
	return summary, nil
}
