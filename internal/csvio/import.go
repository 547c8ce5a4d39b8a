package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
)

// MaxImportSize is the file size ceiling for imports.
const MaxImportSize = 5 * 1024 * 1024

// ImportTimeout is the wall-clock processing limit, checked between rows.
const ImportTimeout = 30 * time.Second

// yieldEvery is how many rows are processed between cancellation checks.
const yieldEvery = 100

const (
	minCompletedAge = -2 * 365 * 24 * time.Hour // two years back
	maxCompletedAge = 24 * time.Hour            // one day ahead
	maxDurationSec  = 7200
)

// ImportResult is the outcome of parsing an import file against the
// existing history and task list. Nothing is persisted here; the
// caller decides what to do with the accepted entries.
type ImportResult struct {
	Entries    []domain.HistoryEntry // accepted rows, fresh ids, sanitized
	NewTasks   []domain.Task         // synthesized for unseen task ids
	Skipped    int                   // rows dropped by validation
	Duplicates int                   // rows matching an existing entry
}

// ValidateFile applies the pre-read checks: a literal .csv extension
// and the size ceiling.
func ValidateFile(name string, size int64) error {
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return domain.ErrImportNotCSV
	}
	if size > MaxImportSize {
		return domain.ErrImportTooLarge
	}
	return nil
}

// ParseImport validates and parses an exported history file.
//
// Structural problems (wrong header, wrong column count, forbidden
// separators) reject the whole file. Row-level problems (missing
// fields, bad duration or timestamp, unknown mode) silently skip that
// row. Accepted rows get fresh ids and sanitized text; rows whose
// (taskId, completedAt, duration, mode) key matches existing history
// are dropped as duplicates, and unseen task ids produce synthesized
// tasks that preserve the id the entries reference.
func ParseImport(ctx context.Context, data []byte, history []domain.HistoryEntry, tasks []domain.Task, now time.Time) (*ImportResult, error) {
	if len(data) > MaxImportSize {
		return nil, domain.ErrImportTooLarge
	}
	if err := scanStructure(data); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(history))
	for _, e := range history {
		seen[e.DedupKey()] = true
	}
	knownTasks := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		knownTasks[t.ID] = true
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err != nil || strings.Join(header, ",") != strings.Join(Header, ",") {
		return nil, domain.ErrImportBadFormat
	}

	result := &ImportResult{}
	start := time.Now()
	earliest := now.Add(minCompletedAge)
	latest := now.Add(maxCompletedAge)

	for rows := 0; ; rows++ {
		if time.Since(start) > ImportTimeout {
			return nil, domain.ErrImportTimeout
		}
		if rows%yieldEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrImportBadFormat, err)
		}

		entry, ok := parseRow(record, earliest, latest)
		if !ok {
			result.Skipped++
			continue
		}
		if seen[entry.DedupKey()] {
			result.Duplicates++
			continue
		}
		seen[entry.DedupKey()] = true

		if entry.TaskID != domain.NoTaskID && !knownTasks[entry.TaskID] {
			knownTasks[entry.TaskID] = true
			result.NewTasks = append(result.NewTasks, domain.Task{
				ID:        entry.TaskID,
				Name:      entry.TaskName,
				Color:     domain.NormalizeColor(record[3]),
				CreatedAt: now,
			})
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// scanStructure runs the raw-line checks that reject the whole file:
// no line may carry an alternative separator. Column counts are
// enforced by the quote-aware CSV reader afterwards.
func scanStructure(data []byte) error {
	if strings.ContainsAny(string(data), ";\t|") {
		return domain.ErrImportBadFormat
	}
	return nil
}

// parseRow validates one data record, returning ok=false to skip it.
func parseRow(record []string, earliest, latest time.Time) (domain.HistoryEntry, bool) {
	id, taskID, taskName := record[0], record[1], record[2]
	mode := domain.Mode(record[4])

	if id == "" || taskName == "" || !domain.ValidMode(mode) {
		return domain.HistoryEntry{}, false
	}

	duration, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil || duration < 0 || duration > maxDurationSec {
		return domain.HistoryEntry{}, false
	}

	completedAt, ok := parseTimestamp(strings.TrimSpace(record[6]))
	if !ok || completedAt.Before(earliest) || completedAt.After(latest) {
		return domain.HistoryEntry{}, false
	}

	if taskID == "" {
		taskID = domain.NoTaskID
	}

	name := SanitizeText(taskName)
	if name == "" {
		return domain.HistoryEntry{}, false
	}

	return domain.HistoryEntry{
		ID:          domain.NewID(),
		TaskID:      SanitizeText(taskID),
		TaskName:    name,
		Mode:        mode,
		Duration:    duration,
		CompletedAt: completedAt,
	}, true
}

// parseTimestamp accepts Unix milliseconds (the export format) or
// RFC 3339.
func parseTimestamp(s string) (time.Time, bool) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
