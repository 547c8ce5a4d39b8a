package csvio

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomato-timer/tomato/internal/domain"
)

func sampleHistory(now time.Time) []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{
			ID:          "3",
			TaskID:      "task-a",
			TaskName:    "Deep work",
			Mode:        domain.ModeWork,
			Duration:    1500,
			CompletedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:          "2",
			TaskID:      domain.NoTaskID,
			TaskName:    domain.GenericTaskName,
			Mode:        domain.ModeBreak,
			Duration:    300,
			CompletedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:          "1",
			TaskID:      "task-a",
			TaskName:    "Deep work",
			Mode:        domain.ModeWork,
			Duration:    1500,
			CompletedAt: now.Add(-3 * time.Hour),
		},
	}
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "task-a", Name: "Deep work", Color: "#3366ff", CreatedAt: time.Now()},
	}
}

func TestExport_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, nil, nil))
	assert.Equal(t, "id,taskId,taskName,taskColor,mode,duration,completedAt\n", buf.String())
}

func TestExport_ColorJoin(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleHistory(now), sampleTasks()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "#3366ff")
	// the "none" pseudo-task falls back to the default color
	assert.Contains(t, lines[2], domain.DefaultTaskColor)
}

func TestExport_QuotesNames(t *testing.T) {
	now := time.Now()
	history := []domain.HistoryEntry{{
		ID: "1", TaskID: "t", TaskName: `Review "final" draft`,
		Mode: domain.ModeWork, Duration: 1500, CompletedAt: now,
	}}
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, history, nil))
	assert.Contains(t, buf.String(), `"Review ""final"" draft"`)
}

func TestRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	history := sampleHistory(now)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, history, sampleTasks()))

	result, err := ParseImport(context.Background(), buf.Bytes(), nil, nil, now)
	require.NoError(t, err)
	require.Len(t, result.Entries, len(history))
	assert.Zero(t, result.Skipped)
	assert.Zero(t, result.Duplicates)

	want := make(map[string]bool)
	for _, e := range history {
		want[e.DedupKey()] = true
	}
	for _, e := range result.Entries {
		assert.True(t, want[e.DedupKey()], "missing tuple %s", e.DedupKey())
		assert.NotEmpty(t, e.ID)
	}
	// ids are regenerated, never reused
	assert.NotEqual(t, history[0].ID, result.Entries[0].ID)
}

func TestImport_DedupAgainstExisting(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	history := sampleHistory(now)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, history, sampleTasks()))

	result, err := ParseImport(context.Background(), buf.Bytes(), history, sampleTasks(), now)
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Equal(t, len(history), result.Duplicates)
}

func TestImport_SynthesizesTasks(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleHistory(now), sampleTasks()))

	// no existing tasks: task-a must be synthesized with its id intact
	result, err := ParseImport(context.Background(), buf.Bytes(), nil, nil, now)
	require.NoError(t, err)
	require.Len(t, result.NewTasks, 1)
	assert.Equal(t, "task-a", result.NewTasks[0].ID)
	assert.Equal(t, "Deep work", result.NewTasks[0].Name)
	assert.Equal(t, "#3366ff", result.NewTasks[0].Color)
}

func importFile(rows ...string) []byte {
	lines := append([]string{strings.Join(Header, ",")}, rows...)
	return []byte(strings.Join(lines, "\n") + "\n")
}

func row(duration int, completedAt time.Time) string {
	return fmt.Sprintf("r1,t1,Some task,#3366ff,work,%d,%d", duration, completedAt.UnixMilli())
}

func TestImport_DurationBounds(t *testing.T) {
	now := time.Now()

	t.Run("7200 accepted", func(t *testing.T) {
		result, err := ParseImport(context.Background(), importFile(row(7200, now)), nil, nil, now)
		require.NoError(t, err)
		assert.Len(t, result.Entries, 1)
	})

	t.Run("7201 rejected", func(t *testing.T) {
		result, err := ParseImport(context.Background(), importFile(row(7201, now)), nil, nil, now)
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("negative rejected", func(t *testing.T) {
		result, err := ParseImport(context.Background(), importFile(row(-1, now)), nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestImport_TimestampWindow(t *testing.T) {
	now := time.Now()

	cases := map[string]struct {
		at time.Time
		ok bool
	}{
		"yesterday":        {now.Add(-24 * time.Hour), true},
		"three years ago":  {now.AddDate(-3, 0, 0), false},
		"next week":        {now.AddDate(0, 0, 7), false},
		"tomorrow morning": {now.Add(12 * time.Hour), true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := ParseImport(context.Background(), importFile(row(1500, tc.at)), nil, nil, now)
			require.NoError(t, err)
			if tc.ok {
				assert.Len(t, result.Entries, 1)
			} else {
				assert.Equal(t, 1, result.Skipped)
			}
		})
	}
}

func TestImport_RowValidation(t *testing.T) {
	now := time.Now()
	ms := now.UnixMilli()

	bad := map[string]string{
		"missing id":       fmt.Sprintf(",t1,Some task,#3366ff,work,1500,%d", ms),
		"missing taskName": fmt.Sprintf("r1,t1,,#3366ff,work,1500,%d", ms),
		"unknown mode":     fmt.Sprintf("r1,t1,Some task,#3366ff,nap,1500,%d", ms),
		"bad duration":     fmt.Sprintf("r1,t1,Some task,#3366ff,work,soon,%d", ms),
		"bad timestamp":    "r1,t1,Some task,#3366ff,work,1500,someday",
	}
	for name, line := range bad {
		t.Run(name, func(t *testing.T) {
			result, err := ParseImport(context.Background(), importFile(line), nil, nil, now)
			require.NoError(t, err)
			assert.Empty(t, result.Entries)
			assert.Equal(t, 1, result.Skipped)
		})
	}
}

func TestImport_StructuralRejection(t *testing.T) {
	now := time.Now()

	t.Run("wrong header", func(t *testing.T) {
		data := []byte("id,task,name,color,mode,duration,completedAt\n")
		_, err := ParseImport(context.Background(), data, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrImportBadFormat)
	})

	t.Run("semicolon separator", func(t *testing.T) {
		data := importFile("r1;t1;Task;#3366ff;work;1500;0")
		_, err := ParseImport(context.Background(), data, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrImportBadFormat)
	})

	t.Run("wrong column count", func(t *testing.T) {
		data := importFile("r1,t1,Some task,work,1500")
		_, err := ParseImport(context.Background(), data, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrImportBadFormat)
	})

	t.Run("oversized payload", func(t *testing.T) {
		data := make([]byte, MaxImportSize+1)
		_, err := ParseImport(context.Background(), data, nil, nil, now)
		assert.ErrorIs(t, err, domain.ErrImportTooLarge)
	})
}

func TestImport_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParseImport(ctx, importFile(), nil, nil, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidateFile(t *testing.T) {
	assert.NoError(t, ValidateFile("history.csv", 1024))
	assert.NoError(t, ValidateFile("HISTORY.CSV", 1024))
	assert.ErrorIs(t, ValidateFile("history.txt", 1024), domain.ErrImportNotCSV)
	assert.ErrorIs(t, ValidateFile("history.csv", MaxImportSize+1), domain.ErrImportTooLarge)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plain task", "Plain task"},
		{"<script>alert(1)</script>Work", "Work"},
		{"a <b>bold</b> name", "a bold name"},
		{"=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"+441234", "'+441234"},
		{"-minus", "'-minus"},
		{"@handle", "'@handle"},
		{"  spaced  ", "spaced"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeText(tt.in), "input %q", tt.in)
	}

	long := strings.Repeat("x", 300)
	assert.Len(t, SanitizeText(long), 200)
}

func TestImport_SanitizesNames(t *testing.T) {
	now := time.Now()
	line := fmt.Sprintf("r1,t1,<script>alert(1)</script>=SUM(A1),#zzz,work,1500,%d", now.UnixMilli())
	result, err := ParseImport(context.Background(), importFile(line), nil, nil, now)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "'=SUM(A1)", result.Entries[0].TaskName)
	require.Len(t, result.NewTasks, 1)
	assert.Equal(t, domain.DefaultTaskColor, result.NewTasks[0].Color)
}
