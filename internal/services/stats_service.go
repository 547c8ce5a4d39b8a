package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/ports"
	"github.com/tomato-timer/tomato/internal/stats"
)

// StatsService assembles the statistics report for a period.
type StatsService struct {
	store ports.Store
	now   func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(store ports.Store) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

// Report is the full statistics view for one period.
type Report struct {
	Period        string                 `json:"period"`
	TotalSessions int                    `json:"totalSessions"`
	TotalSeconds  int                    `json:"totalSeconds"`
	Streaks       stats.StreakData       `json:"streaks"`
	Heatmap       stats.HeatmapData      `json:"heatmap"`
	Weekdays      []stats.WeekdayStat    `json:"weekdays"`
	TimeBlocks    []stats.TimeBlock      `json:"timeBlocks"`
	Tasks         []stats.TaskShare      `json:"tasks"`
	WeekOverWeek  stats.WeeklyComparison `json:"weekOverWeek"`
	Goals         stats.GoalProgress     `json:"goals"`
}

// Report computes all aggregations over the history for the period.
func (s *StatsService) Report(ctx context.Context, period string) (*Report, error) {
	now := s.now()
	r, err := stats.ResolveRange(period, now)
	if err != nil {
		return nil, err
	}

	history, err := s.store.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	settings, err := s.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	sessions, seconds := stats.Totals(filterRange(history, r))
	return &Report{
		Period:        period,
		TotalSessions: sessions,
		TotalSeconds:  seconds,
		Streaks:       stats.Streaks(history, now),
		Heatmap:       stats.Heatmap(history, r),
		Weekdays:      stats.ByWeekday(history, r),
		TimeBlocks:    stats.ByTimeBlock(history, r),
		Tasks:         stats.TaskDistribution(history, r),
		WeekOverWeek:  stats.CompareWeeks(history, now),
		Goals:         stats.Goals(history, settings, now),
	}, nil
}

func filterRange(history []domain.HistoryEntry, r stats.Range) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(history))
	for _, e := range history {
		if r.Contains(e.CompletedAt) {
			out = append(out, e)
		}
	}
	return out
}
