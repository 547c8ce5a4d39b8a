package stats

import (
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
)

// WeekStats summarizes one Monday-start week of work sessions.
type WeekStats struct {
	Sessions int     `json:"sessions"`
	Hours    float64 `json:"hours"`
}

// WeeklyComparison contrasts the current week with the previous one.
type WeeklyComparison struct {
	ThisWeek       WeekStats `json:"thisWeek"`
	LastWeek       WeekStats `json:"lastWeek"`
	SessionsChange float64   `json:"sessionsChange"` // percent
	HoursChange    float64   `json:"hoursChange"`    // percent
}

// CompareWeeks computes session count and hours for the current
// Monday-start week against the immediately preceding week.
func CompareWeeks(history []domain.HistoryEntry, now time.Time) WeeklyComparison {
	thisStart := startOfWeek(now)
	lastStart := thisStart.AddDate(0, 0, -7)

	var cmp WeeklyComparison
	for _, e := range history {
		if !e.IsWork() {
			continue
		}
		switch {
		case !e.CompletedAt.Before(thisStart) && !e.CompletedAt.After(now):
			cmp.ThisWeek.Sessions++
			cmp.ThisWeek.Hours += float64(e.Duration) / 3600
		case !e.CompletedAt.Before(lastStart) && e.CompletedAt.Before(thisStart):
			cmp.LastWeek.Sessions++
			cmp.LastWeek.Hours += float64(e.Duration) / 3600
		}
	}

	cmp.SessionsChange = percentChange(float64(cmp.LastWeek.Sessions), float64(cmp.ThisWeek.Sessions))
	cmp.HoursChange = percentChange(cmp.LastWeek.Hours, cmp.ThisWeek.Hours)
	return cmp
}

// percentChange guards the divide-by-zero case: from zero, any positive
// value reads as +100%, and zero stays at 0%.
func percentChange(old, new float64) float64 {
	if old == 0 {
		if new > 0 {
			return 100
		}
		return 0
	}
	return (new - old) / old * 100
}

// GoalStat is progress against one configured goal.
type GoalStat struct {
	Completed  int     `json:"completed"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"` // uncapped; display caps at 100
}

// GoalProgress reports today's, this week's, and this month's completed
// work sessions against the configured goals.
type GoalProgress struct {
	Daily   GoalStat `json:"daily"`
	Weekly  GoalStat `json:"weekly"`
	Monthly GoalStat `json:"monthly"`
}

// Goals computes goal progress at the given time.
func Goals(history []domain.HistoryEntry, settings domain.Settings, now time.Time) GoalProgress {
	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var day, week, month int
	for _, e := range history {
		if !e.IsWork() || e.CompletedAt.After(now) {
			continue
		}
		if !e.CompletedAt.Before(monthStart) {
			month++
		}
		if !e.CompletedAt.Before(weekStart) {
			week++
		}
		if !e.CompletedAt.Before(dayStart) {
			day++
		}
	}

	return GoalProgress{
		Daily:   goalStat(day, settings.DailyGoal),
		Weekly:  goalStat(week, settings.WeeklyGoal),
		Monthly: goalStat(month, settings.MonthlyGoal),
	}
}

func goalStat(completed, goal int) GoalStat {
	st := GoalStat{Completed: completed, Goal: goal}
	if goal > 0 {
		st.Percentage = float64(completed) / float64(goal) * 100
	}
	return st
}

// Totals sums work sessions and work seconds across the whole history.
func Totals(history []domain.HistoryEntry) (sessions int, seconds int) {
	for _, e := range history {
		if e.IsWork() {
			sessions++
			seconds += e.Duration
		}
	}
	return sessions, seconds
}
