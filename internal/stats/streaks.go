package stats

import (
	"sort"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
)

// StreakData holds the consecutive-day session streaks.
type StreakData struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streaks computes the current and longest runs of consecutive
// calendar days with at least one completed work session. The current
// streak walks backward from today, or from yesterday when today has
// no session yet; it is zero when neither day has one.
func Streaks(history []domain.HistoryEntry, now time.Time) StreakData {
	days := make(map[string]bool)
	for _, e := range history {
		if e.IsWork() {
			days[dayKey(e.CompletedAt)] = true
		}
	}
	if len(days) == 0 {
		return StreakData{}
	}

	today := startOfDay(now)
	anchor := today
	if !days[dayKey(today)] {
		anchor = today.AddDate(0, 0, -1)
	}

	var current int
	for d := anchor; days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		current++
	}

	return StreakData{Current: current, Longest: longestRun(days)}
}

// longestRun finds the longest run of consecutive days in the set.
func longestRun(days map[string]bool) int {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var longest, run int
	var prev time.Time
	for _, k := range keys {
		d, err := time.Parse("2006-01-02", k)
		if err != nil {
			continue
		}
		if run > 0 && d.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}
	return longest
}
