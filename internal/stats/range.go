// Package stats derives analytics from the session history: the
// activity heatmap, streaks, productivity distributions, weekly
// comparison, and goal progress. Everything here is a pure function
// over the history slice; results are re-derivable at any time.
package stats

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Known period names. Any 4-digit year string is also accepted.
const (
	PeriodDay     = "day"
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodHalf    = "half"
	PeriodYear    = "year"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Range is a closed interval of time used to filter history entries.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ResolveRange maps a requested period to a concrete date range
// relative to now.
func ResolveRange(period string, now time.Time) (Range, error) {
	switch period {
	case PeriodDay:
		start := startOfDay(now)
		return Range{Start: start, End: start.Add(24*time.Hour - time.Millisecond)}, nil
	case PeriodWeek:
		return Range{Start: startOfDay(now.AddDate(0, 0, -6)), End: now}, nil
	case PeriodMonth:
		return Range{Start: now.AddDate(0, -1, 0), End: now}, nil
	case PeriodQuarter:
		return Range{Start: now.AddDate(0, -3, 0), End: now}, nil
	case PeriodHalf:
		return Range{Start: now.AddDate(0, -6, 0), End: now}, nil
	case PeriodYear:
		return yearRange(now.Year(), now.Location()), nil
	}
	if yearPattern.MatchString(period) {
		year, _ := strconv.Atoi(period)
		return yearRange(year, now.Location()), nil
	}
	return Range{}, fmt.Errorf("unknown period %q", period)
}

func yearRange(year int, loc *time.Location) Range {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 999000000, loc)
	return Range{Start: start, End: end}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday midnight that starts t's ISO week.
func startOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	return startOfDay(t.AddDate(0, 0, -(offset - 1)))
}

// dayKey formats t as its local calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
