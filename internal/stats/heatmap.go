package stats

import (
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
)

// HeatmapCell is one day in the activity grid.
type HeatmapCell struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// MonthLabel marks the week column where a new month begins.
type MonthLabel struct {
	Month     string `json:"month"`
	WeekIndex int    `json:"weekIndex"`
}

// HeatmapData is a week-major calendar grid of daily work-session
// counts. Each week holds exactly 7 cells (Sunday..Saturday); cells
// outside the requested range are nil.
type HeatmapData struct {
	Weeks  [][]*HeatmapCell `json:"weeks"`
	Months []MonthLabel     `json:"months"`
}

// Heatmap buckets work-mode entries by local calendar day and lays
// them out week by week across the range.
func Heatmap(history []domain.HistoryEntry, r Range) HeatmapData {
	counts := make(map[string]int)
	for _, e := range history {
		if e.IsWork() {
			counts[dayKey(e.CompletedAt)]++
		}
	}

	var data HeatmapData
	lastMonth := time.Month(0)

	week := make([]*HeatmapCell, 0, 7)
	for i := 0; i < int(r.Start.Weekday()); i++ {
		week = append(week, nil)
	}

	for day := startOfDay(r.Start); !day.After(r.End); day = day.AddDate(0, 0, 1) {
		week = append(week, &HeatmapCell{Date: day, Count: counts[dayKey(day)]})
		if len(week) == 7 {
			if first := firstCell(week); first != nil && first.Date.Month() != lastMonth {
				data.Months = append(data.Months, MonthLabel{
					Month:     first.Date.Format("Jan"),
					WeekIndex: len(data.Weeks),
				})
				lastMonth = first.Date.Month()
			}
			data.Weeks = append(data.Weeks, week)
			week = make([]*HeatmapCell, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		data.Weeks = append(data.Weeks, week)
	}

	return data
}

func firstCell(week []*HeatmapCell) *HeatmapCell {
	for _, c := range week {
		if c != nil {
			return c
		}
	}
	return nil
}

// IntensityBand maps a daily count to one of 5 color bands:
// 0, 1-2, 3-4, 5-6, and 7+.
func IntensityBand(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}
