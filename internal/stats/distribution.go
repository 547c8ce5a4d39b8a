package stats

import (
	"sort"

	"github.com/tomato-timer/tomato/internal/domain"
)

// WeekdayStat is the work done on one day of the week across the range.
type WeekdayStat struct {
	Day     string  `json:"day"` // Sun..Sat
	Count   int     `json:"count"`
	Hours   float64 `json:"hours"`
	Percent float64 `json:"percent"` // bar width relative to the busiest weekday
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ByWeekday buckets work sessions by day of week.
func ByWeekday(history []domain.HistoryEntry, r Range) []WeekdayStat {
	var counts [7]int
	var hours [7]float64

	for _, e := range history {
		if e.IsWork() && r.Contains(e.CompletedAt) {
			wd := int(e.CompletedAt.Weekday())
			counts[wd]++
			hours[wd] += float64(e.Duration) / 3600
		}
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	out := make([]WeekdayStat, 7)
	for i := range out {
		out[i] = WeekdayStat{
			Day:     weekdayNames[i],
			Count:   counts[i],
			Hours:   hours[i],
			Percent: float64(counts[i]) / float64(maxCount) * 100,
		}
	}
	return out
}

// TimeBlock is one of the six fixed time-of-day buckets.
type TimeBlock struct {
	Name      string  `json:"name"`
	Range     string  `json:"range"`
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Count     int     `json:"count"`
	Percent   float64 `json:"percent"`  // share of all sessions in range
	BarWidth  float64 `json:"barWidth"` // relative to the busiest block
}

func timeBlocks() []TimeBlock {
	return []TimeBlock{
		{Name: "Late Night", Range: "0:00-6:00", StartHour: 0, EndHour: 6},
		{Name: "Early Morning", Range: "6:00-9:00", StartHour: 6, EndHour: 9},
		{Name: "Morning", Range: "9:00-12:00", StartHour: 9, EndHour: 12},
		{Name: "Afternoon", Range: "12:00-17:00", StartHour: 12, EndHour: 17},
		{Name: "Evening", Range: "17:00-21:00", StartHour: 17, EndHour: 21},
		{Name: "Night", Range: "21:00-24:00", StartHour: 21, EndHour: 24},
	}
}

// ByTimeBlock buckets work sessions into the six time-of-day blocks.
func ByTimeBlock(history []domain.HistoryEntry, r Range) []TimeBlock {
	blocks := timeBlocks()

	total := 0
	for _, e := range history {
		if !e.IsWork() || !r.Contains(e.CompletedAt) {
			continue
		}
		hour := e.CompletedAt.Hour()
		for i := range blocks {
			if hour >= blocks[i].StartHour && hour < blocks[i].EndHour {
				blocks[i].Count++
				total++
				break
			}
		}
	}

	maxCount := 1
	for i := range blocks {
		if blocks[i].Count > maxCount {
			maxCount = blocks[i].Count
		}
	}
	for i := range blocks {
		if total > 0 {
			blocks[i].Percent = float64(blocks[i].Count) / float64(total) * 100
		}
		blocks[i].BarWidth = float64(blocks[i].Count) / float64(maxCount) * 100
	}
	return blocks
}

// TaskShare is one task's slice of the total work time in range.
type TaskShare struct {
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // seconds
	Hours    float64 `json:"hours"`
	Percent  float64 `json:"percent"`
}

// taskDistributionTop is how many tasks are listed individually before
// the remainder collapses into "Other".
const taskDistributionTop = 10

// TaskDistribution totals work duration per task within the range,
// sorted descending, with everything past the top 10 folded into an
// "Other" bucket.
func TaskDistribution(history []domain.HistoryEntry, r Range) []TaskShare {
	type bucket struct {
		name     string
		duration int
	}
	byTask := make(map[string]*bucket)

	for _, e := range history {
		if !e.IsWork() || !r.Contains(e.CompletedAt) {
			continue
		}
		b, ok := byTask[e.TaskID]
		if !ok {
			b = &bucket{name: e.TaskName}
			byTask[e.TaskID] = b
		}
		b.duration += e.Duration
	}

	list := make([]bucket, 0, len(byTask))
	total := 0
	for _, b := range byTask {
		list = append(list, *b)
		total += b.duration
	}
	sort.Slice(list, func(i, j int) bool { return list[i].duration > list[j].duration })

	if len(list) > taskDistributionTop {
		other := 0
		for _, b := range list[taskDistributionTop:] {
			other += b.duration
		}
		list = append(list[:taskDistributionTop], bucket{name: "Other", duration: other})
	}

	out := make([]TaskShare, len(list))
	for i, b := range list {
		share := TaskShare{Name: b.name, Duration: b.duration, Hours: float64(b.duration) / 3600}
		if total > 0 {
			share.Percent = float64(b.duration) / float64(total) * 100
		}
		out[i] = share
	}
	return out
}
