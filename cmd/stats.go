package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/services"
	"github.com/tomato-timer/tomato/internal/stats"
)

var statsPeriod string

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	Long: `Display totals, streaks, the activity heatmap, task distribution,
week-over-week comparison, and goal progress for the chosen period.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := app.stats.Report(context.Background(), statsPeriod)
		if err != nil {
			return err
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal report: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		printReport(report)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsPeriod, "period", "week", "Period: day, week, month, quarter, half, year, or a four-digit year")
}

// heatmapGlyphs maps intensity bands 0-4 to display characters.
var heatmapGlyphs = []string{"·", "░", "▒", "▓", "█"}

func printReport(report *services.Report) {
	fmt.Printf("📊 Statistics — %s\n\n", report.Period)
	fmt.Printf("Sessions: %d    Focus time: %.1fh\n", report.TotalSessions, float64(report.TotalSeconds)/3600)
	fmt.Printf("Streak: %d day(s) current, %d day(s) longest\n\n", report.Streaks.Current, report.Streaks.Longest)

	printHeatmap(report.Heatmap)

	if len(report.Tasks) > 0 {
		fmt.Println("Tasks:")
		for _, share := range report.Tasks {
			fmt.Printf("  %-24s %5.1fh  %5.1f%%\n", share.Name, share.Hours, share.Percent)
		}
		fmt.Println()
	}

	cmp := report.WeekOverWeek
	fmt.Printf("This week: %d sessions (%.1fh), %+.0f%% vs last week\n\n",
		cmp.ThisWeek.Sessions, cmp.ThisWeek.Hours, cmp.SessionsChange)

	fmt.Println("Goals:")
	printGoal("Daily", report.Goals.Daily)
	printGoal("Weekly", report.Goals.Weekly)
	printGoal("Monthly", report.Goals.Monthly)
}

// printHeatmap renders the week-major grid one weekday per row.
func printHeatmap(h stats.HeatmapData) {
	if len(h.Weeks) == 0 {
		return
	}
	for day := 0; day < 7; day++ {
		var row strings.Builder
		for _, week := range h.Weeks {
			cell := week[day]
			if cell == nil {
				row.WriteString(" ")
				continue
			}
			row.WriteString(heatmapGlyphs[stats.IntensityBand(cell.Count)])
		}
		fmt.Println(row.String())
	}
	fmt.Println()
}

func printGoal(label string, g stats.GoalStat) {
	pct := g.Percentage
	barPct := pct
	if barPct > 100 {
		barPct = 100
	}
	filled := int(barPct / 10)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	fmt.Printf("  %-8s %s %d/%d (%.0f%%)\n", label, bar, g.Completed, g.Goal, pct)
}
