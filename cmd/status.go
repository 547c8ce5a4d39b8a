package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/services"
	"github.com/tomato-timer/tomato/internal/stats"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current timer state",
	Long:  `Display the timer mode, remaining time, session count, and selected task.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := printState(app.engine.Snapshot()); err != nil {
			return err
		}
		if jsonOutput {
			return nil
		}

		history, err := app.store.History(context.Background())
		if err != nil {
			return err
		}
		goals := stats.Goals(history, app.engine.Settings(), time.Now())
		fmt.Printf("Today: %d/%d sessions\n", goals.Daily.Completed, goals.Daily.Goal)
		return nil
	},
}

// printState renders a timer state to stdout, honoring --json.
func printState(state domain.TimerState) error {
	task, err := app.tasks.CurrentTask(context.Background())
	if err != nil {
		return err
	}
	taskName := ""
	if task != nil {
		taskName = task.Name
	}

	if jsonOutput {
		result := map[string]interface{}{
			"mode":      string(state.Mode),
			"timeLeft":  state.TimeLeft,
			"isRunning": state.IsRunning,
			"sessions":  state.Sessions,
			"clock":     services.FormatClock(state.TimeLeft),
		}
		if taskName != "" {
			result["task"] = taskName
		}
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	status := "paused"
	if state.IsRunning {
		status = "running"
	} else if state.AtFullDuration(app.engine.Settings()) {
		status = "ready"
	}

	fmt.Printf("🍅 %s — %s (%s)\n", domain.ModeLabel(state.Mode), services.FormatClock(state.TimeLeft), status)
	if taskName != "" {
		fmt.Printf("📋 Task: %s\n", taskName)
	}
	fmt.Printf("Sessions completed: %d\n", state.Sessions)
	return nil
}
