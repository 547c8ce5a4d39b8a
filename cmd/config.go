package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/domain"
)

// configCmd groups the settings subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change timer settings",
	Long: `Timer settings (durations, auto-start, sounds, goals) live in the
database with the rest of the state. Machine-local options such as the data
directory and theme are read from ~/.tomato/config.toml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := app.engine.Settings()

		if jsonOutput {
			jsonData, err := json.MarshalIndent(settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal settings: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("work               %d min\n", settings.WorkDuration)
		fmt.Printf("break              %d min\n", settings.BreakDuration)
		fmt.Printf("long-break         %d min\n", settings.LongBreakDuration)
		fmt.Printf("auto-start-breaks  %t\n", settings.AutoStartBreaks)
		fmt.Printf("auto-start-work    %t\n", settings.AutoStartWork)
		fmt.Printf("sound              %t\n", settings.SoundEnabled)
		fmt.Printf("tick-sound         %t\n", settings.TickSoundEnabled)
		fmt.Printf("open-on-complete   %t\n", settings.OpenOnComplete)
		fmt.Printf("daily-goal         %d sessions\n", settings.DailyGoal)
		fmt.Printf("weekly-goal        %d sessions\n", settings.WeeklyGoal)
		fmt.Printf("monthly-goal       %d sessions\n", settings.MonthlyGoal)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Duration keys (work, break, long-break) take
minutes between 1 and 60; goal keys take a session count; the rest take
true or false. A shortened work or break duration clamps a countdown in
progress.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := app.engine.Settings()
		if err := applySetting(&settings, args[0], args[1]); err != nil {
			return err
		}
		if err := app.engine.ApplySettings(context.Background(), settings); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s to %s\n", args[0], args[1])
		return nil
	},
}

// applySetting mutates one field of the settings by key name.
func applySetting(s *domain.Settings, key, value string) error {
	switch key {
	case "work", "break", "long-break":
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		switch key {
		case "work":
			s.WorkDuration = minutes
		case "break":
			s.BreakDuration = minutes
		case "long-break":
			s.LongBreakDuration = minutes
		}
		return nil

	case "daily-goal", "weekly-goal", "monthly-goal":
		goal, err := strconv.Atoi(value)
		if err != nil || goal < 0 {
			return fmt.Errorf("invalid goal %q", value)
		}
		switch key {
		case "daily-goal":
			s.DailyGoal = goal
		case "weekly-goal":
			s.WeeklyGoal = goal
		case "monthly-goal":
			s.MonthlyGoal = goal
		}
		return nil

	case "auto-start-breaks", "auto-start-work", "sound", "tick-sound", "open-on-complete":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", value, err)
		}
		switch key {
		case "auto-start-breaks":
			s.AutoStartBreaks = enabled
		case "auto-start-work":
			s.AutoStartWork = enabled
		case "sound":
			s.SoundEnabled = enabled
		case "tick-sound":
			s.TickSoundEnabled = enabled
		case "open-on-complete":
			s.OpenOnComplete = enabled
		}
		return nil
	}
	return fmt.Errorf("unknown setting %q", key)
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
