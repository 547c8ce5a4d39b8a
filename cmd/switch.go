package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/domain"
)

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch <work|break|longBreak>",
	Short: "Switch the timer to a different mode",
	Long: `Move the timer to the given mode, stopped at its full duration.
Switching never changes the completed session count.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"work", "break", "longBreak"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseMode(args[0])
		if err != nil {
			return err
		}
		state, err := app.engine.SwitchMode(context.Background(), mode)
		if err != nil {
			return fmt.Errorf("failed to switch mode: %w", err)
		}
		return printState(state)
	},
}
