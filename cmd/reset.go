package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the current mode to its full duration",
	Long: `Stop the countdown and restore the current mode's full duration.
The completed session count is untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.engine.Reset(context.Background())
		if err != nil {
			return fmt.Errorf("failed to reset timer: %w", err)
		}
		return printState(state)
	},
}
