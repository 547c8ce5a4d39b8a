package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the countdown",
	Long:  `Stop the countdown without losing the remaining time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.engine.Pause(context.Background())
		if err != nil {
			return fmt.Errorf("failed to pause timer: %w", err)
		}
		return printState(state)
	},
}
