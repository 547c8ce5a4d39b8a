package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/adapters/tui"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the countdown and open the timer",
	Long: `Begin or resume the countdown in the current mode and open the
fullscreen timer. A completed countdown must be reset or switched before
it can start again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimer(cmd, true)
	},
}

// runTimer opens the fullscreen timer, optionally starting the
// countdown first.
func runTimer(cmd *cobra.Command, autoStart bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if autoStart {
		if _, err := app.engine.Start(ctx); err != nil {
			return fmt.Errorf("failed to start timer: %w", err)
		}
	}
	return tui.Run(ctx, app.engine, app.tasks, app.config.Theme)
}
