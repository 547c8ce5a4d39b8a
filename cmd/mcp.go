package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI
assistants. The server exposes the timer, tasks, and statistics as tools and
communicates via stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("🚀 Starting MCP server...")
		fmt.Println("   The server will communicate via stdio")
		fmt.Println("   Press Ctrl+C to stop")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// The countdown only advances while some process ticks it, so
		// the server hosts the tick loop for timers started over MCP.
		go func() { _ = app.engine.Run(ctx) }()

		server := mcp.NewServer(app.engine, app.tasks, app.stats)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}
