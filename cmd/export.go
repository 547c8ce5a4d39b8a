package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the session history as CSV",
	Long: `Write the full session history as CSV, either to the given file or
to stdout. The format round-trips through "tomato import".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 0 {
			return app.importer.Export(ctx, os.Stdout)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()

		if err := app.importer.Export(ctx, f); err != nil {
			return err
		}
		fmt.Printf("✓ Exported history to %s\n", args[0])
		return nil
	},
}
