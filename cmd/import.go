package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomato-timer/tomato/internal/domain"
)

var importYes bool

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import session history from a CSV export",
	Long: `Read a CSV export and merge it into the local history. Rows that
fail validation are skipped, duplicates of existing sessions are dropped,
and tasks referenced by the file but unknown locally are created. Large
imports ask for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := app.importer.ImportFile(context.Background(), args[0], importYes)
		if errors.Is(err, domain.ErrImportNeedsConfirm) {
			return fmt.Errorf("the file holds more than 100 entries; re-run with --yes to confirm")
		}
		if err != nil {
			return err
		}

		fmt.Printf("✓ Imported %d session(s)", summary.Imported)
		if summary.NewTasks > 0 {
			fmt.Printf(", created %d task(s)", summary.NewTasks)
		}
		if summary.Duplicates > 0 {
			fmt.Printf(", dropped %d duplicate(s)", summary.Duplicates)
		}
		if summary.Skipped > 0 {
			fmt.Printf(", skipped %d invalid row(s)", summary.Skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the large-import confirmation")
}
