package cmd

import (
	"fmt"
	"os"

	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a log entry",
	Long:  "Permanently delete a log entry. Requires confirmation unless --force is used.",
	Example: `  donectl delete a3kf9x2m
  donectl delete a3kf9x2m --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		e, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: entry %s not found\n", id)
			os.Exit(1)
		}

		if !forceDelete {
			fmt.Fprintf(os.Stdout, "Entry: %s (%s)\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(os.Stdout, "Preview: %s\n\n", e.Preview(60))

			confirmed, err := ui.Confirm("Delete this entry? This cannot be undone.", ui.ResolveTheme(appConfig.Theme))
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			if !confirmed {
				fmt.Fprintln(os.Stdout, "Cancelled.")
				return nil
			}
		}

		store.Delete(id)

		if jsonOutput {
			ui.FormatJSON(os.Stdout, ui.DeleteResult{ID: id, Deleted: true})
		} else {
			ui.FormatEntryDeleted(os.Stdout, id)
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
