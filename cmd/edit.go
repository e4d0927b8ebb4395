package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/done-app/donectl/internal/editor"
	"github.com/done-app/donectl/internal/importer"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
)

var editAt string

var editCmd = &cobra.Command{
	Use:   "edit <id> [text...]",
	Short: "Edit a log entry",
	Long: `Replace the content of a log entry.

New text can be given inline; without it your editor opens on the current
content. --at corrects the entry's timestamp.`,
	Example: `  donectl edit a3kf9x2m "reworded"
  donectl edit a3kf9x2m
  donectl edit a3kf9x2m --at "2026-08-30 14:30"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		e, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: entry %s not found\n", id)
			os.Exit(1)
		}

		var content string
		if len(args) > 1 {
			content = strings.Join(args[1:], " ")
		} else {
			editorCmd := editor.Resolve(appConfig.Editor)
			edited, changed, err := editor.Edit(editorCmd, e.Content)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Editor error:", err)
				os.Exit(3)
			}
			if !changed && editAt == "" {
				fmt.Fprintf(os.Stdout, "No changes detected for entry %s.\n", id)
				return nil
			}
			content = edited
		}

		var at *time.Time
		if editAt != "" {
			t, ok := importer.ParseTimestamp(editAt)
			if !ok {
				fmt.Fprintln(os.Stderr, "Error: invalid timestamp:", editAt)
				os.Exit(1)
			}
			at = &t
		}

		if !store.Update(id, strings.TrimSpace(content), at) {
			fmt.Fprintln(os.Stderr, "Error: entry content must not be empty")
			os.Exit(1)
		}

		updated, _ := store.Get(id)
		if jsonOutput {
			ui.FormatJSON(os.Stdout, updated)
		} else {
			ui.FormatEntryUpdated(os.Stdout, updated)
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editAt, "at", "", "corrected timestamp (e.g. \"2026-08-30 14:30\")")
	rootCmd.AddCommand(editCmd)
}
