package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/timeline"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listDate   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the timeline of log entries",
	Long:  "Show log entries grouped by day, newest first.",
	Example: `  donectl list
  donectl list --search meeting
  donectl list --date 2026-08-31
  donectl list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var date *time.Time
		if listDate != "" {
			t, err := time.ParseInLocation("2006-01-02", listDate, time.Local)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error: invalid date format (use YYYY-MM-DD):", listDate)
				os.Exit(1)
			}
			date = &t
		}
		return listRun(cmd.OutOrStdout(), listSearch, date)
	},
}

// listRun derives and prints the grouped timeline; search and date narrow
// the snapshot before grouping, so a filtered view keeps the same bucket
// layout as the full one.
func listRun(w io.Writer, search string, date *time.Time) error {
	entries := store.Entries()

	if search != "" {
		needle := strings.ToLower(search)
		var filtered []entry.Entry
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Content), needle) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if date != nil {
		var filtered []entry.Entry
		for _, e := range entries {
			if timeline.SameDay(e.CreatedAt, *date) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	buckets := timeline.Group(entries, time.Now(), lang())

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToBucketJSON(buckets))
	}
	ui.FormatTimeline(w, buckets, lang())
	return nil
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter entries by content substring")
	listCmd.Flags().StringVar(&listDate, "date", "", "filter by date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}
