package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/done-app/donectl/internal/export"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/spf13/cobra"
)

var (
	exportRange  string
	exportFormat string
	exportCopy   bool
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export log entries as text",
	Long: `Export log entries for a time range as text, oldest first.

Formats:
  raw      one "[date time] content" line per entry (re-importable)
  grouped  markdown headings per day with bulleted entries`,
	Example: `  donectl export --range today
  donectl export --range week --format grouped
  donectl export --range all --out done.txt
  donectl export --range today --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := export.ParseRange(exportRange)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		filtered := export.Filter(store.Entries(), r, time.Now())
		text := export.Render(filtered, f, lang())

		if exportCopy {
			// No retry on clipboard failure; the error is the user's signal.
			if err := clipboard.WriteAll(text); err != nil {
				fmt.Fprintln(os.Stderr, "Error: copying to clipboard:", err)
				os.Exit(2)
			}
			fmt.Fprintln(os.Stdout, i18n.T(lang(), "copied"))
			return nil
		}

		if exportOut != "" {
			if err := os.WriteFile(exportOut, []byte(text+"\n"), 0644); err != nil {
				fmt.Fprintln(os.Stderr, "Error: writing file:", err)
				os.Exit(2)
			}
			fmt.Fprintf(os.Stdout, "Wrote %d entries to %s\n", len(filtered), exportOut)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportRange, "range", "all", "time range: today|week|month|all")
	exportCmd.Flags().StringVar(&exportFormat, "format", "raw", "output format: raw|grouped")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "copy to the system clipboard instead of printing")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
