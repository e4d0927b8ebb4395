package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/importer"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import log entries from exported text",
	Long: `Import entries from raw-format export text ("[date time] content" lines).

Reads from a file argument, or from stdin when no file is given. Lines that
do not parse are skipped; imported entries get fresh ids.`,
	Example: `  donectl import done.txt
  pbpaste | donectl import`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error: reading file:", err)
				os.Exit(2)
			}
		} else {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error: reading stdin:", err)
				os.Exit(2)
			}
		}

		text := string(data)
		if strings.TrimSpace(text) == "" {
			fmt.Fprintln(os.Stderr, "Error: nothing to import")
			os.Exit(1)
		}

		parsed := importer.Parse(text)
		if len(parsed) == 0 {
			// Non-empty input with no recoverable lines is a distinct
			// failure from an empty paste.
			fmt.Fprintln(os.Stderr, "Error:", i18n.T(lang(), "importError"))
			os.Exit(1)
		}

		store.ImportMany(parsed)

		skipped := countNonEmptyLines(text) - len(parsed)
		if jsonOutput {
			ui.FormatJSON(os.Stdout, ui.ImportResult{Imported: len(parsed), Skipped: skipped})
		} else {
			fmt.Fprintf(os.Stdout, i18n.T(lang(), "importSuccess")+"\n", len(parsed))
			if skipped > 0 {
				fmt.Fprintf(os.Stdout, "Skipped %d unparsable lines.\n", skipped)
			}
		}
		return nil
	},
}

func countNonEmptyLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func init() {
	rootCmd.AddCommand(importCmd)
}
