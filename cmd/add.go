package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/done-app/donectl/internal/editor"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Append a timestamped log entry",
	Long: `Append a timestamped entry to the log.

If text is provided as arguments, it is used directly.
If "-" is provided, content is read from stdin.
If no text is provided, your editor is opened.`,
	Example: `  donectl add "shipped the release"
  donectl add fixed the flaky test
  echo "note from pipe" | donectl add -
  donectl add`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string

		switch {
		case len(args) == 1 && args[0] == "-":
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error reading stdin:", err)
				os.Exit(2)
			}
			content = string(data)

		case len(args) > 0:
			content = strings.Join(args, " ")

		default:
			editorCmd := editor.Resolve(appConfig.Editor)
			var err error
			var changed bool
			content, changed, err = editor.Edit(editorCmd, "")
			if err != nil {
				fmt.Fprintln(os.Stderr, "Editor error:", err)
				os.Exit(3)
			}
			if !changed {
				fmt.Fprintln(os.Stderr, "Error: empty content")
				os.Exit(1)
			}
		}

		id, ok := store.Add(content)
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: entry content must not be empty")
			os.Exit(1)
		}

		e, _ := store.Get(id)
		if jsonOutput {
			ui.FormatJSON(os.Stdout, e)
		} else {
			ui.FormatEntryAdded(os.Stdout, e)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
