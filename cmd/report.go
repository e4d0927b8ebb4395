package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/done-app/donectl/internal/export"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/report"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	reportRange string
	reportCopy  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an AI summary of your log",
	Long: `Send a time range of log entries to Gemini and print the generated
summary: a date-grouped, professionally-toned report in your configured
language.

Requires a Gemini API key: donectl config set api-key <key>.
If the request fails the error is reported as text; nothing is retried.`,
	Example: `  donectl report
  donectl report --range today
  donectl report --range week --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := export.ParseRange(reportRange)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		filtered := export.Filter(store.Entries(), r, time.Now())

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		if isTTY {
			fmt.Fprintln(os.Stderr, i18n.T(lang(), "generating"))
		}

		text := report.NewClient().Generate(context.Background(), filtered, lang(), appConfig.APIKey)

		if reportCopy {
			if err := clipboard.WriteAll(text); err != nil {
				fmt.Fprintln(os.Stderr, "Error: copying to clipboard:", err)
				os.Exit(2)
			}
			fmt.Fprintln(os.Stdout, i18n.T(lang(), "copied"))
			return nil
		}

		if isTTY {
			theme := ui.ResolveTheme(appConfig.Theme)
			fmt.Fprintln(os.Stdout, ui.RenderMarkdown(text, appConfig.MaxWidth, theme.MarkdownStyle))
		} else {
			fmt.Fprintln(os.Stdout, text)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportRange, "range", "week", "time range: today|week|month|all")
	reportCmd.Flags().BoolVar(&reportCopy, "copy", false, "copy the report to the system clipboard")
	rootCmd.AddCommand(reportCmd)
}
