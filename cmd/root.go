package cmd

import (
	"fmt"
	"os"

	"github.com/done-app/donectl/internal/config"
	"github.com/done-app/donectl/internal/i18n"
	"github.com/done-app/donectl/internal/journal"
	"github.com/done-app/donectl/internal/storage"
	"github.com/done-app/donectl/internal/storage/markdown"
	"github.com/done-app/donectl/internal/storage/sqlite"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	backend        storage.Storage
	store          *journal.Store
)

// lang returns the active display language from config.
func lang() i18n.Language {
	return i18n.ParseLanguage(appConfig.Language)
}

var rootCmd = &cobra.Command{
	Use:   "donectl",
	Short: "A personal done-log for your terminal",
	Long: `donectl keeps a timestamped log of what you got done, grouped by day.

Running it with no arguments opens the interactive timeline: type to append
an entry, browse the days above. Subcommands cover scripted use, text
export/import, and AI-generated summaries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		// Initialize storage backend
		switch appConfig.Storage {
		case "sqlite":
			backend, err = sqlite.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing sqlite storage: %w", err)
			}
		case "markdown":
			backend, err = markdown.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing markdown storage: %w", err)
			}
		default:
			return fmt.Errorf("unknown storage backend: %s", appConfig.Storage)
		}

		// The in-memory collection is authoritative for the session; the
		// backend is write-through persistence behind it.
		entries, err := backend.Load()
		if err != nil {
			return fmt.Errorf("loading entries: %w", err)
		}
		store = journal.New(entries, backend)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if backend != nil {
			backend.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to the printed timeline
			return listRun(os.Stdout, "", nil)
		}
		return ui.RunTimeline(store, ui.TUIConfig{
			Language: lang(),
			Theme:    ui.ResolveTheme(appConfig.Theme),
			MaxWidth: appConfig.MaxWidth,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (sqlite|markdown)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
