package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/done-app/donectl/internal/config"
	"github.com/done-app/donectl/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set donectl settings",
	Long: `Get and set persisted settings.

Keys:
  language  display language: en or zh
  theme     terminal theme: light or dark
  api-key   Gemini API key for the report command (empty = not configured)
  storage   storage backend: sqlite or markdown
  editor    editor command for add/edit`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a setting (or all settings)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if jsonOutput {
				return ui.FormatJSON(os.Stdout, appConfig)
			}
			fmt.Fprintf(os.Stdout, "language  %s\n", appConfig.Language)
			fmt.Fprintf(os.Stdout, "theme     %s\n", appConfig.Theme)
			fmt.Fprintf(os.Stdout, "api-key   %s\n", maskKey(appConfig.APIKey))
			fmt.Fprintf(os.Stdout, "storage   %s\n", appConfig.Storage)
			fmt.Fprintf(os.Stdout, "data-dir  %s\n", appConfig.DataDir)
			fmt.Fprintf(os.Stdout, "editor    %s\n", appConfig.Editor)
			return nil
		}

		value, err := getSetting(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stdout, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set and persist a setting",
	Example: `  donectl config set language en
  donectl config set theme light
  donectl config set api-key AIza...`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setSetting(args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if err := config.Save(appConfig, cfgFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error: saving config:", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stdout, "Set %s.\n", args[0])
		return nil
	},
}

func getSetting(key string) (string, error) {
	switch key {
	case "language":
		return appConfig.Language, nil
	case "theme":
		return appConfig.Theme, nil
	case "api-key":
		return maskKey(appConfig.APIKey), nil
	case "storage":
		return appConfig.Storage, nil
	case "data-dir":
		return appConfig.DataDir, nil
	case "editor":
		return appConfig.Editor, nil
	default:
		return "", fmt.Errorf("unknown setting %q", key)
	}
}

func setSetting(key, value string) error {
	switch key {
	case "language":
		if value != "en" && value != "zh" {
			return fmt.Errorf("language must be en or zh")
		}
		appConfig.Language = value
	case "theme":
		if value != "light" && value != "dark" {
			return fmt.Errorf("theme must be light or dark")
		}
		appConfig.Theme = value
	case "api-key":
		appConfig.APIKey = value
	case "storage":
		if value != "sqlite" && value != "markdown" {
			return fmt.Errorf("storage must be sqlite or markdown")
		}
		appConfig.Storage = value
	case "editor":
		appConfig.Editor = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// maskKey hides all but the tail of a credential for display.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
