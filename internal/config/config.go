package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration. Language, theme, and the
// Gemini API key are user settings persisted alongside the storage backend
// selection; entries themselves live in the storage backend.
type Config struct {
	Storage  string `mapstructure:"storage"`
	DataDir  string `mapstructure:"data_dir"`
	Language string `mapstructure:"language"`
	Theme    string `mapstructure:"theme"`
	APIKey   string `mapstructure:"api_key"`
	Editor   string `mapstructure:"editor"`
	MaxWidth int    `mapstructure:"max_width"`
}

// DefaultDataDir returns the default data directory (~/.donectl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".donectl")
	}
	return filepath.Join(home, ".donectl")
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "sqlite")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("language", "zh")
	v.SetDefault("theme", "dark")
	v.SetDefault("api_key", "")
	v.SetDefault("editor", "")
	v.SetDefault("max_width", 100)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "donectl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: DONECTL_STORAGE, DONECTL_API_KEY, etc.
	v.SetEnvPrefix("DONECTL")
	v.AutomaticEnv()

	return v
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := newViper(configPath)

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Invalid enum values fall back to defaults rather than failing.
	if cfg.Language != "en" && cfg.Language != "zh" {
		cfg.Language = "zh"
	}
	if cfg.Theme != "light" && cfg.Theme != "dark" {
		cfg.Theme = "dark"
	}

	return cfg, nil
}

// Save writes the given settings back to the config file. When configPath is
// empty the default location (~/.donectl/config.toml) is used.
func Save(cfg *Config, configPath string) error {
	v := newViper(configPath)

	v.Set("storage", cfg.Storage)
	v.Set("data_dir", cfg.DataDir)
	v.Set("language", cfg.Language)
	v.Set("theme", cfg.Theme)
	v.Set("api_key", cfg.APIKey)
	v.Set("editor", cfg.Editor)
	v.Set("max_width", cfg.MaxWidth)

	path := configPath
	if path == "" {
		path = filepath.Join(DefaultDataDir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return v.WriteConfigAs(path)
}
