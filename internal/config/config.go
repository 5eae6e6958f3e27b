// Package config loads user configuration from YAML and the environment
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppName names the config and data directories
const AppName = "novi"

// Environment variables that override the config file
const (
	EnvDatabaseURL       = "NOVI_DATABASE_URL"
	EnvLegacyDatabaseURL = "CONNECTION_DATABASE_URL"
	EnvThemeFile         = "NOVI_THEME_FILE"
	EnvDataDir           = "NOVI_DATA_DIR"
)

// Config represents the application configuration
type Config struct {
	// DataDir holds the default database file, the logs and the bridge socket
	DataDir string `yaml:"data_dir"`

	// DatabaseURL is the store location; a plain path, file: URI or sqlite:// URL
	DatabaseURL string `yaml:"database_url"`

	SocketPath  string      `yaml:"socket_path"`
	LogLevel    string      `yaml:"log_level"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Load reads the config file if present, applies environment overrides and
// fills in defaults. A missing file is not an error.
func Load() (*Config, error) {
	var config Config

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	config.applyEnv()
	loadThemeFile(&config)

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyEnv overrides file values with the environment.
// NOVI_DATABASE_URL wins over the legacy CONNECTION_DATABASE_URL.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLegacyDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
}

// loadThemeFile loads and merges theme from NOVI_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	if c.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to determine config directory: %w", err)
		}
		c.DataDir = filepath.Join(base, AppName)
	}
	if c.SocketPath == "" {
		c.SocketPath = filepath.Join(c.DataDir, AppName+".sock")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.ColorScheme.ApplyDefaults()
	return nil
}

// DatabasePath resolves the store location. flagValue (from --db) takes
// priority, then the configured URL, then database.db in the data dir.
func (c *Config) DatabasePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return filepath.Join(c.DataDir, "database.db")
}

// LogDir is where log files are written
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// SlogLevel maps LogLevel onto a slog level; unknown values mean info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location of the config file; it need not exist
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}
