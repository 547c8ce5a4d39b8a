// Package config provides configuration management for Tomato.
//
// Timer behavior (durations, auto-start, goals) is user data and lives
// in the database with the rest of the state; this file covers the
// machine-local concerns: where the data lives, whether the desktop may
// beep and notify, and how the TUI looks.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Tomato application.
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Badge   bool `mapstructure:"badge"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds TUI color customization.
type ThemeConfig struct {
	ColorWork      string `mapstructure:"color_work"`
	ColorBreak     string `mapstructure:"color_break"`
	ColorLongBreak string `mapstructure:"color_long_break"`
	ColorPaused    string `mapstructure:"color_paused"`
	ColorTask      string `mapstructure:"color_task"`
	ColorHelp      string `mapstructure:"color_help"`
	GradientStart  string `mapstructure:"gradient_start"`
	GradientEnd    string `mapstructure:"gradient_end"`
	IconApp        string `mapstructure:"icon_app"`
	IconTask       string `mapstructure:"icon_task"`
	IconPaused     string `mapstructure:"icon_paused"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:      "#d95550",
		ColorBreak:     "#4ECDC4",
		ColorLongBreak: "#457ca3",
		ColorPaused:    "#6B7280",
		ColorTask:      "#A0AEC0",
		ColorHelp:      "#95A5A6",
		GradientStart:  "#d95550",
		GradientEnd:    "#eb9f9b",
		IconApp:        "🍅",
		IconTask:       "📋",
		IconPaused:     "⏸",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
			Badge:   true,
		},
		Storage: StorageConfig{
			DataDir: "~/.tomato",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")
	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.tomato" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".tomato")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.badge", cfg.Notifications.Badge)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_work", cfg.Theme.ColorWork)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_long_break", cfg.Theme.ColorLongBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_task", cfg.Theme.ColorTask)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.gradient_start", cfg.Theme.GradientStart)
	viper.Set("theme.gradient_end", cfg.Theme.GradientEnd)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_task", cfg.Theme.IconTask)
	viper.Set("theme.icon_paused", cfg.Theme.IconPaused)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tomato", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tomato.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.badge", true)
	viper.SetDefault("storage.data_dir", "~/.tomato")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_work", defaults.ColorWork)
	viper.SetDefault("theme.color_break", defaults.ColorBreak)
	viper.SetDefault("theme.color_long_break", defaults.ColorLongBreak)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_task", defaults.ColorTask)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.gradient_start", defaults.GradientStart)
	viper.SetDefault("theme.gradient_end", defaults.GradientEnd)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_task", defaults.IconTask)
	viper.SetDefault("theme.icon_paused", defaults.IconPaused)
}
