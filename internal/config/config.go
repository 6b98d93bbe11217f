package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// External control executable (playerctl or a compatible wrapper)
	Command string

	// Delay between a playback command and the follow-up refresh,
	// in milliseconds
	SettleDelayMS int

	// Per-invocation timeout for the control tool (in seconds)
	CommandTimeoutSeconds int

	// Periodic menu refresh interval (in seconds); 0 disables it
	MenuRefreshSeconds int

	// Output format template for the list command
	// Default: "{{.Label}}\t{{.Status}}"
	ListFormat string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("command", "playerctl")
	v.SetDefault("settle_delay_ms", 350)
	v.SetDefault("command_timeout_seconds", 5)
	v.SetDefault("menu_refresh_seconds", 0)
	v.SetDefault("list_format", "{{.Label}}\t{{.Status}}")

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("PLAYMENU")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		Command:               v.GetString("command"),
		SettleDelayMS:         v.GetInt("settle_delay_ms"),
		CommandTimeoutSeconds: v.GetInt("command_timeout_seconds"),
		MenuRefreshSeconds:    v.GetInt("menu_refresh_seconds"),
		ListFormat:            v.GetString("list_format"),
	}

	return cfg, nil
}

// SettleDelay returns the settle delay as a duration
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

// CommandTimeout returns the per-invocation timeout as a duration
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// MenuRefresh returns the periodic menu refresh interval; zero disables it
func (c *Config) MenuRefresh() time.Duration {
	return time.Duration(c.MenuRefreshSeconds) * time.Second
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "playmenu")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}
