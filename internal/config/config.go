// Package config loads fleet settings from flags, FLEET_* environment
// variables and an optional config file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Store backends.
const (
	StoreMemory = "memory" // slice-backed registry
	StoreSQLite = "sqlite" // in-memory SQLite registry
)

// Keys double as flag names. Environment variables use EnvPrefix with
// dashes replaced by underscores (FLEET_LOG_LEVEL).
const (
	EnvPrefix = "FLEET"

	KeyStore      = "store"
	KeyColor      = "color"
	KeyLogLevel   = "log-level"
	KeyConfigFile = "config"
)

// Config represents the fleet configuration
type Config struct {
	Store    string `mapstructure:"store"`
	Color    bool   `mapstructure:"color"`
	LogLevel string `mapstructure:"log-level"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Store:    StoreMemory,
		Color:    true,
		LogLevel: "warn",
	}
}

// Load resolves the configuration from v. Precedence is flag, environment,
// config file, default. A config file is only read when KeyConfigFile is set.
func Load(v *viper.Viper) (*Config, error) {
	def := Default()
	v.SetDefault(KeyStore, def.Store)
	v.SetDefault(KeyColor, def.Color)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the store backend and log level.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreMemory, StoreSQLite)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
