// Package config loads hari settings using Viper. Values come from
// config.yaml in the directory chosen by ResolveDir, overridden by HARI_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/faizmokh/hari/internal/calendar"
	"github.com/faizmokh/hari/internal/render"
)

// DefaultWarnDays is the range length above which a warning is shown.
const DefaultWarnDays = 3660

// Config holds the complete hari configuration.
type Config struct {
	Format   string `mapstructure:"format"`
	Days     string `mapstructure:"days"`
	WarnDays int    `mapstructure:"warn_days"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Dir is the directory config.yaml was looked up in.
	Dir string `mapstructure:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Format:   string(render.Full),
		Days:     "none",
		WarnDays: DefaultWarnDays,
		LogLevel: "warn",
	}
}

// Load reads config.yaml from dir (ResolveDir when empty) and applies
// environment overrides. A missing file is not an error.
func Load(dir string) (*Config, error) {
	if dir == "" {
		var err error
		dir, err = ResolveDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	defaults := Default()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("days", defaults.Days)
	v.SetDefault("warn_days", defaults.WarnDays)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)

	_ = v.BindEnv("format", "HARI_FORMAT")
	_ = v.BindEnv("days", "HARI_DAYS")
	_ = v.BindEnv("warn_days", "HARI_WARN_DAYS")
	_ = v.BindEnv("log_level", "HARI_LOG_LEVEL")
	_ = v.BindEnv("log_file", "HARI_LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Dir = dir

	if _, err := cfg.Mask(); err != nil {
		return nil, fmt.Errorf("config days: %w", err)
	}
	if cfg.WarnDays < 0 {
		return nil, fmt.Errorf("config warn_days must not be negative (got %d)", cfg.WarnDays)
	}

	return &cfg, nil
}

// Mask parses the default weekday selection.
func (c Config) Mask() (calendar.Mask, error) {
	return calendar.ParseMask(c.Days)
}

// OutputFormat returns the default output format. Unknown values are kept so
// they render with the fallback rule.
func (c Config) OutputFormat() render.Format {
	f, _ := render.ParseFormat(c.Format)
	if strings.TrimSpace(string(f)) == "" {
		return render.Full
	}
	return f
}

// LargeRange reports whether a range of days days should trigger a warning.
// A WarnDays of zero disables the warning.
func (c Config) LargeRange(days int) bool {
	return c.WarnDays > 0 && days > c.WarnDays
}
