// Package config loads user preferences for the todo front-ends.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jacksmith/todo/internal/order"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// configName is the base name of the config file, looked up in the
	// current directory and then the home directory.
	configName = ".todo"

	// EnvPrefix prefixes environment overrides, e.g. TODO_SORT=status.
	EnvPrefix = "TODO"

	// Default configuration values
	DefaultSort          = "id"
	DefaultShowCompleted = true
	DefaultColor         = "auto"
	DefaultLogLevel      = "warn"
)

// Config holds user preferences. Every field has a default, so a partial or
// missing config file is fine.
type Config struct {
	// Sort is the initial sort order key (id, status, alpha).
	Sort string `mapstructure:"sort" yaml:"sort"`

	// ShowCompleted controls whether completed tasks are listed.
	ShowCompleted bool `mapstructure:"show_completed" yaml:"show_completed"`

	// Color is auto, always or never.
	Color string `mapstructure:"color" yaml:"color"`

	Logging struct {
		Level string `mapstructure:"level" yaml:"level"`          // debug, info, warn, error
		File  string `mapstructure:"file" yaml:"file,omitempty"` // empty: front-end decides
	} `mapstructure:"logging" yaml:"logging"`
}

// Default returns a Config with default values.
func Default() *Config {
	cfg := &Config{
		Sort:          DefaultSort,
		ShowCompleted: DefaultShowCompleted,
		Color:         DefaultColor,
	}
	cfg.Logging.Level = DefaultLogLevel
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sort", DefaultSort)
	v.SetDefault("show_completed", DefaultShowCompleted)
	v.SetDefault("color", DefaultColor)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.file", "")
}

// flagKeys maps command line flags to the config keys they override.
var flagKeys = map[string]string{
	"sort":      "sort",
	"color":     "color",
	"log-level": "logging.level",
	"log-file":  "logging.file",
}

// Load reads configuration. Precedence, highest first: flags that were set,
// TODO_* environment variables, the config file, defaults.
//
// If path is empty, .todo.yaml is looked up in the current directory and then
// in the home directory, and a missing file is not an error. An explicit path
// must exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		slog.Debug("no config file found, using defaults")
	} else {
		slog.Debug("loaded configuration", "file", v.ConfigFileUsed())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := c.SortStrategy(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (expected auto, always or never)", c.Color)
	}
	return nil
}

// SortStrategy resolves the configured sort key.
func (c *Config) SortStrategy() (order.Strategy, error) {
	return order.Lookup(c.Sort)
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Logging.Level)
	}
	return level, nil
}

// NewLogger builds a text logger at the configured level. It writes to
// Logging.File when set, otherwise to fallback. The returned close function
// must be called when the logger is no longer needed.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	out := fallback
	closeFn := func() error { return nil }
	if c.Logging.File != "" {
		f, err := os.OpenFile(c.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}
