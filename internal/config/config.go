// Package config provides configuration management for the playground CLI
// using Viper for loading from files, environment variables and flags.
//
// Values are read from .playground.yml, overridden by PLAYGROUND_ prefixed
// environment variables (PLAYGROUND_LOG_LEVEL, PLAYGROUND_RUN_ON_START),
// overridden in turn by command-line flags bound in package cmd.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/conneroisu/playground/internal/errors"
	"github.com/conneroisu/playground/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "PLAYGROUND"

type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Run     RunConfig     `mapstructure:"run" yaml:"run"`
	Lessons LessonsConfig `mapstructure:"lessons" yaml:"lessons"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type RunConfig struct {
	// OnStart runs every lesson once before the interactive prompt.
	OnStart bool `mapstructure:"on_start" yaml:"on_start"`
	// ShowMenu prints the listing before the interactive prompt.
	ShowMenu bool `mapstructure:"show_menu" yaml:"show_menu"`
	// Summary prints a result table after each dispatch.
	Summary bool `mapstructure:"summary" yaml:"summary"`
}

type LessonsConfig struct {
	Enabled  []string `mapstructure:"enabled" yaml:"enabled"`
	Disabled []string `mapstructure:"disabled" yaml:"disabled"`
}

// SetDefaults registers default values on v. Defaults also make the keys
// known to Viper, which environment overrides rely on.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("run.on_start", true)
	v.SetDefault("run.show_menu", true)
	v.SetDefault("run.summary", false)
	v.SetDefault("lessons.enabled", []string{})
	v.SetDefault("lessons.disabled", []string{})
}

// Load reads the configuration from the global Viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "failed to decode configuration").
			WithContext("cause", err.Error())
	}

	// Environment values arrive as one comma or space separated string.
	config.Lessons.Enabled = splitList(config.Lessons.Enabled)
	config.Lessons.Disabled = splitList(config.Lessons.Disabled)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoggerConfig converts the log section into a logging.LoggerConfig.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	level, _ := logging.ParseLevel(c.Log.Level)
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.Log.Format
	return cfg
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid, "log.level: "+err.Error()).
			WithContext("value", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("log.format must be text or json, got %q", config.Log.Format)).
			WithContext("value", config.Log.Format)
	}

	for _, name := range config.Lessons.Enabled {
		if slices.Contains(config.Lessons.Disabled, name) {
			return errors.NewConfigError(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("lesson %q is both enabled and disabled", name)).
				WithContext("lesson", name)
		}
	}

	return nil
}
