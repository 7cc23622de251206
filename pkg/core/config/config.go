// ============================================================================
// helperx - Calendar, validation and text helpers
// ============================================================================
//
// Package:     config
// Description: Configuration loading from TOML or YAML files, .env files and
//              HELPERX_* environment variables
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
	mdwlog "github.com/msto63/helperx/foundation/core/log"
	"github.com/msto63/helperx/foundation/utils/debugx"
	"github.com/msto63/helperx/foundation/utils/filex"
	"github.com/msto63/helperx/foundation/utils/timex"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "HELPERX_"

// ConfigEnvVar names the environment variable holding the config file path
const ConfigEnvVar = EnvPrefix + "CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general" envPrefix:"GENERAL_"`
	Calendar CalendarConfig `toml:"calendar" yaml:"calendar" envPrefix:"CALENDAR_"`
	Debug    DebugConfig    `toml:"debug" yaml:"debug" envPrefix:"DEBUG_"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name" env:"NAME"`
	Environment string `toml:"environment" yaml:"environment" env:"ENVIRONMENT"`
	LogLevel    string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat   string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
}

// CalendarConfig holds calendar conversion settings
type CalendarConfig struct {
	Timezone string `toml:"timezone" yaml:"timezone" env:"TIMEZONE"`
	Pattern  string `toml:"pattern" yaml:"pattern" env:"PATTERN"`
}

// DebugConfig holds debug printer settings
type DebugConfig struct {
	Header    string `toml:"header" yaml:"header" env:"HEADER"`
	Separator string `toml:"separator" yaml:"separator" env:"SEPARATOR"`
	Length    int    `toml:"length" yaml:"length" env:"LENGTH"`
	Color     bool   `toml:"color" yaml:"color" env:"COLOR"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// .env files next to the file and in the working directory are loaded first,
// then HELPERX_* variables override file values.
func Load(path string) (*Config, error) {
	path = filex.ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeMissingConfig).
				WithDetail("path", path).
				WithOperation("config.Load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	var cfg Config
	if err := decode(path, data, &cfg); err != nil {
		return nil, err
	}

	loadDotEnv(filepath.Dir(path))
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by HELPERX_CONFIG or the first file found in
// the default locations. Without any file the defaults are used, still subject
// to HELPERX_* overrides.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		path = findDefault()
	}

	if path != "" {
		return Load(path)
	}

	loadDotEnv(".")
	cfg := &Config{}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findDefault returns the first existing default config path
func findDefault() string {
	return filex.FirstFile(
		"./configs/config.toml",
		"./config.toml",
		"~/.config/helperx/config.toml",
	)
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return mdwerror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("path", path).
			WithOperation("config.Load")
	}

	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("path", path).
			WithOperation("config.Load")
	}
	return nil
}

// loadDotEnv loads .env from dir and the working directory. Existing
// environment variables are never overwritten.
func loadDotEnv(dir string) {
	candidates := []string{filepath.Join(dir, ".env")}
	if dir != "." {
		candidates = append(candidates, ".env")
	}

	for _, p := range candidates {
		if !filex.IsFile(p) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			mdwlog.GetDefault().DebugWithErr("skipping unreadable .env file", err, mdwlog.Fields{
				"path":      p,
				"operation": "config.Load",
			})
		}
	}
}

// finish applies environment overrides and defaults, then validates
func (c *Config) finish() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return mdwerror.Wrap(err, "failed to parse environment overrides").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	c.applyDefaults()
	return c.Validate()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "helperx"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Calendar
	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = "Local"
	}
	if c.Calendar.Pattern == "" {
		c.Calendar.Pattern = timex.DefaultPattern
	}

	// Debug
	defaults := debugx.DefaultOptions()
	if c.Debug.Header == "" {
		c.Debug.Header = defaults.Header
	}
	if c.Debug.Separator == "" {
		c.Debug.Separator = defaults.Separator
	}
	if c.Debug.Length == 0 {
		c.Debug.Length = defaults.Length
	}
}

// Validate checks the configuration for values the helpers cannot use
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid %s: %s", field, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value).
			WithOperation("config.Validate")
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "unknown format")
	}
	if _, err := c.Calendar.Location(); err != nil {
		return invalid("calendar.timezone", c.Calendar.Timezone, "unknown time zone")
	}
	if c.Debug.Length <= 0 {
		return invalid("debug.length", c.Debug.Length, "must be positive")
	}
	if c.Debug.Separator == "" {
		return invalid("debug.separator", c.Debug.Separator, "must not be empty")
	}
	return nil
}

// Location loads the configured time zone
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Options returns the debug printer options for this configuration
func (c DebugConfig) Options() debugx.Options {
	return debugx.Options{
		Header:    c.Header,
		Separator: c.Separator,
		Length:    c.Length,
	}
}
