// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     config
// Description: Configuration loading from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "COMBILEX_CONFIG"

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatDebug = "debug"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Batch   BatchConfig   `toml:"batch" yaml:"batch"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`

	// path the configuration was loaded from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// OutputConfig controls how tokens are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  *bool  `toml:"color" yaml:"color"`
}

// BatchConfig controls concurrent lexing of several inputs
type BatchConfig struct {
	Workers int `toml:"workers" yaml:"workers"`
}

// REPLConfig holds settings of the interactive prompt
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format is chosen
// by extension: .yaml and .yml are YAML, everything else is TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New("config file not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "cannot read config file").
			WithCode(mdwerror.CodeIOError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.path = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the COMBILEX_CONFIG environment
// variable or the first existing default location. Without any config file
// the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = findDefault()
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/combilex.toml",
		"./combilex.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "combilex", "config.toml"))
	}
	return paths
}

func findDefault() string {
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// ColorEnabled reports whether styled output is enabled
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}

	// REPL
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "combilex> "
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}) error {
		return mdwerror.Newf("invalid value for %s", key).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	switch strings.ToLower(c.General.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return invalid("general.log_level", c.General.LogLevel)
	}

	switch strings.ToLower(c.General.LogFormat) {
	case "json", "text", "console", "logfmt":
	default:
		return invalid("general.log_format", c.General.LogFormat)
	}

	if !IsValidFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format)
	}

	if c.Batch.Workers < 0 {
		return invalid("batch.workers", c.Batch.Workers)
	}

	return nil
}

// IsValidFormat reports whether format is a known output format
func IsValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatDebug:
		return true
	}
	return false
}
