// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Split ratio bounds accepted by Validate.
const (
	MinSplitRatio = 0.2
	MaxSplitRatio = 0.8
)

// Config is the viewer configuration.
type Config struct {
	// StartDirectory is where the file picker opens. Empty means the
	// working directory. ${HOME} and ${VAR:-default} are expanded.
	StartDirectory string `yaml:"start_directory" json:"start_directory"`

	// SplitRatio is the list pane's share of the terminal width.
	// Default: 0.35
	SplitRatio float64 `yaml:"split_ratio" json:"split_ratio"`

	// ShowHidden lists dotfiles in the file picker.
	ShowHidden bool `yaml:"show_hidden" json:"show_hidden"`

	// LogLevel is the minimum level written to --log-output.
	// Values: debug, info, warn, error. Default: info
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		SplitRatio: 0.35,
		LogLevel:   "info",
	}
}

// LoadFile loads configuration from path, on top of [Default].
//
// Files ending in .json or .jsonc are JSON with comments and trailing
// commas, normalised to plain JSON before decoding. Everything else is
// YAML. Unknown keys are an error in both.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile decodes a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		// An empty file keeps the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.StartDirectory = expandVars(c.StartDirectory, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.SplitRatio < MinSplitRatio || c.SplitRatio > MaxSplitRatio {
		errs = append(errs, fmt.Errorf("split_ratio must be between %.1f and %.1f, got %g",
			MinSplitRatio, MaxSplitRatio, c.SplitRatio))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if c.StartDirectory != "" {
		info, err := os.Stat(c.StartDirectory)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("start_directory: %w", err))
		case !info.IsDir():
			errs = append(errs, fmt.Errorf("start_directory %s is not a directory", c.StartDirectory))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level must be one of: debug, info, warn, error (got %q)", c.LogLevel)
	}
	return level, nil
}
