/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads optional operator defaults from a YAML file.
// Every value has a built-in default; the file only overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultUnitDir is where synthesized unit files are stored.
	DefaultUnitDir = "/etc/systemd/system"
	// DefaultFormat is the status output format.
	DefaultFormat = "table"
	// DefaultJobTimeoutSeconds bounds the wait for a systemd job to
	// complete before the invocation gives up.
	DefaultJobTimeoutSeconds = 30

	fileName = ".servicer.yaml"
)

// Config holds invocation defaults.
type Config struct {
	UnitDir           string `yaml:"unitDir"`
	Format            string `yaml:"format"`
	JobTimeoutSeconds int    `yaml:"jobTimeoutSeconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UnitDir:           DefaultUnitDir,
		Format:            DefaultFormat,
		JobTimeoutSeconds: DefaultJobTimeoutSeconds,
	}
}

// JobTimeout returns the job completion timeout as a duration.
func (c *Config) JobTimeout() time.Duration {
	return time.Duration(c.JobTimeoutSeconds) * time.Second
}

// Load reads configuration from path, or from $HOME/.servicer.yaml when
// path is empty. A missing default file is not an error; a file the
// operator named explicitly must exist and parse.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return c, nil
		}
		path = filepath.Join(home, fileName)
		if _, err := os.Stat(path); err != nil {
			return c, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// Zero values in the file fall back to defaults.
	if c.UnitDir == "" {
		c.UnitDir = DefaultUnitDir
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.JobTimeoutSeconds <= 0 {
		c.JobTimeoutSeconds = DefaultJobTimeoutSeconds
	}
	return c, nil
}
