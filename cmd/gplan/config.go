// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from --config.  Flags given on the
// command line take precedence.
type Config struct {
	LogLevel  string        `yaml:"log_level"`
	MaxLevels int           `yaml:"max_levels"`
	Timeout   time.Duration `yaml:"timeout"`
	Bench     BenchConfig   `yaml:"bench"`
}

// BenchConfig holds the defaults of bench run.
type BenchConfig struct {
	Jobs        int           `yaml:"jobs"`
	InstTimeout time.Duration `yaml:"inst_timeout"`
	Timeout     time.Duration `yaml:"timeout"`
	MetricsAddr string        `yaml:"metrics_addr"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Timeout:  30 * time.Second,
		Bench: BenchConfig{
			InstTimeout: 5 * time.Second,
			Timeout:     time.Hour}}
}

// LoadConfig reads the file path over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	f, e := os.Open(path)
	if e != nil {
		return c, e
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if e := dec.Decode(&c); e != nil {
		return c, fmt.Errorf("config %s: %w", path, e)
	}
	return c, nil
}
