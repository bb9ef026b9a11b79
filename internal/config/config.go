// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles gqlscaffold project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/gqlscaffold/internal/translate"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the configuration file.
const FileName = "gqlscaffold.yaml"

// Config represents the gqlscaffold.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Endpoint is the GraphQL service to introspect.
	Endpoint string `yaml:"endpoint,omitempty"`
	// TokenEnv names the environment variable holding the bearer token.
	TokenEnv string `yaml:"tokenEnv,omitempty"`
	// SchemaFile is read instead of introspecting Endpoint.
	SchemaFile string `yaml:"schemaFile,omitempty"`

	Namespace       string            `yaml:"namespace,omitempty"`
	Context         string            `yaml:"context,omitempty"`
	Output          string            `yaml:"output,omitempty"`
	NormalizeCasing *bool             `yaml:"normalizeCasing,omitempty"`
	Layout          string            `yaml:"layout,omitempty"`
	Docs            bool              `yaml:"docs,omitempty"`
	Scalars         map[string]string `yaml:"scalars,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Endpoint != "" && c.SchemaFile != "" {
		return errors.New("endpoint and schemaFile are mutually exclusive")
	}
	if c.TokenEnv != "" && strings.ContainsAny(c.TokenEnv, "= \t") {
		return fmt.Errorf("invalid tokenEnv %q", c.TokenEnv)
	}
	if !translate.Layout(c.Layout).Valid() {
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	for name, goType := range c.Scalars {
		if _, err := translate.ParseGoRef(goType); err != nil {
			return fmt.Errorf("scalar %s: %w", name, err)
		}
	}
	return nil
}

// NormalizeCasingEnabled reports whether names are rewritten to Go casing.
// It defaults to true.
func (c *Config) NormalizeCasingEnabled() bool {
	return c.NormalizeCasing == nil || *c.NormalizeCasing
}
