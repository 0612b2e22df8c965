// Package config provides configuration management for netsynth.
//
// Config file locations (priority order):
//  1. $NETSYNTH_CONFIG
//  2. ./netsynth.yaml
//  3. $XDG_CONFIG_HOME/netsynth/config.yaml
//  4. ~/.config/netsynth/config.yaml
//  5. /etc/netsynth/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"netsynth/internal/codec"
	"netsynth/internal/domain"
)

// Config holds the generation defaults a CLI invocation starts from.
// Every field can be overridden by a flag.
type Config struct {
	Version     int            `yaml:"version"`
	Count       int            `yaml:"count"`
	Kind        string         `yaml:"kind"`
	Format      string         `yaml:"format"`
	Optimized   bool           `yaml:"optimized"`
	ChunkSize   int            `yaml:"chunk_size"`
	Departments []string       `yaml:"departments,omitempty"`
	Database    DatabaseConfig `yaml:"database"`
}

// DatabaseConfig configures the optional SQLite sink for generated batches.
type DatabaseConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		Count:     100,
		Kind:      string(domain.KindVLAN),
		Format:    "csv",
		ChunkSize: 0,
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Count == 0 {
		c.Count = 100
	}
	if c.Kind == "" {
		c.Kind = string(domain.KindVLAN)
	}
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate rejects values no generation run could accept.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("config: count %d is below minimum 1", c.Count)
	}
	if _, err := domain.ParseKind(c.Kind); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := codec.NewExporter(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("config: chunk_size %d is negative", c.ChunkSize)
	}
	return nil
}
