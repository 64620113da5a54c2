// Package config provides configuration management for the tpep CLI.
//
// Config file locations (priority order):
//  1. $TPEP_CONFIG
//  2. ./tpep.yaml
//  3. ~/.config/tpep/config.yaml
//
// All settings have working defaults; a missing config file is not an
// error. Flags override config values, config values override defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Scan     ScanConfig     `yaml:"scan"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig controls the optional result cache.
type DatabaseConfig struct {
	// Path to the SQLite cache. Empty disables caching.
	Path string `yaml:"path"`
}

// ScanConfig holds interval-scan defaults.
type ScanConfig struct {
	Workers int `yaml:"workers"` // 0 = NumCPU
	Keep    int `yaml:"keep"`    // Near-misses retained per scan
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// Load finds and loads the config file, or returns defaults if none found.
// The second return value is the path actually used ("" for defaults).
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
	return &cfg, path, nil
}

// Save writes config to the specified path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv("TPEP_CONFIG"); path != "" {
		return path
	}

	candidates := []string{"./tpep.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "tpep", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Database: DatabaseConfig{},
		Scan:     ScanConfig{Workers: 0, Keep: 10},
		Log:      LogConfig{Level: "info"},
	}
}

// applyDefaults fills in missing values.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Scan.Keep == 0 {
		c.Scan.Keep = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
