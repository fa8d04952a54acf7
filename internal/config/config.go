package config

import (
	"strings"
	"time"
)

// Config is the root configuration for the CLI.
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}

// APIConfig holds PlayMoney API settings.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Version    string        `yaml:"version"`
	APIKey     string        `yaml:"api_key"`      // sent as x-api-key
	APIKeyFile string        `yaml:"api_key_file"` // file holding the key, alternative to api_key
	Timeout    time.Duration `yaml:"timeout"`
}

// Endpoint returns the versioned API root.
func (a APIConfig) Endpoint() string {
	return strings.TrimRight(a.BaseURL, "/") + "/" + strings.Trim(a.Version, "/")
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // empty logs to stderr only
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}
