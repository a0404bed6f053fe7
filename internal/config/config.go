// Package config holds runtime configuration for the P2H client.
// Values resolve in order: defaults, then an optional YAML config
// file, then environment variables, then flags (applied by main).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "2m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds configuration shared by the web client and the CLI.
type Config struct {
	// APIBaseURL is the P2H backend base URL.
	APIBaseURL string `yaml:"api_base_url"`
	// APITimeout bounds every backend call.
	APITimeout Duration `yaml:"api_timeout"`

	// Addr is the web client listen address.
	Addr string `yaml:"addr"`
	// DBPath is the SQLite session database path (default
	// ~/.p2h/p2h.db, ":memory:" for testing).
	DBPath string `yaml:"db_path"`
	// SecureCookies marks session cookies Secure (HTTPS deployments).
	SecureCookies bool `yaml:"secure_cookies"`

	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json

	// Language selects the notice catalog: "id" (default) or "en".
	Language string `yaml:"language"`
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		APIBaseURL: "http://localhost:8000",
		APITimeout: Duration(30 * time.Second),
		Addr:       ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		Language:   "id",
	}
}

// LoadFile overlays values from a YAML config file. Unset fields in
// the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// FromEnv overlays values from P2H_* environment variables.
func (c *Config) FromEnv() {
	if v := os.Getenv("P2H_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("P2H_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.APITimeout = Duration(d)
		}
	}
	if v := os.Getenv("P2H_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("P2H_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("P2H_SECURE_COOKIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SecureCookies = b
		}
	}
	if v := os.Getenv("P2H_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("P2H_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("P2H_LANG"); v != "" {
		c.Language = v
	}
}
