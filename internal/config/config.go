// Package config loads service configuration from an optional YAML file with
// environment variable overrides. Environment always wins over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the storefront service needs at startup.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// UpstreamURL is the base URL of the commerce backend API.
	UpstreamURL string `yaml:"upstream_url"`

	// UpstreamTimeout bounds every upstream request.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`

	// SearchDebounce is the idle gap for search-as-you-type coalescing.
	SearchDebounce time.Duration `yaml:"search_debounce"`

	// PageSize is the number of products per category page.
	PageSize int `yaml:"page_size"`

	// ShutdownGrace bounds graceful HTTP shutdown.
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:            ":8080",
		UpstreamURL:     "http://localhost:9000/api",
		UpstreamTimeout: 15 * time.Second,
		SearchDebounce:  250 * time.Millisecond,
		PageSize:        12,
		ShutdownGrace:   5 * time.Second,
		LogLevel:        "info",
	}
}

// UnmarshalYAML decodes the file form of Config. yaml.v3 has no native
// time.Duration support, so duration keys take Go duration strings ("15s",
// "250ms") and go through time.ParseDuration. Absent keys leave the
// prefilled values untouched, which is what lets a partial file override
// only what it names.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Addr            string `yaml:"addr"`
		UpstreamURL     string `yaml:"upstream_url"`
		UpstreamTimeout string `yaml:"upstream_timeout"`
		SearchDebounce  string `yaml:"search_debounce"`
		PageSize        *int   `yaml:"page_size"`
		ShutdownGrace   string `yaml:"shutdown_grace"`
		LogLevel        string `yaml:"log_level"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Addr != "" {
		c.Addr = raw.Addr
	}
	if raw.UpstreamURL != "" {
		c.UpstreamURL = raw.UpstreamURL
	}
	if raw.PageSize != nil {
		c.PageSize = *raw.PageSize
	}
	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}

	durations := []struct {
		key string
		in  string
		out *time.Duration
	}{
		{"upstream_timeout", raw.UpstreamTimeout, &c.UpstreamTimeout},
		{"search_debounce", raw.SearchDebounce, &c.SearchDebounce},
		{"shutdown_grace", raw.ShutdownGrace, &c.ShutdownGrace},
	}
	for _, d := range durations {
		if d.in == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.in)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.out = parsed
	}
	return nil
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty the file must exist and parse), then env overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STOREFRONT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("STOREFRONT_UPSTREAM_URL"); v != "" {
		c.UpstreamURL = v
	}
	if v := os.Getenv("STOREFRONT_UPSTREAM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.UpstreamTimeout = d
		}
	}
	if v := os.Getenv("STOREFRONT_SEARCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SearchDebounce = d
		}
	}
	if v := os.Getenv("STOREFRONT_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("STOREFRONT_SHUTDOWN_GRACE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.ShutdownGrace = d
		}
	}
	if v := os.Getenv("STOREFRONT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.UpstreamURL == "" {
		return fmt.Errorf("upstream_url is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream_timeout must be positive")
	}
	return nil
}
