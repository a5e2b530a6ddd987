// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Markdown confirmation policies selectable via PRICE_MARKDOWN_POLICY.
const (
	PolicyApprove = "approve"
	PolicyDeny    = "deny"
	PolicyPrompt  = "prompt"
)

// Config holds configuration knobs for the HTTP server and the catalog.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CatalogPath     string        `env:"CATALOG_PATH" envDefault:"catalog.json"`
	MarkdownPolicy  string        `env:"PRICE_MARKDOWN_POLICY" envDefault:"deny"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.MarkdownPolicy {
	case PolicyApprove, PolicyDeny, PolicyPrompt:
	default:
		return Config{}, fmt.Errorf("unknown PRICE_MARKDOWN_POLICY %q", cfg.MarkdownPolicy)
	}
	return cfg, nil
}
