// Package config loads the YAML configuration file and applies environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"travmatch/internal/storage"
)

// SourceConfig identifies one message channel to scan.
type SourceConfig struct {
	// ID is the stable numeric identifier of the channel; cursor and post
	// rows are keyed by it.
	ID int64 `yaml:"id"`

	// Kind selects the feed: "jsonl" or "nats".
	Kind string `yaml:"kind"`

	// Path of the JSONL export (kind "jsonl").
	Path string `yaml:"path"`

	// NATS settings (kind "nats").
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`

	// Search keeps only messages containing this needle, e.g. "#مسافر".
	Search string `yaml:"search"`
}

// ArchiveConfig controls the optional ClickHouse archive sink.
type ArchiveConfig struct {
	Enabled    bool                     `yaml:"enabled"`
	ClickHouse storage.ClickHouseConfig `yaml:"clickhouse"`
}

// Config is the root configuration.
type Config struct {
	Source    SourceConfig   `yaml:"source"`
	Store     storage.Config `yaml:"store"`
	Archive   ArchiveConfig  `yaml:"archive"`
	BatchSize int            `yaml:"batch_size"`
	LogLevel  string         `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Source:   SourceConfig{Kind: "jsonl"},
		Store:    storage.DefaultConfig(),
		LogLevel: "info",
	}
}

// Load reads the YAML file at path (skipped when path is empty), then
// applies environment overrides, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv lets deployment environments override file settings.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TRAVMATCH_SOURCE_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Source.ID = id
		}
	}
	if v := os.Getenv("TRAVMATCH_SOURCE_PATH"); v != "" {
		cfg.Source.Kind = "jsonl"
		cfg.Source.Path = v
	}
	if v := os.Getenv("TRAVMATCH_NATS_URL"); v != "" {
		cfg.Source.Kind = "nats"
		cfg.Source.NATSURL = v
	}
	if v := os.Getenv("TRAVMATCH_NATS_SUBJECT"); v != "" {
		cfg.Source.Subject = v
	}
	if v := os.Getenv("TRAVMATCH_DB"); v != "" {
		cfg.Store.Backend = "sqlite"
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("TRAVMATCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks the hard preconditions for a run. Missing source settings
// must stop the run before any cursor work happens.
func (c *Config) Validate() error {
	if c.Source.ID == 0 {
		return fmt.Errorf("source.id is required")
	}
	switch c.Source.Kind {
	case "jsonl":
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for a jsonl source")
		}
	case "nats":
		if c.Source.NATSURL == "" || c.Source.Subject == "" {
			return fmt.Errorf("source.nats_url and source.subject are required for a nats source")
		}
	default:
		return fmt.Errorf("unknown source.kind %q", c.Source.Kind)
	}
	switch c.Store.Backend {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	return nil
}
