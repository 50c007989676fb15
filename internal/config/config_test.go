package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
source:
  id: 12345
  kind: jsonl
  path: export.jsonl
  search: "#مسافر"
store:
  backend: sqlite
  sqlite_path: data.db
batch_size: 25
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.ID != 12345 {
		t.Errorf("source.id = %d, want 12345", cfg.Source.ID)
	}
	if cfg.Source.Path != "export.jsonl" {
		t.Errorf("source.path = %q, want export.jsonl", cfg.Source.Path)
	}
	if cfg.Source.Search != "#مسافر" {
		t.Errorf("source.search = %q, want #مسافر", cfg.Source.Search)
	}
	if cfg.Store.SQLitePath != "data.db" {
		t.Errorf("sqlite path = %q, want data.db", cfg.Store.SQLitePath)
	}
	if cfg.BatchSize != 25 {
		t.Errorf("batch_size = %d, want 25", cfg.BatchSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
source:
  id: 1
  path: export.jsonl
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.Kind != "jsonl" {
		t.Errorf("kind = %q, want default jsonl", cfg.Source.Kind)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("backend = %q, want default sqlite", cfg.Store.Backend)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want default info", cfg.LogLevel)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
source:
  id: 1
  kind: jsonl
  path: from-file.jsonl
`)
	t.Setenv("TRAVMATCH_SOURCE_ID", "99")
	t.Setenv("TRAVMATCH_SOURCE_PATH", "from-env.jsonl")
	t.Setenv("TRAVMATCH_DB", "env.db")
	t.Setenv("TRAVMATCH_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.ID != 99 {
		t.Errorf("source.id = %d, want env override 99", cfg.Source.ID)
	}
	if cfg.Source.Path != "from-env.jsonl" {
		t.Errorf("source.path = %q, want from-env.jsonl", cfg.Source.Path)
	}
	if cfg.Store.SQLitePath != "env.db" {
		t.Errorf("sqlite path = %q, want env.db", cfg.Store.SQLitePath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log_level = %q, want warn", cfg.LogLevel)
	}
}

func TestEnvSwitchesToNATS(t *testing.T) {
	path := writeConfig(t, `
source:
  id: 1
  kind: jsonl
  path: export.jsonl
`)
	t.Setenv("TRAVMATCH_NATS_URL", "nats://localhost:4222")
	t.Setenv("TRAVMATCH_NATS_SUBJECT", "posts.channel")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.Kind != "nats" {
		t.Errorf("kind = %q, want nats", cfg.Source.Kind)
	}
	if cfg.Source.NATSURL != "nats://localhost:4222" || cfg.Source.Subject != "posts.channel" {
		t.Errorf("nats = %q/%q, want env values", cfg.Source.NATSURL, cfg.Source.Subject)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid jsonl", func(c *Config) {}, true},
		{"missing id", func(c *Config) { c.Source.ID = 0 }, false},
		{"jsonl without path", func(c *Config) { c.Source.Path = "" }, false},
		{"nats without subject", func(c *Config) {
			c.Source.Kind = "nats"
			c.Source.NATSURL = "nats://localhost:4222"
		}, false},
		{"valid nats", func(c *Config) {
			c.Source.Kind = "nats"
			c.Source.NATSURL = "nats://localhost:4222"
			c.Source.Subject = "posts"
		}, true},
		{"unknown kind", func(c *Config) { c.Source.Kind = "carrier-pigeon" }, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "mongodb" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Source.ID = 1
			cfg.Source.Path = "export.jsonl"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate: %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate: nil, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
