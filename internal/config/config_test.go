package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected port %q, got %q", "5000", cfg.Port)
	}
	if cfg.MaxUploadBytes != 16<<20 {
		t.Errorf("expected 16MB limit, got %d", cfg.MaxUploadBytes)
	}
	if len(cfg.AllowedExtensions) != 1 || cfg.AllowedExtensions[0] != ".docx" {
		t.Errorf("expected [.docx], got %q", cfg.AllowedExtensions)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h TTL, got %s", cfg.SessionTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "8091")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("ALLOWED_EXTENSIONS", ".docx,.MD")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8091" {
		t.Errorf("expected port %q, got %q", "8091", cfg.Port)
	}
	if cfg.SessionTTL != 15*time.Minute {
		t.Errorf("expected 15m TTL, got %s", cfg.SessionTTL)
	}
	if !cfg.IsAllowed(".md") || !cfg.IsAllowed(".DOCX") {
		t.Errorf("expected .md and .docx allowed, got %q", cfg.AllowedExtensions)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.Level())
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saesum.yaml")
	data := "port: \"7000\"\nmax_upload_bytes: 1024\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7000" {
		t.Errorf("expected port %q, got %q", "7000", cfg.Port)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("expected 1024, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate_Rejects(t *testing.T) {
	base, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	cases := map[string]func(*Config){
		"empty port":      func(c *Config) { c.Port = "" },
		"bad port":        func(c *Config) { c.Port = "http" },
		"zero upload":     func(c *Config) { c.MaxUploadBytes = 0 },
		"no extensions":   func(c *Config) { c.AllowedExtensions = nil },
		"extension w/o .": func(c *Config) { c.AllowedExtensions = []string{"docx"} },
		"zero ttl":        func(c *Config) { c.SessionTTL = 0 },
		"bad log level":   func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		cfg := base
		cfg.AllowedExtensions = append([]string(nil), base.AllowedExtensions...)
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
