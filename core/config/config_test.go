package config

import (
	"strings"
	"testing"
)

func baseConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		Catalog:  CatalogConfig{Source: "file", Path: "data.json"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := baseConfig()

	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run_mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if cfg.Session.Backend != SessionBackendMemory {
		t.Errorf("session.backend = %q, want %q", cfg.Session.Backend, SessionBackendMemory)
	}
	if cfg.Session.KeyPrefix == "" {
		t.Error("expected default session key prefix")
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("database.sslmode = %q, want disable", cfg.Database.SSLMode)
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Telegram.Token = "" },
			wantErr: "token is required",
		},
		{
			name:    "webhook without url",
			mutate:  func(c *Config) { c.Telegram.RunMode = "webhook" },
			wantErr: "webhook.url is required",
		},
		{
			name:    "unknown run mode",
			mutate:  func(c *Config) { c.Telegram.RunMode = "carrier-pigeon" },
			wantErr: "invalid telegram.run_mode",
		},
		{
			name:    "file source without path",
			mutate:  func(c *Config) { c.Catalog.Path = "" },
			wantErr: "catalog.path is required",
		},
		{
			name: "postgres source without host",
			mutate: func(c *Config) {
				c.Catalog.Source = "postgres"
				c.Catalog.Path = ""
			},
			wantErr: "database.host is required",
		},
		{
			name:    "redis backend without addr",
			mutate:  func(c *Config) { c.Session.Backend = "redis" },
			wantErr: "session.redis_addr is required",
		},
		{
			name:    "unknown session backend",
			mutate:  func(c *Config) { c.Session.Backend = "mongodb" },
			wantErr: "invalid session.backend",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)

			err := Normalize(cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := baseConfig()
	cfg.Telegram.RunMode = "polling"

	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run_mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}
