package config

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func validConfig() *Config {
	return &Config{
		Port:           "8000",
		Env:            "development",
		LogLevel:       "info",
		BaseURL:        "http://localhost:8000/fhir",
		ListSize:       10,
		RateLimitRPS:   100,
		RateLimitBurst: 200,
		RequestTimeout: 30 * time.Second,
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.ListSize != 10 {
		t.Errorf("expected default list size 10, got %d", cfg.ListSize)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.RequestTimeout)
	}
	if cfg.BaseURL != "http://localhost:8000/fhir" {
		t.Errorf("expected derived base URL, got %s", cfg.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LIST_SIZE", "25")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("BASE_URL", "https://mock.example.com/fhir")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.ListSize != 25 {
		t.Errorf("expected list size 25, got %d", cfg.ListSize)
	}
	if cfg.RandomSeed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.RandomSeed)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.RequestTimeout)
	}
	if cfg.BaseURL != "https://mock.example.com/fhir" {
		t.Errorf("expected BASE_URL to be kept, got %s", cfg.BaseURL)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"valid", func(*Config) {}, ""},
		{"non-numeric port", func(c *Config) { c.Port = "http" }, "PORT"},
		{"unknown env", func(c *Config) { c.Env = "staging" }, "ENV"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL"},
		{"zero list size", func(c *Config) { c.ListSize = 0 }, "LIST_SIZE"},
		{"zero rps", func(c *Config) { c.RateLimitRPS = 0 }, "RATE_LIMIT_RPS"},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, "RATE_LIMIT_BURST"},
		{"bad base url", func(c *Config) { c.BaseURL = "not a url" }, "BASE_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantKey == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s", tt.wantKey)
			}
			if !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("expected error to mention %s, got %v", tt.wantKey, err)
			}
		})
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_Level(t *testing.T) {
	if lvl := (&Config{LogLevel: "debug"}).Level(); lvl != zerolog.DebugLevel {
		t.Errorf("expected debug, got %v", lvl)
	}
	if lvl := (&Config{LogLevel: "nonsense"}).Level(); lvl != zerolog.InfoLevel {
		t.Errorf("expected fallback to info, got %v", lvl)
	}
	if lvl := (&Config{}).Level(); lvl != zerolog.InfoLevel {
		t.Errorf("expected empty level to be info, got %v", lvl)
	}
}
