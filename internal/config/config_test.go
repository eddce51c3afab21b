package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.AppPort)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token ttl 24h, got %v", cfg.TokenTTL)
	}
	if cfg.TokenIssuer != "riess-auth" {
		t.Fatalf("expected default issuer, got %q", cfg.TokenIssuer)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppPort != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.AppPort)
	}
	if cfg.GoogleClientID != "client-id" {
		t.Fatalf("expected google client id, got %q", cfg.GoogleClientID)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", cfg.TokenTTL)
	}
}
