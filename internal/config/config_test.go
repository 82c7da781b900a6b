package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.MISP.VerifySSL {
		t.Error("TLS verification must default to on")
	}
	if cfg.MISP.APIKeyEnv != "MISP_API_KEY" {
		t.Errorf("expected default key env MISP_API_KEY, got %q", cfg.MISP.APIKeyEnv)
	}
	if cfg.Redis.Enabled || cfg.RateLimit.Enabled {
		t.Error("redis-backed features must default to off")
	}
	if cfg.FaultLog.MaxSizeMB != 100 {
		t.Errorf("expected 100MB fault log cap, got %d", cfg.FaultLog.MaxSizeMB)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 15s
misp:
  base_url: https://misp.internal.example
  api_key_env: MISP_KEY_PROD
  verify_ssl: false
  timeout: 45s
redis:
  enabled: true
  addr: redis.internal:6379
  cache_ttl: 30m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Std() != 15*time.Second {
		t.Errorf("expected 15s read timeout, got %v", cfg.Server.ReadTimeout.Std())
	}
	if cfg.MISP.BaseURL != "https://misp.internal.example" {
		t.Errorf("unexpected base URL %q", cfg.MISP.BaseURL)
	}
	if cfg.MISP.Timeout.Std() != 45*time.Second {
		t.Errorf("expected 45s misp timeout, got %v", cfg.MISP.Timeout.Std())
	}
	if cfg.MISP.VerifySSL {
		t.Error("verify_ssl: false should be honored")
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis.internal:6379" {
		t.Errorf("redis settings not applied: %+v", cfg.Redis)
	}
	if cfg.Redis.CacheTTL.Std() != 30*time.Minute {
		t.Errorf("expected 30m cache TTL, got %v", cfg.Redis.CacheTTL.Std())
	}

	// Untouched sections keep their defaults.
	if cfg.Server.WriteTimeout.Std() != 30*time.Second {
		t.Errorf("unset write_timeout should keep its default, got %v", cfg.Server.WriteTimeout.Std())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unset logging level should keep its default, got %q", cfg.Logging.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
misp:
  timeout: not-a-duration
`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unparsable duration")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
