package config

import (
	"os"
	"testing"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	// defaults
	os.Unsetenv("SIMPLESOCIAL_HTTP_ADDR")
	os.Unsetenv("SIMPLESOCIAL_DB_DSN")
	os.Unsetenv("SIMPLESOCIAL_JWT_SECRET")
	os.Unsetenv("SIMPLESOCIAL_MAX_UPLOAD_BYTES")
	os.Unsetenv("SIMPLESOCIAL_CORS_ORIGINS")
	cfg := Load()
	if cfg.HTTPAddr == "" || cfg.DatabaseDSN == "" || cfg.JWTSecret == "" {
		t.Fatalf("empty config fields")
	}
	if cfg.MaxUploadBytes <= 0 {
		t.Fatalf("bad upload cap: %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Fatalf("no default CORS origins")
	}

	// env override
	os.Setenv("SIMPLESOCIAL_HTTP_ADDR", ":9999")
	os.Setenv("SIMPLESOCIAL_DB_DSN", "file::memory:")
	os.Setenv("SIMPLESOCIAL_JWT_SECRET", "secret")
	os.Setenv("SIMPLESOCIAL_MAX_UPLOAD_BYTES", "1024")
	os.Setenv("SIMPLESOCIAL_CORS_ORIGINS", "https://a.example, https://b.example")
	cfg = Load()
	if cfg.HTTPAddr != ":9999" || cfg.DatabaseDSN != "file::memory:" || cfg.JWTSecret != "secret" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Fatalf("upload cap: %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors origins: %v", cfg.CORSOrigins)
	}
}
