package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("default port: got %q", cfg.Server.Port)
	}
	if cfg.JWT.TokenTTL != 7*24*time.Hour {
		t.Errorf("default token TTL: got %v", cfg.JWT.TokenTTL)
	}
	if cfg.Cookie.Secure {
		t.Error("cookies must not be secure in development")
	}
	if !cfg.CORS.AllowCredentials {
		t.Error("CORS credentials must default on")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestGetDSN(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_USER", "favlib")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "favlib")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := "postgres://favlib:pw@db.internal:5433/favlib?sslmode=require&connect_timeout=10"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN: got %q want %q", got, want)
	}

	// DATABASE_URL wins over the individual parts
	t.Setenv("DATABASE_URL", "postgres://u:p@elsewhere:5432/other")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := cfg.GetDSN(); got != "postgres://u:p@elsewhere:5432/other" {
		t.Errorf("DATABASE_URL priority: got %q", got)
	}
}

func TestLoad_ProductionCookies(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Cookie.Secure {
		t.Error("cookies must be secure in production")
	}
}

func TestStringSliceEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("CLIENT_URL", "https://favlib.app, https://staging.favlib.app")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	got := cfg.CORS.AllowedOrigins
	if len(got) != 2 || got[0] != "https://favlib.app" || got[1] != "https://staging.favlib.app" {
		t.Errorf("origins: got %v", got)
	}
}

func TestIsCloudinaryConfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("CLOUD_NAME", "demo")
	t.Setenv("API_KEY", "key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.IsCloudinaryConfigured() {
		t.Error("incomplete credentials must not count as configured")
	}

	t.Setenv("API_SECRET", "secret")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.IsCloudinaryConfigured() {
		t.Error("full credentials must count as configured")
	}
}
