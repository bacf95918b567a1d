package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("GAME_TIME_OFFSET_HOURS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.JWTExpiry != 7*24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 168h", cfg.JWTExpiry)
	}
	if cfg.GameTimeOffsetHours != -2 {
		t.Errorf("GameTimeOffsetHours = %d, want -2", cfg.GameTimeOffsetHours)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/tracker")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("GAME_TIME_OFFSET_HOURS", "0")
	t.Setenv("ENABLE_HSTS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("JWTExpiry = %v, want 1h", cfg.JWTExpiry)
	}
	if cfg.GameTimeOffsetHours != 0 {
		t.Errorf("GameTimeOffsetHours = %d, want 0", cfg.GameTimeOffsetHours)
	}
	if !cfg.EnableHSTS {
		t.Error("EnableHSTS = false, want true")
	}
}
