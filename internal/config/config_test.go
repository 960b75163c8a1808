package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default ServerPort 8080, got %s", cfg.ServerPort)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected Addr :8080, got %s", cfg.Addr())
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected cache disabled by default, got %s", cfg.RedisAddr)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("unexpected log defaults: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default ShutdownTimeout 10s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.ResetDB {
		t.Error("expected ResetDB false by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MYSQL_DSN", "root:secret@tcp(db:3306)/users?parseTime=True")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("PUBLIC_BASE_URL", "https://users.example.com")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("RESET_DB", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Addr() != ":9090" {
		t.Errorf("expected Addr :9090, got %s", cfg.Addr())
	}
	if cfg.MySQLDSN != "root:secret@tcp(db:3306)/users?parseTime=True" {
		t.Errorf("unexpected MySQLDSN %s", cfg.MySQLDSN)
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
		t.Errorf("unexpected redis config %s/%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.PublicBaseURL != "https://users.example.com" {
		t.Errorf("unexpected PublicBaseURL %s", cfg.PublicBaseURL)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected ShutdownTimeout 3s, got %s", cfg.ShutdownTimeout)
	}
	if !cfg.ResetDB {
		t.Error("expected ResetDB true")
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB, got nil")
	}
}
