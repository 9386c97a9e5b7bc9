package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")
	t.Setenv("POLL_MAX_ATTEMPTS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q", cfg.Port)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("APIBaseURL mismatch: got %q", cfg.APIBaseURL)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Fatalf("PollInterval mismatch: got %v", cfg.PollInterval)
	}
	if cfg.PollMaxAttempts != 60 {
		t.Fatalf("PollMaxAttempts mismatch: got %d", cfg.PollMaxAttempts)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("POLL_INTERVAL_SECONDS", "5")
	t.Setenv("POLL_MAX_ATTEMPTS", "10")
	t.Setenv("SESSION_DB_PATH", "/tmp/session.db")
	t.Setenv("DOWNLOAD_DIR", "/tmp/out")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval mismatch: got %v", cfg.PollInterval)
	}
	if cfg.PollMaxAttempts != 10 {
		t.Fatalf("PollMaxAttempts mismatch: got %d", cfg.PollMaxAttempts)
	}
	if cfg.SessionDBPath != "/tmp/session.db" {
		t.Fatalf("SessionDBPath mismatch: got %q", cfg.SessionDBPath)
	}
	if cfg.DownloadDir != "/tmp/out" {
		t.Fatalf("DownloadDir mismatch: got %q", cfg.DownloadDir)
	}
}

func TestLoadConfigRejectsNonPositivePoll(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("POLL_INTERVAL_SECONDS", "0")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero poll interval")
	}
}
