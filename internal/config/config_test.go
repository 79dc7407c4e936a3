package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7071 {
		t.Errorf("port = %d, want 7071", cfg.Server.Port)
	}
	if cfg.Backend.LeaderboardSize != 100 {
		t.Errorf("leaderboard size = %d, want 100", cfg.Backend.LeaderboardSize)
	}
	if got := cfg.Schedule.ParsePollInterval(); got != 30*time.Second {
		t.Errorf("poll interval = %v, want 30s", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: 9000
backend:
  base_url: https://api.example.com
  leaderboard_size: 50
schedule:
  poll_interval: 2m
`), 0o644)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "https://api.example.com" {
		t.Errorf("base url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.LeaderboardSize != 50 {
		t.Errorf("leaderboard size = %d, want 50", cfg.Backend.LeaderboardSize)
	}
	if got := cfg.Schedule.ParsePollInterval(); got != 2*time.Minute {
		t.Errorf("poll interval = %v, want 2m", got)
	}
	// Unset keys keep defaults.
	if cfg.Database.Path != "./data.sqlite3" {
		t.Errorf("db path = %q, want default", cfg.Database.Path)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8123")
	t.Setenv("BACKEND_API_KEY", "secret")
	t.Setenv("LEADERBOARD_SIZE", "25")
	t.Setenv("REFRESH_MIN_GAP", "45s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8123 {
		t.Errorf("port = %d, want env override 8123", cfg.Server.Port)
	}
	if cfg.Backend.APIKey != "secret" {
		t.Errorf("api key = %q, want env override", cfg.Backend.APIKey)
	}
	if cfg.Backend.LeaderboardSize != 25 {
		t.Errorf("leaderboard size = %d, want env override 25", cfg.Backend.LeaderboardSize)
	}
	if got := cfg.Schedule.ParseRefreshMinGap(); got != 45*time.Second {
		t.Errorf("refresh min gap = %v, want env override 45s", got)
	}
}

func TestEnvOverrideBadNumberIgnored(t *testing.T) {
	t.Setenv("LEADERBOARD_SIZE", "lots")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.LeaderboardSize != 100 {
		t.Errorf("leaderboard size = %d, want default kept on bad value", cfg.Backend.LeaderboardSize)
	}
}

func TestParseIntervalFallback(t *testing.T) {
	s := ScheduleConfig{PollInterval: "not-a-duration", RefreshMinGap: ""}

	if got := s.ParsePollInterval(); got != 30*time.Second {
		t.Errorf("poll interval fallback = %v, want 30s", got)
	}
	if got := s.ParseRefreshMinGap(); got != 10*time.Second {
		t.Errorf("refresh min gap fallback = %v, want 10s", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
