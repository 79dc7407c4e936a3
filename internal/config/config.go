package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Backend  BackendConfig  `yaml:"backend"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig configures SQLite storage.
type DatabaseConfig struct {
	Path       string `yaml:"path"`
	Migrations string `yaml:"migrations"`
}

// BackendConfig points at the remote game backend this service mirrors.
type BackendConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	LeaderboardSize int    `yaml:"leaderboard_size"`
}

// ScheduleConfig configures the background poll and the manual-refresh
// debounce window.
type ScheduleConfig struct {
	PollInterval  string `yaml:"poll_interval"`
	RefreshMinGap string `yaml:"refresh_min_gap"`
}

// ParsePollInterval returns the poll interval as time.Duration.
func (s ScheduleConfig) ParsePollInterval() time.Duration {
	d, err := time.ParseDuration(s.PollInterval)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ParseRefreshMinGap returns the debounce window as time.Duration.
func (s ScheduleConfig) ParseRefreshMinGap() time.Duration {
	d, err := time.ParseDuration(s.RefreshMinGap)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: 7071},
		Database: DatabaseConfig{Path: "./data.sqlite3", Migrations: "./migrations"},
		Backend:  BackendConfig{LeaderboardSize: 100},
		Schedule: ScheduleConfig{
			PollInterval:  "30s",
			RefreshMinGap: "10s",
		},
	}
}

// Load reads configuration from a YAML file and applies env var overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("BACKEND_API_KEY"); v != "" {
		cfg.Backend.APIKey = v
	}
	if v := os.Getenv("LEADERBOARD_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			cfg.Backend.LeaderboardSize = size
		}
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		cfg.Schedule.PollInterval = v
	}
	if v := os.Getenv("REFRESH_MIN_GAP"); v != "" {
		cfg.Schedule.RefreshMinGap = v
	}
}
