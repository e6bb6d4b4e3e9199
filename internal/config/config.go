package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

type BackendConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type Config struct {
	Port             string        `yaml:"port"`
	Backend          BackendConfig `yaml:"backend"`
	SubmitCooldownMs int           `yaml:"submit_cooldown_ms"`
}

func Default() Config {
	return Config{
		Port: "8080",
		Backend: BackendConfig{
			TimeoutMs: 10000,
		},
		SubmitCooldownMs: 2000,
	}
}

// Load reads the YAML config file when path is non-empty, then applies env
// overrides on top. Env wins over file, file wins over defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("BACKEND_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Backend.TimeoutMs = ms
		}
	}
	if v := os.Getenv("SUBMIT_COOLDOWN_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.SubmitCooldownMs = ms
		}
	}

	if cfg.Backend.BaseURL == "" {
		return cfg, fmt.Errorf("backend.base_url is required (or set BACKEND_BASE_URL)")
	}
	return cfg, nil
}

func (c Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutMs) * time.Millisecond
}

func (c Config) SubmitCooldown() time.Duration {
	return time.Duration(c.SubmitCooldownMs) * time.Millisecond
}
