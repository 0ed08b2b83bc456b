// Package config loads the TOML configuration shared by the server and CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config : top-level configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	CardAPI CardAPIConfig `toml:"card_api"`
	Cache   CacheConfig   `toml:"cache"`
	Log     LogConfig     `toml:"log"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type CardAPIConfig struct {
	BaseURL string `toml:"base_url"`
	Locale  string `toml:"locale"`
	Timeout string `toml:"timeout"`
}

type CacheConfig struct {
	TTL string `toml:"ttl"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Server:  ServerConfig{Port: 8080},
		CardAPI: CardAPIConfig{BaseURL: "https://api.hearthstonejson.com/v1/latest", Locale: "en_US", Timeout: "15s"},
		Cache:   CacheConfig{TTL: "24h"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout parses the card API timeout, falling back to the default on a
// bad value.
func (c CardAPIConfig) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, 15*time.Second)
}

// TTLDuration parses the cache TTL, falling back to the default.
func (c CacheConfig) TTLDuration() time.Duration {
	return parseDuration(c.TTL, 24*time.Hour)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		slog.Warn("[config] bad duration, using default", "value", s, "default", fallback)
		return fallback
	}
	return d
}

// ParseLevel maps the configured log level to a slog level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
