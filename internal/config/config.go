package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the settings for the serve command. Values come from an
// optional YAML file, overridden by environment variables (DETENT_*); a
// .env file in the working directory is honored if present.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"DETENT_ADDR" yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"DETENT_LOG_LEVEL" yaml:"log_level"`

	// Redis enables the Redis snapshot store and distributed locking when
	// Addr is non-empty; otherwise machines live in memory.
	Redis RedisConfig `envPrefix:"DETENT_REDIS_" yaml:"redis"`

	// SnapshotKey is an optional hex-encoded 32-byte key; when set,
	// snapshots are encrypted at rest.
	SnapshotKey string `env:"DETENT_SNAPSHOT_KEY" yaml:"snapshot_key"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string `env:"ADDR" yaml:"addr"`
	Password string `env:"PASSWORD" yaml:"password"`
	DB       int    `env:"DB" yaml:"db"`
}

// Default returns a Config with the baseline values.
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Load builds the Config: defaults first, then the YAML file (if path is
// non-empty), then environment variables on top.
func Load(path string) (*Config, error) {
	// The .env file might not exist and that's ok.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
