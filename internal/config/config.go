// Package config reads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DatabaseURL selects the Postgres stores; empty keeps everything in memory.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	// RedisAddr enables the catalog read-through cache.
	RedisAddr string        `envconfig:"REDIS_ADDR"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	// WriteLimitPerMin caps write requests per client IP; 0 disables the limiter.
	WriteLimitPerMin int `envconfig:"WRITE_LIMIT_PER_MIN" default:"60"`
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load applies envFile (if it exists) to the environment and then processes
// the variables. Values already in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.WriteLimitPerMin < 0 {
		return nil, fmt.Errorf("WRITE_LIMIT_PER_MIN must not be negative, got %d", cfg.WriteLimitPerMin)
	}
	return &cfg, nil
}
