package config

import (
	"fmt"
	"time"

	"rpsls/internal/game"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	// Opponent draw range [OpponentMinIndex, OpponentMaxIndex).
	// OPPONENT_MIN_INDEX=1 reproduces the old robot that never picked Rock.
	OpponentMinIndex int `env:"OPPONENT_MIN_INDEX" envDefault:"0"`
	OpponentMaxIndex int `env:"OPPONENT_MAX_INDEX" envDefault:"5"`

	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	APIRateLimit         int `env:"API_RATE_LIMIT" envDefault:"10"`
	APIRateWindowSeconds int `env:"API_RATE_WINDOW_SECONDS" envDefault:"60"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.OpponentRange().Validate(); err != nil {
		return nil, fmt.Errorf("OPPONENT_MIN_INDEX/OPPONENT_MAX_INDEX: %w", err)
	}
	if cfg.APIRateLimit <= 0 {
		cfg.APIRateLimit = 10
	}
	if cfg.APIRateWindowSeconds <= 0 {
		cfg.APIRateWindowSeconds = 60
	}
	return &cfg, nil
}

func (c *Config) OpponentRange() game.IndexRange {
	return game.IndexRange{Min: c.OpponentMinIndex, Max: c.OpponentMaxIndex}
}

func (c *Config) APIRateWindow() time.Duration {
	return time.Duration(c.APIRateWindowSeconds) * time.Second
}
