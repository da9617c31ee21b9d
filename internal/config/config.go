package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration read from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// RedisAddr selects the Redis session store when set; otherwise sessions are kept in memory.
	RedisAddr            string        `env:"REDIS_ADDR"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionPruneInterval time.Duration `env:"SESSION_PRUNE_INTERVAL" envDefault:"24h"`
	SessionSecret        string        `env:"SESSION_SECRET"`

	// AdminUsernames may create group sessions and change their status.
	AdminUsernames []string `env:"ADMIN_USERNAMES" envSeparator:","`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"wellness-topic"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	RateLimit float64 `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst int     `env:"RATE_BURST" envDefault:"10"`

	SeedSampleData bool `env:"SEED_SAMPLE_DATA" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and checks its values.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.SessionPruneInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_PRUNE_INTERVAL must be positive, got %s", cfg.SessionPruneInterval)
	}
	if cfg.RateBurst < 1 {
		return Config{}, fmt.Errorf("RATE_BURST must be at least 1, got %d", cfg.RateBurst)
	}
	return cfg, nil
}

// EventsEnabled reports whether a Kafka broker list was configured.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
