package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rune-caster/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Spells SpellsConfig
	Log    LogConfig
}

// RedisConfig holds Redis-specific configuration. Redis is optional; when
// neither URL nor Addr is set the catalog file is the only spell source.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SpellsConfig points at the authoring files
type SpellsConfig struct {
	Catalog string `env:"SPELL_CATALOG" envDefault:"configs/spells.yaml"`
	Scene   string `env:"SPELL_SCENE" envDefault:"configs/scene.yaml"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "failed to parse environment")
	}

	if cfg.Spells.Catalog == "" {
		return nil, errors.Validation("SPELL_CATALOG cannot be empty")
	}
	if cfg.Redis.DB < 0 {
		return nil, errors.Validationf("REDIS_DB must not be negative: %d", cfg.Redis.DB)
	}

	return cfg, nil
}

// Enabled reports whether a Redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// Options returns client options, preferring URL over Addr. It returns nil
// when Redis is not configured.
func (c RedisConfig) Options() (*redis.Options, error) {
	switch {
	case c.URL != "":
		opts, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeValidation, "invalid REDIS_URL")
		}
		return opts, nil
	case c.Addr != "":
		return &redis.Options{Addr: c.Addr, Password: c.Password, DB: c.DB}, nil
	default:
		return nil, nil
	}
}
