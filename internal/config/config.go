package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Auth modes. Cookie sessions are the default contract; token mode is the
// stateless relaxation where login returns a bearer JWT instead.
const (
	AuthModeCookie = "cookie"
	AuthModeToken  = "token"
)

// Config is the process configuration, loaded from the environment
// (optionally seeded from a .env file).
type Config struct {
	Port    string `env:"PORT"     envDefault:"3000"`
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	AuthMode   string        `env:"AUTH_MODE"   envDefault:"cookie"`
	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// SeedFile overrides the built-in delegate roster.
	SeedFile string `env:"SEED_FILE"`

	// AllowUserQuery enables GET /api/forum/doubts/user/:id with an
	// explicit id instead of the session. Off by default.
	AllowUserQuery bool `env:"ALLOW_USER_QUERY" envDefault:"false"`
}

// Load reads .env if present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AuthMode != AuthModeCookie && cfg.AuthMode != AuthModeToken {
		return Config{}, fmt.Errorf("invalid AUTH_MODE %q", cfg.AuthMode)
	}
	if cfg.AuthMode == AuthModeToken && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required when AUTH_MODE=token")
	}
	return cfg, nil
}
