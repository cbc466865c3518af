package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs all issued tokens. Rotating it invalidates every
	// outstanding token.
	JWTSecret     string `env:"JWT_SECRET, default=dev-secret-key"`
	TokenTTLSecs  int    `env:"JWT_TTL_SECONDS, default=3600"`
	DatabaseURL   string `env:"DATABASE_URL, default=postgres://localhost:5432/planventure?sslmode=disable"`
	AllowedOrigin string `env:"CORS_ORIGINS, default=*"`
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSecs) * time.Second
}

// IsDevelopment reports whether the process runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
