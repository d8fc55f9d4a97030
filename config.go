package linkkeep

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration, loaded once at startup.
// The signing secret has no default on purpose.
type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":3000"`
	DatabaseDSN string        `env:"DATABASE_DSN" envDefault:"file:linkkeep.db"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"30m"`
	TokenIssuer string        `env:"TOKEN_ISSUER" envDefault:"linkkeep"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Redacted returns a copy safe for logging.
func (c Config) Redacted() Config {
	if c.JWTSecret != "" {
		c.JWTSecret = "[redacted]"
	}
	return c
}
