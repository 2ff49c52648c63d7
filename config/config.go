package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	DBURL     string `env:"DB_URL,required"`
	RedisAddr string `env:"REDIS_ADDR"`

	// SigningSecret is the single shared HMAC secret. Rotating it
	// invalidates every outstanding token.
	SigningSecret string `env:"SIGNING_SECRET,required"`

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"24h"`

	RotateOnRefresh     bool `env:"ROTATE_ON_REFRESH" envDefault:"true"`
	RevokeAfterRotation bool `env:"REVOKE_AFTER_ROTATION" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
