package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the process-wide configuration, loaded once at startup.
type Config struct {
	AppPort     string
	JWTSecret   string
	TokenTTL    time.Duration
	DBDriver    string
	DatabaseDSN string
	RabbitMQURL string
}

// Load reads configuration from the environment with Viper. JWT_SECRET
// has no default on purpose: signing with a baked-in literal is exactly
// the deployment mistake this refuses to allow, so startup fails fast
// when it is missing.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("TOKEN_TTL", "1h")
	v.SetDefault("DB_DRIVER", "memory")
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	ttl := v.GetDuration("TOKEN_TTL")
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", v.GetString("TOKEN_TTL"))
	}

	driver := v.GetString("DB_DRIVER")
	switch driver {
	case "memory", "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("DB_DRIVER must be memory, sqlite, or postgres, got %q", driver)
	}

	return &Config{
		AppPort:     v.GetString("APP_PORT"),
		JWTSecret:   secret,
		TokenTTL:    ttl,
		DBDriver:    driver,
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
	}, nil
}
