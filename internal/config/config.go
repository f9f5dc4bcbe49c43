// Package config loads process configuration from the environment via Viper
// and validates it once at startup, before any traffic is accepted.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every tunable the process reads from its environment.
type Config struct {
	AppPort     string // listen address, e.g. ":8080"
	AppEnv      string // "development" or "production"
	DatabaseDSN string // PostgreSQL DSN; when empty, SQLitePath is used instead
	SQLitePath  string // SQLite database file, used when DatabaseDSN is empty
	JWTSecret   string // HMAC secret for signing bearer tokens, required
	RabbitMQURL string // optional; event publishing is disabled when empty
	SeedData    bool   // seed default genres and books at startup
}

// Load reads configuration from environment variables, applying defaults.
// A missing JWT_SECRET is a startup error so it can never surface as a
// per-request failure later.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("SQLITE_PATH", "bookverse.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED_DATA", false)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:     v.GetString("APP_PORT"),
		AppEnv:      v.GetString("APP_ENV"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		SQLitePath:  v.GetString("SQLITE_PATH"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		SeedData:    v.GetBool("SEED_DATA"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

// Production reports whether the process runs in production mode, which
// hides internal error details from clients.
func (c *Config) Production() bool {
	return c.AppEnv == "production"
}
