package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/M-N-Hossain/bookverse-backend/internal/config"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "bookverse.db", cfg.SQLitePath)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.SeedData)
	assert.False(t, cfg.Production())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=bookverse")
	t.Setenv("SEED_DATA", "true")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "host=db user=app dbname=bookverse", cfg.DatabaseDSN)
	assert.True(t, cfg.SeedData)
	assert.True(t, cfg.Production())
}
