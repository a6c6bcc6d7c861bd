package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("PAYMENT_CURRENCY", "")
	t.Setenv("CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, "session", cfg.Auth.SessionCookie)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.False(t, cfg.Payment.Enabled())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/handyhub")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8000"},
			Database: DatabaseConfig{Driver: "postgres", URL: "postgres://x"},
			Auth:     AuthConfig{JWTSecret: "s"},
			Payment:  PaymentConfig{Currency: "usd"},
		}
	}

	require.NoError(t, base().Validate())

	cfg := base()
	cfg.Database.URL = ""
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

	cfg = base()
	cfg.Database.Driver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "DB_DRIVER")

	cfg = base()
	cfg.Payment.Currency = "dollars"
	assert.ErrorContains(t, cfg.Validate(), "PAYMENT_CURRENCY")
}
