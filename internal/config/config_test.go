package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URI", "postgres://localhost:5432/donate?sslmode=disable")
	t.Setenv("CONSUMER_TOKEN", "game-server-token")
}

func TestNewConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.RunAddr)
	assert.Equal(t, 5.0, cfg.CoinRate)
	assert.Equal(t, 0.5, cfg.MoneyRate)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestNewConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("COIN_RATE", "10")
	t.Setenv("ALLOWED_ORIGINS", "https://donate.example.com,https://admin.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.CoinRate)
	assert.Equal(t, []string{"https://donate.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestNewConfig_MissingDatabase(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("CONSUMER_TOKEN", "token")

	_, err := NewConfig()
	assert.EqualError(t, err, "DATABASE_URI is required")
}

func TestNewConfig_MissingToken(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/donate")
	t.Setenv("CONSUMER_TOKEN", "")

	_, err := NewConfig()
	assert.EqualError(t, err, "CONSUMER_TOKEN is required")
}

func TestNewConfig_BadRates(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONEY_RATE", "-1")

	_, err := NewConfig()
	assert.EqualError(t, err, "conversion rates must be positive")
}
