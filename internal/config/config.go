package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the whole process configuration, parsed once at startup
// and injected into components. Nothing reads the environment after
// this.
type Config struct {
	RunAddr        string   `env:"RUN_ADDRESS" envDefault:":8080"`
	DatabaseURI    string   `env:"DATABASE_URI"`
	CoinRate       float64  `env:"COIN_RATE" envDefault:"5"`
	MoneyRate      float64  `env:"MONEY_RATE" envDefault:"0.5"`
	ConsumerToken  string   `env:"CONSUMER_TOKEN"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	GatewayBaseURL string   `env:"GATEWAY_BASE_URL" envDefault:"https://api.sandbox.paypal.com"`
	GatewayID      string   `env:"GATEWAY_CLIENT_ID"`
	GatewaySecret  string   `env:"GATEWAY_CLIENT_SECRET"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DatabaseURI == "" {
		return nil, errors.New("DATABASE_URI is required")
	}
	if cfg.ConsumerToken == "" {
		return nil, errors.New("CONSUMER_TOKEN is required")
	}
	if cfg.CoinRate <= 0 || cfg.MoneyRate <= 0 {
		return nil, errors.New("conversion rates must be positive")
	}

	return cfg, nil
}
