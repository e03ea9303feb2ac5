package config

import (
	"github.com/caarlos0/env/v11"
)

// TestConfig holds settings for integration tests against real services
type TestConfig struct {
	PostgresDSN string `env:"TEST_POSTGRES_DSN,required,notEmpty"`
}

// LoadTest fails when TEST_POSTGRES_DSN is unset
func LoadTest() (TestConfig, error) {
	var cfg TestConfig
	err := env.Parse(&cfg)
	return cfg, err
}
