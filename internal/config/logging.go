package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// LogConfig configures the global zerolog logger
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery uint32 `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
}

// LoadLog reads LogConfig from the environment
func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	if err := env.Parse(&cfg); err != nil {
		return LogConfig{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse log config")
	}
	return cfg, nil
}
