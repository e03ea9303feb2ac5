package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// ServerConfig configures the listeners and journal cadence
type ServerConfig struct {
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"50051"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	GenesisPath     string        `env:"GENESIS_PATH"`
	SnapshotEvery   int           `env:"SNAPSHOT_EVERY" envDefault:"100"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// LoadServer reads ServerConfig from the environment
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse server config")
	}
	return cfg, cfg.Validate()
}

// Validate checks ports and cadence
func (c ServerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.SnapshotEvery < 0 {
		vb.Field("SNAPSHOT_EVERY", "must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field("SHUTDOWN_TIMEOUT", "must be positive")
	}
	return vb.Build()
}
