package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// TelemetryConfig enables OTLP trace export when Endpoint is set
type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_EXPORTER_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"rpg-economy"`
}

// LoadTelemetry reads TelemetryConfig from the environment
func LoadTelemetry() (TelemetryConfig, error) {
	var cfg TelemetryConfig
	if err := env.Parse(&cfg); err != nil {
		return TelemetryConfig{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse telemetry config")
	}
	return cfg, nil
}
