package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Journal drivers
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StoreConfig selects and configures the journal backend
type StoreConfig struct {
	Driver      string   `env:"STORE_DRIVER" envDefault:"memory"`
	RedisAddrs  []string `env:"REDIS_ADDRS" envSeparator:"," envDefault:"localhost:6379"`
	RedisPrefix string   `env:"REDIS_PREFIX" envDefault:"economy"`
	RedisTLS    bool     `env:"REDIS_TLS" envDefault:"false"`
	SQLitePath  string   `env:"SQLITE_PATH" envDefault:"economy.db"`
	PostgresDSN string   `env:"POSTGRES_DSN"`
}

// LoadStore reads StoreConfig from the environment
func LoadStore() (StoreConfig, error) {
	var cfg StoreConfig
	if err := env.Parse(&cfg); err != nil {
		return StoreConfig{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse store config")
	}
	return cfg, cfg.Validate()
}

// Validate checks the driver has what it needs
func (c StoreConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	switch c.Driver {
	case DriverMemory:
	case DriverRedis:
		if len(c.RedisAddrs) == 0 {
			vb.RequiredField("REDIS_ADDRS")
		}
	case DriverSQLite:
		errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	case DriverPostgres:
		errors.ValidateRequired("POSTGRES_DSN", c.PostgresDSN, vb)
	default:
		vb.Fieldf("STORE_DRIVER", "unknown driver %q", c.Driver)
	}
	return vb.Build()
}
