package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-economy/internal/config"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := config.LoadServer()
	require.NoError(t, err)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 100, cfg.SnapshotEvery)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerRejectsBadPort(t *testing.T) {
	t.Setenv("GRPC_PORT", "70000")

	_, err := config.LoadServer()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "GRPC_PORT")
}

func TestLoadStore(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg config.StoreConfig)
	}{
		{
			name: "defaults to memory",
			check: func(t *testing.T, cfg config.StoreConfig) {
				assert.Equal(t, config.DriverMemory, cfg.Driver)
			},
		},
		{
			name: "redis cluster addresses",
			env:  map[string]string{"STORE_DRIVER": "redis", "REDIS_ADDRS": "a:1,b:2"},
			check: func(t *testing.T, cfg config.StoreConfig) {
				assert.Equal(t, []string{"a:1", "b:2"}, cfg.RedisAddrs)
			},
		},
		{
			name:    "postgres needs a dsn",
			env:     map[string]string{"STORE_DRIVER": "postgres"},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORE_DRIVER": "etcd"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := config.LoadStore()
			if tc.wantErr {
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoadLog(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg, err := config.LoadLog()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.Pretty)
}

func TestLoadTelemetryDisabledByDefault(t *testing.T) {
	cfg, err := config.LoadTelemetry()
	require.NoError(t, err)
	assert.Empty(t, cfg.Endpoint)
	assert.Equal(t, "rpg-economy", cfg.ServiceName)
}

func writeGenesis(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadGenesisFromFile(t *testing.T) {
	path := writeGenesis(t, "owner: deployer\nevolution_cost: 250\n")

	g, err := config.LoadGenesis(path)
	require.NoError(t, err)
	assert.Equal(t, entities.Principal("deployer"), g.Principal())
	assert.Equal(t, entities.Params{EvolutionCost: 250, DungeonReward: 50}, g.Params())
}

func TestLoadGenesisEnvOverridesFile(t *testing.T) {
	path := writeGenesis(t, "owner: deployer\ndungeon_reward: 70\n")
	t.Setenv("ECONOMY_OWNER", "operator")
	t.Setenv("ECONOMY_DUNGEON_REWARD", "90")

	g, err := config.LoadGenesis(path)
	require.NoError(t, err)
	assert.Equal(t, "operator", g.Owner)
	assert.Equal(t, uint64(100), g.EvolutionCost)
	assert.Equal(t, uint64(90), g.DungeonReward)
}

func TestLoadGenesisRequiresOwner(t *testing.T) {
	_, err := config.LoadGenesis("")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadGenesisBadFile(t *testing.T) {
	_, err := config.LoadGenesis(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.LoadGenesis(writeGenesis(t, "owner: [unterminated\n"))
	assert.True(t, errors.IsInvalidArgument(err))
}
