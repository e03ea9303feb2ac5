package main

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/rpg-economy/internal/config"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/logging"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-economy/internal/redis"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/inmemory"
	journalpostgres "github.com/KirkDiggler/rpg-economy/internal/repositories/journal/postgres"
	journalredis "github.com/KirkDiggler/rpg-economy/internal/repositories/journal/redis"
	journalsqlite "github.com/KirkDiggler/rpg-economy/internal/repositories/journal/sqlite"
	"github.com/KirkDiggler/rpg-economy/internal/telemetry"
)

// setupTracing is swapped out by tests
var setupTracing = telemetry.Setup

// runtime is everything both the server and the mcp command need
type runtime struct {
	server   config.ServerConfig
	store    config.StoreConfig
	service  economy.Service
	restored *economy.RestoreOutput
	closers  []func()
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// bootstrap loads config, initialises logging and tracing, opens the
// journal and rebuilds the economy from it. Tracing comes first so the
// restore is traced too.
func bootstrap(ctx context.Context, logOut io.Writer) (*runtime, error) {
	logCfg, err := config.LoadLog()
	if err != nil {
		return nil, err
	}
	logging.Init(logCfg, logOut)

	serverCfg, err := config.LoadServer()
	if err != nil {
		return nil, err
	}
	storeCfg, err := config.LoadStore()
	if err != nil {
		return nil, err
	}
	genesis, err := config.LoadGenesis(serverCfg.GenesisPath)
	if err != nil {
		return nil, err
	}

	telemetryCfg, err := config.LoadTelemetry()
	if err != nil {
		return nil, err
	}
	shutdownTracing, err := setupTracing(ctx, telemetryCfg)
	if err != nil {
		return nil, err
	}
	closeTracing := func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn().Err(err).Msg("flush traces")
		}
	}

	rt := &runtime{server: serverCfg, store: storeCfg, closers: []func(){closeTracing}}

	repo, closeRepo, err := openJournal(ctx, storeCfg)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.closers = append(rt.closers, closeRepo)

	svc, err := economy.NewOrchestrator(&economy.Config{
		Owner:         genesis.Principal(),
		Params:        genesis.Params(),
		Clock:         clock.New(),
		Journal:       repo,
		IDGenerator:   idgen.NewULID(),
		SnapshotEvery: serverCfg.SnapshotEvery,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.service = svc

	restored, err := svc.Restore(ctx, &economy.RestoreInput{})
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.restored = restored
	log.Info().
		Str("driver", storeCfg.Driver).
		Str("owner", genesis.Owner).
		Bool("from_snapshot", restored.FromSnapshot).
		Int("replayed", restored.Replayed).
		Uint64("seq", restored.Seq).
		Msg("economy restored")

	return rt, nil
}

func openJournal(ctx context.Context, cfg config.StoreConfig) (journal.Repository, func(), error) {
	switch cfg.Driver {
	case config.DriverRedis:
		client, err := redis.Connect(ctx, cfg.RedisAddrs, &redis.Options{UseTLS: cfg.RedisTLS})
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "connect to redis")
		}
		repo, err := journalredis.NewRepository(&journalredis.Config{Client: client, Prefix: cfg.RedisPrefix})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	case config.DriverSQLite:
		repo, err := journalsqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case config.DriverPostgres:
		repo, err := journalpostgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		log.Warn().Msg("using the in-memory journal; state is lost on exit")
		return inmemory.New(), func() {}, nil
	}
}
