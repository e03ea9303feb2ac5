// Package economy hosts the deterministic economy engine behind a
// context-aware service: one lock per call, a host clock for time
// markers, a durable journal and tracing.
package economy

//go:generate mockgen -destination=mock/mock_service.go -package=economymock github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy Service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	engine "github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
)

const tracerName = "github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"

// Service defines the economy operations
type Service interface {
	MintCharacter(ctx context.Context, input *MintCharacterInput) (*MintCharacterOutput, error)
	TransferCharacter(ctx context.Context, input *TransferCharacterInput) (*TransferCharacterOutput, error)
	EvolveCharacter(ctx context.Context, input *EvolveCharacterInput) (*EvolveCharacterOutput, error)
	CompleteDungeon(ctx context.Context, input *CompleteDungeonInput) (*CompleteDungeonOutput, error)
	StakeCharacter(ctx context.Context, input *StakeCharacterInput) (*StakeCharacterOutput, error)
	UnstakeCharacter(ctx context.Context, input *UnstakeCharacterInput) (*UnstakeCharacterOutput, error)

	// Admin operations, restricted to the contract owner
	SetEvolutionCost(ctx context.Context, input *SetEvolutionCostInput) (*SetEvolutionCostOutput, error)
	SetDungeonReward(ctx context.Context, input *SetDungeonRewardInput) (*SetDungeonRewardOutput, error)
	GrantTokens(ctx context.Context, input *GrantTokensInput) (*GrantTokensOutput, error)

	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	GetCharacterMetadata(ctx context.Context, input *GetCharacterMetadataInput) (*GetCharacterMetadataOutput, error)
	GetCharacterOwner(ctx context.Context, input *GetCharacterOwnerInput) (*GetCharacterOwnerOutput, error)
	GetUserBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)
	GetGovernanceBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)
	// GetBalances reads both ledgers under one lock
	GetBalances(ctx context.Context, input *GetBalanceInput) (*GetBalancesOutput, error)
	GetStakedInfo(ctx context.Context, input *GetStakedInfoInput) (*GetStakedInfoOutput, error)
	GetLastTokenID(ctx context.Context, input *GetLastTokenIDInput) (*GetLastTokenIDOutput, error)
	GetParams(ctx context.Context, input *GetParamsInput) (*GetParamsOutput, error)

	// Restore rebuilds state from the journal. Call it once before serving.
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)
}

// Config holds the dependencies for the economy orchestrator
type Config struct {
	Owner       entities.Principal
	Params      entities.Params
	Clock       clock.Clock
	Journal     journal.Repository
	IDGenerator idgen.Generator
	// SnapshotEvery writes a snapshot after that many accepted commands;
	// zero disables snapshots
	SnapshotEvery int
	// Tracer defaults to the global provider
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Owner", c.Owner.String(), vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SnapshotEvery < 0 {
		vb.Field("SnapshotEvery", "must not be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	owner         entities.Principal
	params        entities.Params
	clock         clock.Clock
	journal       journal.Repository
	idGen         idgen.Generator
	snapshotEvery int
	tracer        trace.Tracer

	// mu spans validate, write and journal for every call
	mu            sync.Mutex
	engine        *engine.Engine
	seq           uint64
	sinceSnapshot int
	// stale is set until the first successful rebuild and whenever
	// memory may hold a command the journal lacks
	stale bool
}

// NewOrchestrator creates an orchestrator that loads the journal on first use
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	eng, err := engine.NewEngine(cfg.Owner, cfg.Params)
	if err != nil {
		return nil, errors.Wrap(err, "create engine")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &orchestrator{
		owner:         cfg.Owner,
		params:        cfg.Params,
		clock:         cfg.Clock,
		journal:       cfg.Journal,
		idGen:         cfg.IDGenerator,
		snapshotEvery: cfg.SnapshotEvery,
		tracer:        tracer,
		engine:        eng,
		stale:         true,
	}, nil
}

// execute applies cmd under the lock and journals it
func (o *orchestrator) execute(ctx context.Context, cmd engine.Command) (*engine.Result, error) {
	ctx, span := o.tracer.Start(ctx, "economy."+spanName(cmd.Op), trace.WithAttributes(
		attribute.String("economy.op", string(cmd.Op)),
		attribute.String("economy.caller", cmd.Caller.String()),
	))
	defer span.End()

	if cmd.Caller == "" {
		err := errors.InvalidArgument("caller is required")
		recordError(span, err)
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.ensureFresh(ctx); err != nil {
		recordError(span, err)
		return nil, err
	}

	cmd.Marker = o.clock.Now()
	span.SetAttributes(attribute.Int64("economy.marker", int64(cmd.Marker)))

	res, err := o.engine.Execute(cmd)
	if err != nil {
		log.Debug().
			Str("op", string(cmd.Op)).
			Str("caller", cmd.Caller.String()).
			Uint64("character_id", cmd.CharacterID).
			Str("code", string(errors.GetCode(err))).
			Msg("command rejected")
		recordError(span, err)
		return nil, err
	}

	// the command already ran in memory; a caller hang-up must not
	// abort its append
	detached := context.WithoutCancel(ctx)
	seq, err := o.record(detached, cmd)
	if err != nil {
		log.Error().Err(err).
			Str("op", string(cmd.Op)).
			Str("caller", cmd.Caller.String()).
			Msg("journal append failed, rebuilding state")

		o.stale = true
		if _, rerr := o.rebuild(detached); rerr != nil {
			log.Error().Err(rerr).Msg("rebuild after failed append failed")
		}
		err = errors.WrapWithCode(err, errors.CodeUnavailable, "command could not be recorded")
		recordError(span, err)
		return nil, err
	}

	o.seq = seq
	span.SetAttributes(attribute.Int64("economy.seq", int64(seq)))
	log.Info().
		Str("op", string(cmd.Op)).
		Str("caller", cmd.Caller.String()).
		Uint64("character_id", res.CharacterID).
		Uint64("seq", seq).
		Msg("command accepted")

	o.maybeSnapshot(ctx)
	return res, nil
}

// record appends cmd, opening an empty journal with a genesis entry first
func (o *orchestrator) record(ctx context.Context, cmd engine.Command) (uint64, error) {
	if o.seq == 0 {
		out, err := o.append(ctx, engine.NewGenesis(o.owner, o.params))
		if err != nil {
			return 0, errors.Wrap(err, "write genesis")
		}
		o.seq = out.Seq
	}

	out, err := o.append(ctx, cmd)
	if err != nil {
		return 0, err
	}
	return out.Seq, nil
}

func (o *orchestrator) append(ctx context.Context, cmd engine.Command) (*journal.AppendOutput, error) {
	return o.journal.Append(ctx, journal.AppendInput{Entry: journal.Entry{
		ID:         o.idGen.Generate(),
		RecordedAt: time.Now().UTC(),
		Command:    cmd,
	}})
}

func (o *orchestrator) maybeSnapshot(ctx context.Context) {
	if o.snapshotEvery == 0 {
		return
	}
	o.sinceSnapshot++
	if o.sinceSnapshot < o.snapshotEvery {
		return
	}

	_, err := o.journal.SaveSnapshot(context.WithoutCancel(ctx), journal.SaveSnapshotInput{Seq: o.seq, Snapshot: o.engine.Snapshot()})
	if err != nil {
		log.Warn().Err(err).Uint64("seq", o.seq).Msg("snapshot failed")
		return
	}
	o.sinceSnapshot = 0
	log.Debug().Uint64("seq", o.seq).Msg("snapshot saved")
}

// ensureFresh retries a rebuild left pending by a failed append
func (o *orchestrator) ensureFresh(ctx context.Context) error {
	if !o.stale {
		return nil
	}
	if _, err := o.rebuild(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "state is being recovered")
	}
	return nil
}

// rebuild replaces the engine with snapshot plus journal replay. Owner
// and tunables come from the journal, never from config, once it has
// any entries. The current engine is kept if anything fails.
func (o *orchestrator) rebuild(ctx context.Context) (*RestoreOutput, error) {
	result := &RestoreOutput{}
	var eng *engine.Engine

	snap, err := o.journal.LoadSnapshot(ctx, journal.LoadSnapshotInput{})
	switch {
	case err == nil:
		if snap.Snapshot.Owner != o.owner {
			return nil, errors.FailedPreconditionf("stored owner %s does not match configured owner %s",
				snap.Snapshot.Owner, o.owner)
		}
		eng, err = engine.NewEngine(snap.Snapshot.Owner, snap.Snapshot.Params)
		if err != nil {
			return nil, err
		}
		if err := eng.Restore(snap.Snapshot); err != nil {
			return nil, err
		}
		result.FromSnapshot = true
		result.SnapshotSeq = snap.Seq
	case errors.IsNotFound(err):
	default:
		return nil, errors.Wrap(err, "load snapshot")
	}

	list, err := o.journal.List(ctx, journal.ListInput{AfterSeq: result.SnapshotSeq})
	if err != nil {
		return nil, errors.Wrap(err, "list journal")
	}

	entries := list.Entries
	seq := result.SnapshotSeq
	if eng == nil {
		eng, err = o.genesisEngine(entries)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			seq = entries[0].Seq
			entries = entries[1:]
		}
	}

	for _, entry := range entries {
		if entry.Seq != seq+1 {
			return nil, errors.Internalf("journal gap: expected seq %d, found %d", seq+1, entry.Seq)
		}
		if _, err := eng.Execute(entry.Command); err != nil {
			return nil, errors.Wrapf(err, "replay journal entry %d", entry.Seq)
		}
		seq = entry.Seq
	}

	result.Replayed = len(entries)
	result.Seq = seq

	o.engine = eng
	o.seq = seq
	o.sinceSnapshot = result.Replayed
	o.stale = false
	return result, nil
}

// genesisEngine builds the starting engine for a journal without a
// snapshot. An empty journal starts from config.
func (o *orchestrator) genesisEngine(entries []journal.Entry) (*engine.Engine, error) {
	if len(entries) == 0 {
		return engine.NewEngine(o.owner, o.params)
	}

	first := entries[0]
	if first.Seq != 1 {
		return nil, errors.Internalf("journal gap: expected seq 1, found %d", first.Seq)
	}
	eng, err := engine.NewEngineFromGenesis(first.Command)
	if err != nil {
		return nil, err
	}
	if eng.GetContractOwner() != o.owner {
		return nil, errors.FailedPreconditionf("journal owner %s does not match configured owner %s",
			eng.GetContractOwner(), o.owner)
	}
	if eng.GetParams() != o.params {
		log.Warn().
			Uint64("evolution_cost", eng.GetParams().EvolutionCost).
			Uint64("dungeon_reward", eng.GetParams().DungeonReward).
			Msg("configured tunables differ from journal genesis, using the journal")
	}
	return eng, nil
}

// Restore rebuilds state from the journal
func (o *orchestrator) Restore(ctx context.Context, _ *RestoreInput) (*RestoreOutput, error) {
	ctx, span := o.tracer.Start(ctx, "economy.Restore")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.rebuild(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("economy.seq", int64(out.Seq)),
		attribute.Int("economy.replayed", out.Replayed),
	)
	log.Info().
		Bool("from_snapshot", out.FromSnapshot).
		Uint64("snapshot_seq", out.SnapshotSeq).
		Int("replayed", out.Replayed).
		Uint64("seq", out.Seq).
		Msg("economy state restored")
	return out, nil
}

// read runs fn under the lock inside a span
func (o *orchestrator) read(ctx context.Context, name string, fn func(*engine.Engine) error) error {
	ctx, span := o.tracer.Start(ctx, "economy."+name)
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.ensureFresh(ctx); err != nil {
		recordError(span, err)
		return err
	}
	if err := fn(o.engine); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, string(errors.GetCode(err)))
}

var spanNames = map[engine.Op]string{
	engine.OpMintCharacter:     "MintCharacter",
	engine.OpTransferCharacter: "TransferCharacter",
	engine.OpEvolveCharacter:   "EvolveCharacter",
	engine.OpCompleteDungeon:   "CompleteDungeon",
	engine.OpStakeCharacter:    "StakeCharacter",
	engine.OpUnstakeCharacter:  "UnstakeCharacter",
	engine.OpSetEvolutionCost:  "SetEvolutionCost",
	engine.OpSetDungeonReward:  "SetDungeonReward",
	engine.OpGrantTokens:       "GrantTokens",
}

func spanName(op engine.Op) string {
	if name, ok := spanNames[op]; ok {
		return name
	}
	return string(op)
}
