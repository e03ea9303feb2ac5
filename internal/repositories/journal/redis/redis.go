// Package redis stores the journal in a Redis list with the latest
// snapshot under a single key.
package redis

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-economy/internal/redis"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
)

const (
	defaultPrefix  = "economy"
	journalSuffix  = ":journal"
	snapshotSuffix = ":snapshot"
)

// Config holds the configuration for the Redis journal
type Config struct {
	Client redisclient.Client
	// Prefix namespaces the keys, defaults to "economy"
	Prefix string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type repository struct {
	client      redisclient.Client
	journalKey  string
	snapshotKey string
}

// NewRepository creates a Redis-backed journal
func NewRepository(cfg *Config) (journal.Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &repository{
		client:      cfg.Client,
		journalKey:  prefix + journalSuffix,
		snapshotKey: prefix + snapshotSuffix,
	}, nil
}

var _ journal.Repository = (*repository)(nil)

// Append pushes the entry; the list length after the push is its Seq
func (r *repository) Append(ctx context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
	entry := input.Entry
	entry.Seq = 0

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal journal entry")
	}

	length, err := r.client.RPush(ctx, r.journalKey, data).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to append journal entry")
	}

	seq := uint64(length)
	log.Debug().Uint64("seq", seq).Str("op", string(entry.Command.Op)).Msg("journal entry appended")
	return &journal.AppendOutput{Seq: seq}, nil
}

// List reads the list from index AfterSeq onward
func (r *repository) List(ctx context.Context, input journal.ListInput) (*journal.ListOutput, error) {
	raw, err := r.client.LRange(ctx, r.journalKey, int64(input.AfterSeq), -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read journal")
	}

	entries := make([]journal.Entry, 0, len(raw))
	for i, item := range raw {
		var entry journal.Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal journal entry %d", input.AfterSeq+uint64(i)+1)
		}
		entry.Seq = input.AfterSeq + uint64(i) + 1
		entries = append(entries, entry)
	}

	return &journal.ListOutput{Entries: entries}, nil
}

// SaveSnapshot overwrites the snapshot key
func (r *repository) SaveSnapshot(ctx context.Context, input journal.SaveSnapshotInput) (*journal.SaveSnapshotOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	data, err := json.Marshal(journal.Record{Seq: input.Seq, Snapshot: input.Snapshot})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, r.snapshotKey, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot")
	}
	return &journal.SaveSnapshotOutput{}, nil
}

// LoadSnapshot reads the snapshot key
func (r *repository) LoadSnapshot(ctx context.Context, _ journal.LoadSnapshotInput) (*journal.LoadSnapshotOutput, error) {
	data, err := r.client.Get(ctx, r.snapshotKey).Bytes()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFound("no snapshot saved")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load snapshot")
	}

	var rec journal.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	return &journal.LoadSnapshotOutput{Seq: rec.Seq, Snapshot: rec.Snapshot}, nil
}
