// Package postgres stores the journal in PostgreSQL through pgxpool
package postgres

import (
	"context"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
)

//go:embed schema.sql
var schema string

// Repository implements journal.Repository on PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

var _ journal.Repository = (*Repository)(nil)

// Open connects, pings and applies the schema
func Open(ctx context.Context, dsn string) (*Repository, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("postgres dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "creating postgres pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "pinging postgres")
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "applying postgres schema")
	}
	return &Repository{pool: pool}, nil
}

// Close releases the pool
func (r *Repository) Close() {
	if r != nil && r.pool != nil {
		r.pool.Close()
	}
}

// Append inserts the entry with the next seq. The seq is taken inside the
// inserting transaction under a table lock, so a failed insert leaves no gap.
func (r *Repository) Append(ctx context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
	cmd, err := json.Marshal(input.Entry.Command)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal command")
	}

	var seq int64
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE journal_entries IN EXCLUSIVE MODE`); err != nil {
			return err
		}
		return tx.QueryRow(ctx,
			`INSERT INTO journal_entries (seq, entry_id, recorded_at, command)
			 SELECT COALESCE(MAX(seq), 0) + 1, $1, $2, $3 FROM journal_entries
			 RETURNING seq`,
			input.Entry.ID, input.Entry.RecordedAt.UTC(), string(cmd)).Scan(&seq)
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to append journal entry")
	}
	return &journal.AppendOutput{Seq: uint64(seq)}, nil
}

// List returns entries after AfterSeq in order
func (r *Repository) List(ctx context.Context, input journal.ListInput) (*journal.ListOutput, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT seq, entry_id, recorded_at, command FROM journal_entries WHERE seq > $1 ORDER BY seq`,
		int64(input.AfterSeq))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read journal")
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		var (
			seq        int64
			id         string
			recordedAt time.Time
			raw        []byte
		)
		if err := rows.Scan(&seq, &id, &recordedAt, &raw); err != nil {
			return nil, errors.Wrap(err, "failed to scan journal entry")
		}

		var cmd economy.Command
		if err := json.Unmarshal(raw, &cmd); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal journal entry %d", seq)
		}
		entries = append(entries, journal.Entry{
			Seq:        uint64(seq),
			ID:         id,
			RecordedAt: recordedAt.UTC(),
			Command:    cmd,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to iterate journal")
	}

	return &journal.ListOutput{Entries: entries}, nil
}

// SaveSnapshot upserts the single snapshot row
func (r *Repository) SaveSnapshot(ctx context.Context, input journal.SaveSnapshotInput) (*journal.SaveSnapshotOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO journal_snapshot (id, seq, snapshot) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET seq = EXCLUDED.seq, snapshot = EXCLUDED.snapshot`,
		int64(input.Seq), string(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot")
	}
	return &journal.SaveSnapshotOutput{}, nil
}

// LoadSnapshot reads the snapshot row
func (r *Repository) LoadSnapshot(ctx context.Context, _ journal.LoadSnapshotInput) (*journal.LoadSnapshotOutput, error) {
	var (
		seq int64
		raw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT seq, snapshot FROM journal_snapshot WHERE id = 1`).Scan(&seq, &raw)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NotFound("no snapshot saved")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load snapshot")
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	return &journal.LoadSnapshotOutput{Seq: uint64(seq), Snapshot: &snap}, nil
}
