// Package sqlite stores the journal in a local SQLite file
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
)

//go:embed schema.sql
var schema string

// Repository implements journal.Repository on SQLite
type Repository struct {
	db *sql.DB
}

var _ journal.Repository = (*Repository)(nil)

// Open opens or creates the database at path and applies the schema
func Open(path string) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// a single connection keeps AUTOINCREMENT ordering and WAL writes serialised
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "apply sqlite schema")
	}
	return &Repository{db: db}, nil
}

// Close closes the database handle
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Append inserts the entry; SQLite assigns the sequence
func (r *Repository) Append(ctx context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
	cmd, err := json.Marshal(input.Entry.Command)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal command")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO journal_entries (entry_id, recorded_at, command) VALUES (?, ?, ?)`,
		input.Entry.ID, input.Entry.RecordedAt.UTC().UnixNano(), string(cmd))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to append journal entry")
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read journal sequence")
	}

	return &journal.AppendOutput{Seq: uint64(seq)}, nil
}

// List returns entries after AfterSeq in order
func (r *Repository) List(ctx context.Context, input journal.ListInput) (*journal.ListOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, entry_id, recorded_at, command FROM journal_entries WHERE seq > ? ORDER BY seq`,
		int64(input.AfterSeq))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read journal")
	}
	defer func() { _ = rows.Close() }()

	var entries []journal.Entry
	for rows.Next() {
		var (
			seq        int64
			id         string
			recordedAt int64
			raw        string
		)
		if err := rows.Scan(&seq, &id, &recordedAt, &raw); err != nil {
			return nil, errors.Wrap(err, "failed to scan journal entry")
		}

		var cmd economy.Command
		if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal journal entry %d", seq)
		}
		entries = append(entries, journal.Entry{
			Seq:        uint64(seq),
			ID:         id,
			RecordedAt: time.Unix(0, recordedAt).UTC(),
			Command:    cmd,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate journal")
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

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO journal_snapshot (id, seq, snapshot) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET seq = excluded.seq, snapshot = excluded.snapshot`,
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
		raw string
	)
	err := r.db.QueryRowContext(ctx, `SELECT seq, snapshot FROM journal_snapshot WHERE id = 1`).Scan(&seq, &raw)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("no snapshot saved")
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load snapshot")
	}

	var snap entities.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	return &journal.LoadSnapshotOutput{Seq: uint64(seq), Snapshot: &snap}, nil
}
