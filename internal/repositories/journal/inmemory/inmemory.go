// Package inmemory is a process-local journal used by tests and by servers
// started without a durable store.
package inmemory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
)

// Repository implements journal.Repository in memory
type Repository struct {
	mu       sync.RWMutex
	entries  []journal.Entry
	snapshot *journal.Record
}

// New creates an empty in-memory journal
func New() *Repository {
	return &Repository{}
}

var _ journal.Repository = (*Repository)(nil)

// Append stores an entry at the next sequence number
func (r *Repository) Append(ctx context.Context, input journal.AppendInput) (*journal.AppendOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "append canceled")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := input.Entry
	entry.Seq = uint64(len(r.entries)) + 1
	r.entries = append(r.entries, entry)

	return &journal.AppendOutput{Seq: entry.Seq}, nil
}

// List returns a copy of entries after AfterSeq
func (r *Repository) List(ctx context.Context, input journal.ListInput) (*journal.ListOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "list canceled")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if input.AfterSeq >= uint64(len(r.entries)) {
		return &journal.ListOutput{}, nil
	}
	out := make([]journal.Entry, len(r.entries)-int(input.AfterSeq))
	copy(out, r.entries[input.AfterSeq:])

	return &journal.ListOutput{Entries: out}, nil
}

// SaveSnapshot replaces the held snapshot
func (r *Repository) SaveSnapshot(ctx context.Context, input journal.SaveSnapshotInput) (*journal.SaveSnapshotOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = &journal.Record{Seq: input.Seq, Snapshot: input.Snapshot}
	return &journal.SaveSnapshotOutput{}, nil
}

// LoadSnapshot returns the held snapshot
func (r *Repository) LoadSnapshot(ctx context.Context, _ journal.LoadSnapshotInput) (*journal.LoadSnapshotOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, errors.NotFound("no snapshot saved")
	}
	return &journal.LoadSnapshotOutput{Seq: r.snapshot.Seq, Snapshot: r.snapshot.Snapshot}, nil
}
