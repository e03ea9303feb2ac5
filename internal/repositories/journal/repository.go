// Package journal stores the ordered log of accepted economy commands and
// periodic state snapshots. Replaying the log on top of the latest
// snapshot reproduces the economy state.
package journal

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=journalmock github.com/KirkDiggler/rpg-economy/internal/repositories/journal Repository

// Entry is one accepted command. Seq is assigned by the repository and
// starts at 1.
type Entry struct {
	Seq        uint64          `json:"seq"`
	ID         string          `json:"id"`
	RecordedAt time.Time       `json:"recorded_at"`
	Command    economy.Command `json:"command"`
}

// AppendInput contains the entry to append; its Seq is ignored
type AppendInput struct {
	Entry Entry
}

// AppendOutput reports the sequence number the entry was stored at
type AppendOutput struct {
	Seq uint64
}

// ListInput selects entries with Seq greater than AfterSeq
type ListInput struct {
	AfterSeq uint64
}

// ListOutput holds entries in ascending Seq order
type ListOutput struct {
	Entries []Entry
}

// SaveSnapshotInput stores the state as of Seq
type SaveSnapshotInput struct {
	Seq      uint64
	Snapshot *entities.Snapshot
}

// SaveSnapshotOutput is empty
type SaveSnapshotOutput struct{}

// LoadSnapshotInput is empty
type LoadSnapshotInput struct{}

// LoadSnapshotOutput holds the latest snapshot and the Seq it covers
type LoadSnapshotOutput struct {
	Seq      uint64
	Snapshot *entities.Snapshot
}

// Repository defines journal storage
type Repository interface {
	// Append stores an entry after all existing ones
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns entries after input.AfterSeq
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// SaveSnapshot replaces the stored snapshot
	SaveSnapshot(ctx context.Context, input SaveSnapshotInput) (*SaveSnapshotOutput, error)

	// LoadSnapshot returns NotFound when no snapshot has been saved
	LoadSnapshot(ctx context.Context, input LoadSnapshotInput) (*LoadSnapshotOutput, error)
}

// Record is the stored form of a snapshot
type Record struct {
	Seq      uint64             `json:"seq"`
	Snapshot *entities.Snapshot `json:"snapshot"`
}
