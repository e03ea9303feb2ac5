// Package journaltest holds the behaviour every journal backend must share
package journaltest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
)

// RepositorySuite runs the shared journal checks. Backends embed it and set
// Repo in their SetupTest.
type RepositorySuite struct {
	suite.Suite
	Repo journal.Repository
	Ctx  context.Context
}

// SetupTest defaults the context
func (s *RepositorySuite) SetupTest() {
	s.Ctx = context.Background()
}

// NewEntry builds an entry for a mint command
func NewEntry(id string, marker uint64) journal.Entry {
	return journal.Entry{
		ID:         id,
		RecordedAt: time.Unix(int64(marker), 0).UTC(),
		Command: economy.Command{
			Op:      economy.OpMintCharacter,
			Caller:  "alice",
			Marker:  marker,
			Name:    "Hero",
			DNAHash: strings.Repeat("c", 64),
		},
	}
}

// NewSnapshot builds a small populated snapshot
func NewSnapshot() *entities.Snapshot {
	return &entities.Snapshot{
		Owner:  "owner",
		NextID: 1,
		Params: entities.DefaultParams(),
		Characters: []entities.Character{{
			ID: 0, Owner: "alice", Level: 2, Strength: 15, Agility: 10, Intelligence: 10,
			EvolutionCount: 1, DungeonsCompleted: 1, CreatedAt: 3,
		}},
		Metadata:   []entities.Metadata{{ID: 0, Name: "Hero", DNAHash: strings.Repeat("c", 64)}},
		Rewards:    map[entities.Principal]uint64{"alice": 450},
		Governance: map[entities.Principal]uint64{"alice": 5},
		Stakes:     []entities.StakeRecord{{CharacterID: 0, Staker: "alice", Amount: 500, StartedAt: 9}},
	}
}

func (s *RepositorySuite) TestAppendAssignsSequence() {
	for i := uint64(1); i <= 3; i++ {
		out, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: NewEntry("e"+string(rune('0'+i)), i)})
		s.Require().NoError(err)
		s.Equal(i, out.Seq)
	}
}

func (s *RepositorySuite) TestListAfterSeq() {
	for i := uint64(1); i <= 4; i++ {
		_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: NewEntry("e"+string(rune('0'+i)), i*10)})
		s.Require().NoError(err)
	}

	all, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Entries, 4)
	for i, e := range all.Entries {
		s.Equal(uint64(i+1), e.Seq)
		s.Equal(uint64(i+1)*10, e.Command.Marker)
		s.Equal(economy.OpMintCharacter, e.Command.Op)
		s.Equal(entities.Principal("alice"), e.Command.Caller)
		s.True(e.RecordedAt.Equal(time.Unix(int64(e.Command.Marker), 0)))
	}

	tail, err := s.Repo.List(s.Ctx, journal.ListInput{AfterSeq: 2})
	s.Require().NoError(err)
	s.Require().Len(tail.Entries, 2)
	s.Equal(uint64(3), tail.Entries[0].Seq)
	s.Equal("e3", tail.Entries[0].ID)

	none, err := s.Repo.List(s.Ctx, journal.ListInput{AfterSeq: 4})
	s.Require().NoError(err)
	s.Empty(none.Entries)
}

func (s *RepositorySuite) TestListEmpty() {
	out, err := s.Repo.List(s.Ctx, journal.ListInput{AfterSeq: 0})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RepositorySuite) TestLoadSnapshotMissing() {
	_, err := s.Repo.LoadSnapshot(s.Ctx, journal.LoadSnapshotInput{})
	s.True(errors.IsNotFound(err))
}

func (s *RepositorySuite) TestSnapshotReplaced() {
	first := NewSnapshot()
	_, err := s.Repo.SaveSnapshot(s.Ctx, journal.SaveSnapshotInput{Seq: 3, Snapshot: first})
	s.Require().NoError(err)

	second := NewSnapshot()
	second.NextID = 2
	second.Params.DungeonReward = 70
	_, err = s.Repo.SaveSnapshot(s.Ctx, journal.SaveSnapshotInput{Seq: 8, Snapshot: second})
	s.Require().NoError(err)

	out, err := s.Repo.LoadSnapshot(s.Ctx, journal.LoadSnapshotInput{})
	s.Require().NoError(err)
	s.Equal(uint64(8), out.Seq)
	s.Equal(second, out.Snapshot)
}

func (s *RepositorySuite) TestSaveSnapshotRequiresSnapshot() {
	_, err := s.Repo.SaveSnapshot(s.Ctx, journal.SaveSnapshotInput{Seq: 1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositorySuite) TestGenesisKeepsOwnerAndParams() {
	params := entities.Params{EvolutionCost: 7, DungeonReward: 5000}
	_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: journal.Entry{
		ID:         "genesis",
		RecordedAt: time.Unix(1, 0).UTC(),
		Command:    economy.NewGenesis("owner", params),
	}})
	s.Require().NoError(err)

	out, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	got := out.Entries[0].Command
	s.Equal(economy.OpGenesis, got.Op)
	s.Equal(entities.Principal("owner"), got.Caller)
	s.Require().NotNil(got.Params)
	s.Equal(params, *got.Params)
}

func (s *RepositorySuite) TestCancelledAppendLeavesNoGap() {
	cancelled, cancel := context.WithCancel(s.Ctx)
	cancel()
	_, _ = s.Repo.Append(cancelled, journal.AppendInput{Entry: NewEntry("lost", 1)})

	_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: NewEntry("kept", 2)})
	s.Require().NoError(err)

	out, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Require().NoError(err)
	for i, e := range out.Entries {
		s.Equal(uint64(i+1), e.Seq)
	}
}

func (s *RepositorySuite) TestConcurrentAppendsAreContiguous() {
	const writers = 16

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: NewEntry(fmt.Sprintf("w%d", i), uint64(i+1))})
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	out, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, writers)
	for i, e := range out.Entries {
		s.Equal(uint64(i+1), e.Seq)
	}
}
