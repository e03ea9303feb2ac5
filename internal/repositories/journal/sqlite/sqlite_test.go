package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/journaltest"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/sqlite"
)

type SQLiteJournalTestSuite struct {
	journaltest.RepositorySuite
	path string
	repo *sqlite.Repository
}

func (s *SQLiteJournalTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.path = filepath.Join(s.T().TempDir(), "journal.db")

	repo, err := sqlite.Open(s.path)
	s.Require().NoError(err)
	s.repo = repo
	s.Repo = repo
}

func (s *SQLiteJournalTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func (s *SQLiteJournalTestSuite) TestOpenRequiresPath() {
	_, err := sqlite.Open("  ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteJournalTestSuite) TestSurvivesReopen() {
	for i := uint64(1); i <= 2; i++ {
		_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: journaltest.NewEntry("e", i)})
		s.Require().NoError(err)
	}
	_, err := s.Repo.SaveSnapshot(s.Ctx, journal.SaveSnapshotInput{Seq: 1, Snapshot: journaltest.NewSnapshot()})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Close())

	reopened, err := sqlite.Open(s.path)
	s.Require().NoError(err)
	s.repo = reopened

	out, err := reopened.List(s.Ctx, journal.ListInput{AfterSeq: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal(uint64(2), out.Entries[0].Seq)

	next, err := reopened.Append(s.Ctx, journal.AppendInput{Entry: journaltest.NewEntry("e", 3)})
	s.Require().NoError(err)
	s.Equal(uint64(3), next.Seq)

	snap, err := reopened.LoadSnapshot(s.Ctx, journal.LoadSnapshotInput{})
	s.Require().NoError(err)
	s.Equal(uint64(1), snap.Seq)
	s.Equal(journaltest.NewSnapshot(), snap.Snapshot)
}

func TestSQLiteJournalTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteJournalTestSuite))
}
