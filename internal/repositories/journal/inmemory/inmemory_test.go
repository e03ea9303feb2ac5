package inmemory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/inmemory"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/journaltest"
)

type InMemoryTestSuite struct {
	journaltest.RepositorySuite
}

func (s *InMemoryTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.Repo = inmemory.New()
}

func (s *InMemoryTestSuite) TestListReturnsCopy() {
	_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: journaltest.NewEntry("a", 1)})
	s.Require().NoError(err)

	out, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Require().NoError(err)
	out.Entries[0].ID = "changed"

	again, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Require().NoError(err)
	s.Equal("a", again.Entries[0].ID)
}

func TestInMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}
