package redis_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-economy/internal/redis"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/journaltest"
	journalredis "github.com/KirkDiggler/rpg-economy/internal/repositories/journal/redis"
	"github.com/KirkDiggler/rpg-economy/internal/testutils"
)

type RedisJournalTestSuite struct {
	journaltest.RepositorySuite
	client redisclient.Client
	mr     *miniredis.Miniredis
}

func (s *RedisJournalTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())

	repo, err := journalredis.NewRepository(&journalredis.Config{Client: s.client})
	s.Require().NoError(err)
	s.Repo = repo
}

func (s *RedisJournalTestSuite) TestNewRepository() {
	testCases := []struct {
		name    string
		config  *journalredis.Config
		wantErr bool
	}{
		{name: "valid config", config: &journalredis.Config{Client: s.client}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "nil client", config: &journalredis.Config{}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := journalredis.NewRepository(tc.config)
			if tc.wantErr {
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisJournalTestSuite) TestKeysUsePrefix() {
	repo, err := journalredis.NewRepository(&journalredis.Config{Client: s.client, Prefix: "shard1"})
	s.Require().NoError(err)

	_, err = repo.Append(s.Ctx, journal.AppendInput{Entry: journaltest.NewEntry("a", 1)})
	s.Require().NoError(err)
	_, err = repo.SaveSnapshot(s.Ctx, journal.SaveSnapshotInput{Seq: 1, Snapshot: journaltest.NewSnapshot()})
	s.Require().NoError(err)

	s.True(s.mr.Exists("shard1:journal"))
	s.True(s.mr.Exists("shard1:snapshot"))
	s.False(s.mr.Exists("economy:journal"))
}

func (s *RedisJournalTestSuite) TestFailuresAreUnavailable() {
	s.mr.SetError("ERR injected failure")
	defer s.mr.SetError("")

	_, err := s.Repo.Append(s.Ctx, journal.AppendInput{Entry: journaltest.NewEntry("a", 1)})
	s.True(errors.IsUnavailable(err))

	_, err = s.Repo.List(s.Ctx, journal.ListInput{})
	s.True(errors.IsUnavailable(err))

	_, err = s.Repo.SaveSnapshot(s.Ctx, journal.SaveSnapshotInput{Seq: 1, Snapshot: journaltest.NewSnapshot()})
	s.True(errors.IsUnavailable(err))

	_, err = s.Repo.LoadSnapshot(s.Ctx, journal.LoadSnapshotInput{})
	s.True(errors.IsUnavailable(err))
}

func (s *RedisJournalTestSuite) TestCorruptEntry() {
	s.Require().NoError(s.client.RPush(s.Ctx, "economy:journal", "{not json").Err())

	_, err := s.Repo.List(s.Ctx, journal.ListInput{})
	s.Error(err)
}

func TestRedisJournalTestSuite(t *testing.T) {
	suite.Run(t, new(RedisJournalTestSuite))
}
