package postgres_test

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/config"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/journaltest"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/postgres"
)

type PostgresJournalTestSuite struct {
	journaltest.RepositorySuite
	dsn    string
	schema string
	repo   *postgres.Repository
}

func (s *PostgresJournalTestSuite) SetupSuite() {
	cfg, err := config.LoadTest()
	if err != nil {
		s.T().Skipf("skip postgres journal: %v", err)
	}
	s.dsn = cfg.PostgresDSN
}

func (s *PostgresJournalTestSuite) SetupTest() {
	s.RepositorySuite.SetupTest()
	s.schema = fmt.Sprintf("journal_test_%d", time.Now().UnixNano())
	s.exec("CREATE SCHEMA " + pgx.Identifier{s.schema}.Sanitize())

	sep := "?"
	if strings.Contains(s.dsn, "?") {
		sep = "&"
	}
	repo, err := postgres.Open(s.Ctx, s.dsn+sep+"search_path="+url.QueryEscape(s.schema))
	s.Require().NoError(err)
	s.repo = repo
	s.Repo = repo
}

func (s *PostgresJournalTestSuite) TearDownTest() {
	s.repo.Close()
	s.exec("DROP SCHEMA " + pgx.Identifier{s.schema}.Sanitize() + " CASCADE")
}

func (s *PostgresJournalTestSuite) exec(sql string) {
	pool, err := pgxpool.New(context.Background(), s.dsn)
	s.Require().NoError(err)
	defer pool.Close()
	_, err = pool.Exec(context.Background(), sql)
	s.Require().NoError(err)
}

func TestPostgresJournalTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresJournalTestSuite))
}
