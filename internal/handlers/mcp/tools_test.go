package mcp_test

import (
	"context"
	"strings"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/handlers/mcp"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-economy/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-economy/internal/repositories/journal/inmemory"
)

type ToolsTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Manual
	svc   economy.Service
}

func TestToolsTestSuite(t *testing.T) {
	suite.Run(t, new(ToolsTestSuite))
}

func (s *ToolsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(1000)
	svc, err := economy.NewOrchestrator(&economy.Config{
		Owner:       "owner",
		Params:      entities.DefaultParams(),
		Clock:       s.clock,
		Journal:     inmemory.New(),
		IDGenerator: idgen.NewSequential("entry_"),
	})
	s.Require().NoError(err)
	s.svc = svc

	_, err = svc.GrantTokens(s.ctx, &economy.GrantTokensInput{Caller: "owner", Recipient: "alice", Amount: 600})
	s.Require().NoError(err)
	_, err = svc.MintCharacter(s.ctx, &economy.MintCharacterInput{Caller: "alice", Name: "Scout", DNAHash: strings.Repeat("d", 64)})
	s.Require().NoError(err)
}

func (s *ToolsTestSuite) TestGetCharacter() {
	_, out, err := mcp.GetCharacterHandler(s.svc)(s.ctx, nil, mcp.CharacterInput{CharacterID: 0})
	s.Require().NoError(err)
	s.Equal(entities.Principal("alice"), out.Character.Owner)
	s.Equal("Scout", out.Metadata.Name)

	_, _, err = mcp.GetCharacterHandler(s.svc)(s.ctx, nil, mcp.CharacterInput{CharacterID: 5})
	s.True(errors.IsNotFound(err))
}

func (s *ToolsTestSuite) TestGetBalances() {
	_, err := s.svc.CompleteDungeon(s.ctx, &economy.CompleteDungeonInput{Caller: "alice", CharacterID: 0})
	s.Require().NoError(err)

	_, out, err := mcp.GetBalancesHandler(s.svc)(s.ctx, nil, mcp.BalancesInput{Account: "alice"})
	s.Require().NoError(err)
	s.Equal(uint64(650), out.Reward)
	s.Equal(uint64(5), out.Governance)

	_, _, err = mcp.GetBalancesHandler(s.svc)(s.ctx, nil, mcp.BalancesInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ToolsTestSuite) TestGetStake() {
	_, out, err := mcp.GetStakeHandler(s.svc)(s.ctx, nil, mcp.CharacterInput{CharacterID: 0})
	s.Require().NoError(err)
	s.False(out.Staked)
	s.Nil(out.Stake)

	_, err = s.svc.StakeCharacter(s.ctx, &economy.StakeCharacterInput{Caller: "alice", CharacterID: 0, Amount: 200})
	s.Require().NoError(err)

	_, out, err = mcp.GetStakeHandler(s.svc)(s.ctx, nil, mcp.CharacterInput{CharacterID: 0})
	s.Require().NoError(err)
	s.True(out.Staked)
	s.Equal(uint64(200), out.Stake.Amount)
	s.Equal(uint64(1000), out.Stake.StartedAt)
}

func (s *ToolsTestSuite) TestGetParams() {
	_, out, err := mcp.GetParamsHandler(s.svc)(s.ctx, nil, mcp.ParamsInput{})
	s.Require().NoError(err)
	s.Equal("owner", out.Owner)
	s.Equal(entities.DefaultEvolutionCost, out.EvolutionCost)
	s.Equal(entities.DefaultDungeonReward, out.DungeonReward)
	s.Equal(uint64(1), out.NextID)
}

func (s *ToolsTestSuite) TestServerListsTools() {
	server, err := mcp.NewServer(&mcp.Config{EconomyService: s.svc, Version: "test"})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	serverTransport, clientTransport := sdk.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	s.Require().NoError(err)
	defer serverSession.Close()

	client := sdk.NewClient(&sdk.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	s.Require().NoError(err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	s.Require().NoError(err)

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	s.ElementsMatch([]string{"get_character", "get_balances", "get_stake", "get_params"}, names)

	result, err := session.CallTool(ctx, &sdk.CallToolParams{
		Name:      "get_balances",
		Arguments: map[string]any{"account": "alice"},
	})
	s.Require().NoError(err)
	s.False(result.IsError)
}

func (s *ToolsTestSuite) TestNewServer_RequiresService() {
	_, err := mcp.NewServer(&mcp.Config{})
	s.Error(err)
}
