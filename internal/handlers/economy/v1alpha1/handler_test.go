package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/handlers/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
	economymock "github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockEconomy *economymock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEconomy = economymock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EconomyService: s.mockEconomy,
	})
	s.Require().NoError(err)
	s.handler = handler
	s.ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(economyv1alpha1.PrincipalHeader, "alice"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)

	_, err = v1alpha1.NewHandler(nil)
	s.Error(err)
}

func (s *HandlerTestSuite) TestMintCharacter_Success() {
	s.mockEconomy.EXPECT().
		MintCharacter(s.ctx, &economy.MintCharacterInput{
			Caller:  "alice",
			Name:    "DragonSlayer",
			DNAHash: "abc",
		}).
		Return(&economy.MintCharacterOutput{
			CharacterID: 0,
			Character: &entities.Character{
				ID:           0,
				Owner:        "alice",
				Level:        1,
				Strength:     10,
				Agility:      10,
				Intelligence: 10,
				CreatedAt:    1000,
			},
		}, nil)

	resp, err := s.handler.MintCharacter(s.ctx, &economyv1alpha1.MintCharacterRequest{
		Name:    "DragonSlayer",
		DNAHash: "abc",
	})
	s.Require().NoError(err)
	s.Equal(uint64(0), resp.CharacterID)
	s.Require().NotNil(resp.Character)
	s.Equal("alice", resp.Character.Owner)
	s.Equal(uint64(10), resp.Character.Strength)
	s.Equal(uint64(1000), resp.Character.CreatedAt)
}

func (s *HandlerTestSuite) TestMintCharacter_MissingPrincipal() {
	resp, err := s.handler.MintCharacter(context.Background(), &economyv1alpha1.MintCharacterRequest{Name: "x"})
	s.Nil(resp)
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *HandlerTestSuite) TestTransferCharacter_NotOwner() {
	s.mockEconomy.EXPECT().
		TransferCharacter(s.ctx, &economy.TransferCharacterInput{
			Caller:      "alice",
			CharacterID: 3,
			Recipient:   "bob",
		}).
		Return(nil, errors.NotOwnerf("caller alice does not own character 3"))

	resp, err := s.handler.TransferCharacter(s.ctx, &economyv1alpha1.TransferCharacterRequest{
		CharacterID: 3,
		Recipient:   "bob",
	})
	s.Nil(resp)
	s.Equal(codes.PermissionDenied, status.Code(err))
	s.Equal(errors.CodeNotOwner, errors.GetCode(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestEvolveCharacter_Success() {
	s.mockEconomy.EXPECT().
		EvolveCharacter(s.ctx, &economy.EvolveCharacterInput{
			Caller:      "alice",
			CharacterID: 0,
			Stat:        "strength",
		}).
		Return(&economy.EvolveCharacterOutput{
			Character:     &entities.Character{Owner: "alice", Level: 2, Strength: 15, Agility: 10, Intelligence: 10, EvolutionCount: 1},
			RewardBalance: 900,
		}, nil)

	resp, err := s.handler.EvolveCharacter(s.ctx, &economyv1alpha1.EvolveCharacterRequest{Stat: "strength"})
	s.Require().NoError(err)
	s.Equal(uint64(2), resp.Character.Level)
	s.Equal(uint64(15), resp.Character.Strength)
	s.Equal(uint64(900), resp.RewardBalance)
}

func (s *HandlerTestSuite) TestEvolveCharacter_InsufficientBalance() {
	s.mockEconomy.EXPECT().
		EvolveCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.InsufficientBalancef("reward balance 0 is below 100"))

	_, err := s.handler.EvolveCharacter(s.ctx, &economyv1alpha1.EvolveCharacterRequest{Stat: "agility"})
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.Equal(errors.CodeInsufficientBalance, errors.GetCode(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestCompleteDungeon_Success() {
	s.mockEconomy.EXPECT().
		CompleteDungeon(s.ctx, &economy.CompleteDungeonInput{Caller: "alice", CharacterID: 1}).
		Return(&economy.CompleteDungeonOutput{
			Character:          &entities.Character{ID: 1, DungeonsCompleted: 1},
			RewardCredited:     50,
			GovernanceCredited: 5,
			RewardBalance:      1050,
		}, nil)

	resp, err := s.handler.CompleteDungeon(s.ctx, &economyv1alpha1.CompleteDungeonRequest{CharacterID: 1})
	s.Require().NoError(err)
	s.Equal(uint64(50), resp.RewardCredited)
	s.Equal(uint64(5), resp.GovernanceCredited)
	s.Equal(uint64(1050), resp.RewardBalance)
	s.Equal(uint64(1), resp.Character.DungeonsCompleted)
}

func (s *HandlerTestSuite) TestStakeAndUnstake() {
	s.mockEconomy.EXPECT().
		StakeCharacter(s.ctx, &economy.StakeCharacterInput{Caller: "alice", CharacterID: 0, Amount: 500}).
		Return(&economy.StakeCharacterOutput{
			Stake:         &entities.StakeRecord{CharacterID: 0, Staker: "alice", Amount: 500, StartedAt: 1000},
			RewardBalance: 450,
		}, nil)
	s.mockEconomy.EXPECT().
		UnstakeCharacter(s.ctx, &economy.UnstakeCharacterInput{Caller: "alice", CharacterID: 0}).
		Return(&economy.UnstakeCharacterOutput{Returned: 1500, Reward: 1000, RewardBalance: 1950}, nil)

	staked, err := s.handler.StakeCharacter(s.ctx, &economyv1alpha1.StakeCharacterRequest{Amount: 500})
	s.Require().NoError(err)
	s.Equal("alice", staked.Stake.Staker)
	s.Equal(uint64(1000), staked.Stake.StartedAt)
	s.Equal(uint64(450), staked.RewardBalance)

	unstaked, err := s.handler.UnstakeCharacter(s.ctx, &economyv1alpha1.UnstakeCharacterRequest{})
	s.Require().NoError(err)
	s.Equal(uint64(1500), unstaked.Returned)
	s.Equal(uint64(1000), unstaked.Reward)
	s.Equal(uint64(1950), unstaked.RewardBalance)
}

func (s *HandlerTestSuite) TestAdminOperations() {
	s.mockEconomy.EXPECT().
		SetEvolutionCost(s.ctx, &economy.SetEvolutionCostInput{Caller: "alice", Value: 250}).
		Return(nil, errors.OwnerOnly("only the contract owner may set the evolution cost"))
	s.mockEconomy.EXPECT().
		SetDungeonReward(s.ctx, &economy.SetDungeonRewardInput{Caller: "alice", Value: 70}).
		Return(&economy.SetDungeonRewardOutput{Params: entities.Params{EvolutionCost: 100, DungeonReward: 70}}, nil)
	s.mockEconomy.EXPECT().
		GrantTokens(s.ctx, &economy.GrantTokensInput{Caller: "alice", Recipient: "bob", Amount: 10}).
		Return(&economy.GrantTokensOutput{Balance: 10}, nil)

	_, err := s.handler.SetEvolutionCost(s.ctx, &economyv1alpha1.SetEvolutionCostRequest{Value: 250})
	s.Equal(codes.PermissionDenied, status.Code(err))
	s.Equal(errors.CodeOwnerOnly, errors.GetCode(errors.FromGRPCError(err)))

	params, err := s.handler.SetDungeonReward(s.ctx, &economyv1alpha1.SetDungeonRewardRequest{Value: 70})
	s.Require().NoError(err)
	s.Equal(&economyv1alpha1.Params{EvolutionCost: 100, DungeonReward: 70}, params.Params)

	granted, err := s.handler.GrantTokens(s.ctx, &economyv1alpha1.GrantTokensRequest{Recipient: "bob", Amount: 10})
	s.Require().NoError(err)
	s.Equal(uint64(10), granted.Balance)
}

func (s *HandlerTestSuite) TestReads_NeedNoPrincipal() {
	ctx := context.Background()
	s.mockEconomy.EXPECT().
		GetCharacterOwner(ctx, &economy.GetCharacterOwnerInput{CharacterID: 9}).
		Return(nil, errors.NotFoundf("character 9 not found"))
	s.mockEconomy.EXPECT().
		GetGovernanceBalance(ctx, &economy.GetBalanceInput{Account: "alice"}).
		Return(&economy.GetBalanceOutput{Balance: 5}, nil)
	s.mockEconomy.EXPECT().
		GetStakedInfo(ctx, &economy.GetStakedInfoInput{CharacterID: 0}).
		Return(&economy.GetStakedInfoOutput{}, nil)
	s.mockEconomy.EXPECT().
		GetLastTokenID(ctx, &economy.GetLastTokenIDInput{}).
		Return(&economy.GetLastTokenIDOutput{NextID: 4}, nil)
	s.mockEconomy.EXPECT().
		GetParams(ctx, &economy.GetParamsInput{}).
		Return(&economy.GetParamsOutput{Params: entities.DefaultParams(), Owner: "owner"}, nil)

	_, err := s.handler.GetCharacterOwner(ctx, &economyv1alpha1.GetCharacterOwnerRequest{CharacterID: 9})
	s.Equal(codes.NotFound, status.Code(err))

	gov, err := s.handler.GetGovernanceBalance(ctx, &economyv1alpha1.GetBalanceRequest{Account: "alice"})
	s.Require().NoError(err)
	s.Equal(uint64(5), gov.Balance)

	stake, err := s.handler.GetStakedInfo(ctx, &economyv1alpha1.GetStakedInfoRequest{})
	s.Require().NoError(err)
	s.Nil(stake.Stake)

	last, err := s.handler.GetLastTokenID(ctx, &economyv1alpha1.GetLastTokenIDRequest{})
	s.Require().NoError(err)
	s.Equal(uint64(4), last.NextID)

	params, err := s.handler.GetParams(ctx, &economyv1alpha1.GetParamsRequest{})
	s.Require().NoError(err)
	s.Equal("owner", params.Owner)
	s.Equal(entities.DefaultEvolutionCost, params.Params.EvolutionCost)
}

func (s *HandlerTestSuite) TestGetBalances_OneServiceRead() {
	ctx := context.Background()
	s.mockEconomy.EXPECT().
		GetBalances(ctx, &economy.GetBalanceInput{Account: "alice"}).
		Return(&economy.GetBalancesOutput{Reward: 1050, Governance: 5}, nil)

	resp, err := s.handler.GetBalances(ctx, &economyv1alpha1.GetBalanceRequest{Account: "alice"})
	s.Require().NoError(err)
	s.Equal(uint64(1050), resp.Reward)
	s.Equal(uint64(5), resp.Governance)

	_, err = s.handler.GetBalances(ctx, &economyv1alpha1.GetBalanceRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetUserBalance_RequiresAccount() {
	_, err := s.handler.GetUserBalance(context.Background(), &economyv1alpha1.GetBalanceRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
