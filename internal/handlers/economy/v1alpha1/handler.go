// Package v1alpha1 serves economy.v1alpha1.EconomyService over gRPC
package v1alpha1

import (
	"context"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	EconomyService economy.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.EconomyService == nil {
		return errors.InvalidArgument("economy service is required")
	}
	return nil
}

// Handler implements the economy gRPC service
type Handler struct {
	economyv1alpha1.UnimplementedEconomyServiceServer
	economyService economy.Service
}

var _ economyv1alpha1.EconomyServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		economyService: cfg.EconomyService,
	}, nil
}

// caller reads the principal set by the platform
func caller(ctx context.Context) (entities.Principal, error) {
	p, ok := economyv1alpha1.PrincipalFromIncoming(ctx)
	if !ok {
		return "", errors.ToGRPCError(errors.Unauthenticated(economyv1alpha1.PrincipalHeader + " metadata is required"))
	}
	return entities.Principal(p), nil
}

// MintCharacter creates a character owned by the caller
func (h *Handler) MintCharacter(
	ctx context.Context,
	req *economyv1alpha1.MintCharacterRequest,
) (*economyv1alpha1.MintCharacterResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.MintCharacter(ctx, &economy.MintCharacterInput{
		Caller:  who,
		Name:    req.Name,
		DNAHash: req.DNAHash,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.MintCharacterResponse{
		CharacterID: output.CharacterID,
		Character:   toCharacter(output.Character),
	}, nil
}

// TransferCharacter gives a character to the recipient
func (h *Handler) TransferCharacter(
	ctx context.Context,
	req *economyv1alpha1.TransferCharacterRequest,
) (*economyv1alpha1.TransferCharacterResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.TransferCharacter(ctx, &economy.TransferCharacterInput{
		Caller:      who,
		CharacterID: req.CharacterID,
		Recipient:   entities.Principal(req.Recipient),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.TransferCharacterResponse{Character: toCharacter(output.Character)}, nil
}

// EvolveCharacter pays to raise a stat
func (h *Handler) EvolveCharacter(
	ctx context.Context,
	req *economyv1alpha1.EvolveCharacterRequest,
) (*economyv1alpha1.EvolveCharacterResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.EvolveCharacter(ctx, &economy.EvolveCharacterInput{
		Caller:      who,
		CharacterID: req.CharacterID,
		Stat:        req.Stat,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.EvolveCharacterResponse{
		Character:     toCharacter(output.Character),
		RewardBalance: output.RewardBalance,
	}, nil
}

// CompleteDungeon pays the dungeon reward
func (h *Handler) CompleteDungeon(
	ctx context.Context,
	req *economyv1alpha1.CompleteDungeonRequest,
) (*economyv1alpha1.CompleteDungeonResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.CompleteDungeon(ctx, &economy.CompleteDungeonInput{
		Caller:      who,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.CompleteDungeonResponse{
		Character:          toCharacter(output.Character),
		RewardCredited:     output.RewardCredited,
		GovernanceCredited: output.GovernanceCredited,
		RewardBalance:      output.RewardBalance,
	}, nil
}

// StakeCharacter escrows reward tokens against a character
func (h *Handler) StakeCharacter(
	ctx context.Context,
	req *economyv1alpha1.StakeCharacterRequest,
) (*economyv1alpha1.StakeCharacterResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.StakeCharacter(ctx, &economy.StakeCharacterInput{
		Caller:      who,
		CharacterID: req.CharacterID,
		Amount:      req.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.StakeCharacterResponse{
		Stake:         toStake(output.Stake),
		RewardBalance: output.RewardBalance,
	}, nil
}

// UnstakeCharacter closes a stake and pays out
func (h *Handler) UnstakeCharacter(
	ctx context.Context,
	req *economyv1alpha1.UnstakeCharacterRequest,
) (*economyv1alpha1.UnstakeCharacterResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.UnstakeCharacter(ctx, &economy.UnstakeCharacterInput{
		Caller:      who,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.UnstakeCharacterResponse{
		Returned:      output.Returned,
		Reward:        output.Reward,
		RewardBalance: output.RewardBalance,
	}, nil
}

// SetEvolutionCost is owner only
func (h *Handler) SetEvolutionCost(
	ctx context.Context,
	req *economyv1alpha1.SetEvolutionCostRequest,
) (*economyv1alpha1.SetEvolutionCostResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.SetEvolutionCost(ctx, &economy.SetEvolutionCostInput{Caller: who, Value: req.Value})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.SetEvolutionCostResponse{Params: toParams(output.Params)}, nil
}

// SetDungeonReward is owner only
func (h *Handler) SetDungeonReward(
	ctx context.Context,
	req *economyv1alpha1.SetDungeonRewardRequest,
) (*economyv1alpha1.SetDungeonRewardResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.SetDungeonReward(ctx, &economy.SetDungeonRewardInput{Caller: who, Value: req.Value})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.SetDungeonRewardResponse{Params: toParams(output.Params)}, nil
}

// GrantTokens is owner only
func (h *Handler) GrantTokens(
	ctx context.Context,
	req *economyv1alpha1.GrantTokensRequest,
) (*economyv1alpha1.GrantTokensResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	output, err := h.economyService.GrantTokens(ctx, &economy.GrantTokensInput{
		Caller:    who,
		Recipient: entities.Principal(req.Recipient),
		Amount:    req.Amount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &economyv1alpha1.GrantTokensResponse{Balance: output.Balance}, nil
}
