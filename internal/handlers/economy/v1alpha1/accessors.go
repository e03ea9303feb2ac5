package v1alpha1

import (
	"context"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
)

// GetCharacter returns a character
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *economyv1alpha1.GetCharacterRequest,
) (*economyv1alpha1.GetCharacterResponse, error) {
	output, err := h.economyService.GetCharacter(ctx, &economy.GetCharacterInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetCharacterResponse{Character: toCharacter(output.Character)}, nil
}

// GetCharacterMetadata returns name and dna hash
func (h *Handler) GetCharacterMetadata(
	ctx context.Context,
	req *economyv1alpha1.GetCharacterMetadataRequest,
) (*economyv1alpha1.GetCharacterMetadataResponse, error) {
	output, err := h.economyService.GetCharacterMetadata(ctx, &economy.GetCharacterMetadataInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetCharacterMetadataResponse{Metadata: toMetadata(output.Metadata)}, nil
}

// GetCharacterOwner returns the owner
func (h *Handler) GetCharacterOwner(
	ctx context.Context,
	req *economyv1alpha1.GetCharacterOwnerRequest,
) (*economyv1alpha1.GetCharacterOwnerResponse, error) {
	output, err := h.economyService.GetCharacterOwner(ctx, &economy.GetCharacterOwnerInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetCharacterOwnerResponse{Owner: output.Owner.String()}, nil
}

// GetUserBalance returns the reward balance
func (h *Handler) GetUserBalance(
	ctx context.Context,
	req *economyv1alpha1.GetBalanceRequest,
) (*economyv1alpha1.GetBalanceResponse, error) {
	if req.Account == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("account is required"))
	}
	output, err := h.economyService.GetUserBalance(ctx, &economy.GetBalanceInput{Account: entities.Principal(req.Account)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetBalanceResponse{Balance: output.Balance}, nil
}

// GetGovernanceBalance returns the governance balance
func (h *Handler) GetGovernanceBalance(
	ctx context.Context,
	req *economyv1alpha1.GetBalanceRequest,
) (*economyv1alpha1.GetBalanceResponse, error) {
	if req.Account == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("account is required"))
	}
	output, err := h.economyService.GetGovernanceBalance(ctx, &economy.GetBalanceInput{Account: entities.Principal(req.Account)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetBalanceResponse{Balance: output.Balance}, nil
}

// GetBalances returns both balances read together
func (h *Handler) GetBalances(
	ctx context.Context,
	req *economyv1alpha1.GetBalanceRequest,
) (*economyv1alpha1.GetBalancesResponse, error) {
	if req.Account == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("account is required"))
	}
	output, err := h.economyService.GetBalances(ctx, &economy.GetBalanceInput{Account: entities.Principal(req.Account)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetBalancesResponse{Reward: output.Reward, Governance: output.Governance}, nil
}

// GetStakedInfo returns the active stake
func (h *Handler) GetStakedInfo(
	ctx context.Context,
	req *economyv1alpha1.GetStakedInfoRequest,
) (*economyv1alpha1.GetStakedInfoResponse, error) {
	output, err := h.economyService.GetStakedInfo(ctx, &economy.GetStakedInfoInput{CharacterID: req.CharacterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetStakedInfoResponse{Stake: toStake(output.Stake)}, nil
}

// GetLastTokenID returns the id the next mint receives
func (h *Handler) GetLastTokenID(
	ctx context.Context,
	_ *economyv1alpha1.GetLastTokenIDRequest,
) (*economyv1alpha1.GetLastTokenIDResponse, error) {
	output, err := h.economyService.GetLastTokenID(ctx, &economy.GetLastTokenIDInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetLastTokenIDResponse{NextID: output.NextID}, nil
}

// GetParams returns the tunables and contract owner
func (h *Handler) GetParams(
	ctx context.Context,
	_ *economyv1alpha1.GetParamsRequest,
) (*economyv1alpha1.GetParamsResponse, error) {
	output, err := h.economyService.GetParams(ctx, &economy.GetParamsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &economyv1alpha1.GetParamsResponse{Params: toParams(output.Params), Owner: output.Owner.String()}, nil
}
