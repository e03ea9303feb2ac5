// Package mcp exposes read-only economy queries as Model Context Protocol
// tools so assistants can inspect characters and balances.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
	"github.com/KirkDiggler/rpg-economy/internal/orchestrators/economy"
)

const (
	serverName = "rpg-economy"
)

// CharacterInput selects a character by id
type CharacterInput struct {
	CharacterID uint64 `json:"character_id" jsonschema:"id of the character"`
}

// CharacterResult is a character with its immutable metadata
type CharacterResult struct {
	Character entities.Character `json:"character"`
	Metadata  entities.Metadata  `json:"metadata"`
}

// BalancesInput selects an account
type BalancesInput struct {
	Account string `json:"account" jsonschema:"account principal"`
}

// BalancesResult holds both ledgers for one account
type BalancesResult struct {
	Account    string `json:"account"`
	Reward     uint64 `json:"reward"`
	Governance uint64 `json:"governance"`
}

// StakeResult reports the active stake of a character, if any
type StakeResult struct {
	Staked bool                  `json:"staked"`
	Stake  *entities.StakeRecord `json:"stake,omitempty"`
}

// ParamsInput takes no arguments
type ParamsInput struct{}

// ParamsResult is the economy configuration
type ParamsResult struct {
	Owner         string `json:"owner"`
	EvolutionCost uint64 `json:"evolution_cost"`
	DungeonReward uint64 `json:"dungeon_reward"`
	NextID        uint64 `json:"next_id"`
}

// GetCharacterTool defines the character lookup tool
func GetCharacterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_character",
		Description: "Returns a character's stats, owner and metadata",
	}
}

// GetBalancesTool defines the balance lookup tool
func GetBalancesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_balances",
		Description: "Returns the reward and governance balances of an account",
	}
}

// GetStakeTool defines the stake lookup tool
func GetStakeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_stake",
		Description: "Returns the active stake on a character",
	}
}

// GetParamsTool defines the params lookup tool
func GetParamsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_params",
		Description: "Returns the contract owner, tunables and next character id",
	}
}

// GetCharacterHandler reads a character and its metadata
func GetCharacterHandler(svc economy.Service) mcp.ToolHandlerFor[CharacterInput, CharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterInput) (*mcp.CallToolResult, CharacterResult, error) {
		char, err := svc.GetCharacter(ctx, &economy.GetCharacterInput{CharacterID: input.CharacterID})
		if err != nil {
			return nil, CharacterResult{}, err
		}
		md, err := svc.GetCharacterMetadata(ctx, &economy.GetCharacterMetadataInput{CharacterID: input.CharacterID})
		if err != nil {
			return nil, CharacterResult{}, err
		}
		return nil, CharacterResult{Character: *char.Character, Metadata: *md.Metadata}, nil
	}
}

// GetBalancesHandler reads both ledgers for an account
func GetBalancesHandler(svc economy.Service) mcp.ToolHandlerFor[BalancesInput, BalancesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BalancesInput) (*mcp.CallToolResult, BalancesResult, error) {
		if input.Account == "" {
			return nil, BalancesResult{}, errors.InvalidArgument("account is required")
		}
		out, err := svc.GetBalances(ctx, &economy.GetBalanceInput{Account: entities.Principal(input.Account)})
		if err != nil {
			return nil, BalancesResult{}, err
		}
		return nil, BalancesResult{
			Account:    input.Account,
			Reward:     out.Reward,
			Governance: out.Governance,
		}, nil
	}
}

// GetStakeHandler reports an unstaked character as Staked false
func GetStakeHandler(svc economy.Service) mcp.ToolHandlerFor[CharacterInput, StakeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterInput) (*mcp.CallToolResult, StakeResult, error) {
		out, err := svc.GetStakedInfo(ctx, &economy.GetStakedInfoInput{CharacterID: input.CharacterID})
		if errors.IsNotFound(err) {
			return nil, StakeResult{}, nil
		}
		if err != nil {
			return nil, StakeResult{}, err
		}
		return nil, StakeResult{Staked: true, Stake: out.Stake}, nil
	}
}

// GetParamsHandler reads the economy configuration
func GetParamsHandler(svc economy.Service) mcp.ToolHandlerFor[ParamsInput, ParamsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ParamsInput) (*mcp.CallToolResult, ParamsResult, error) {
		params, err := svc.GetParams(ctx, &economy.GetParamsInput{})
		if err != nil {
			return nil, ParamsResult{}, err
		}
		last, err := svc.GetLastTokenID(ctx, &economy.GetLastTokenIDInput{})
		if err != nil {
			return nil, ParamsResult{}, err
		}
		return nil, ParamsResult{
			Owner:         params.Owner.String(),
			EvolutionCost: params.Params.EvolutionCost,
			DungeonReward: params.Params.DungeonReward,
			NextID:        last.NextID,
		}, nil
	}
}
