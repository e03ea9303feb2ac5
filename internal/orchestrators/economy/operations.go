package economy

import (
	"context"

	engine "github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

func (o *orchestrator) MintCharacter(ctx context.Context, input *MintCharacterInput) (*MintCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:      engine.OpMintCharacter,
		Caller:  input.Caller,
		Name:    input.Name,
		DNAHash: input.DNAHash,
	})
	if err != nil {
		return nil, err
	}
	return &MintCharacterOutput{CharacterID: res.CharacterID, Character: res.Character}, nil
}

func (o *orchestrator) TransferCharacter(ctx context.Context, input *TransferCharacterInput) (*TransferCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:          engine.OpTransferCharacter,
		Caller:      input.Caller,
		CharacterID: input.CharacterID,
		Recipient:   input.Recipient,
	})
	if err != nil {
		return nil, err
	}
	return &TransferCharacterOutput{Character: res.Character}, nil
}

func (o *orchestrator) EvolveCharacter(ctx context.Context, input *EvolveCharacterInput) (*EvolveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:          engine.OpEvolveCharacter,
		Caller:      input.Caller,
		CharacterID: input.CharacterID,
		Stat:        input.Stat,
	})
	if err != nil {
		return nil, err
	}
	return &EvolveCharacterOutput{Character: res.Character, RewardBalance: res.Balance}, nil
}

func (o *orchestrator) CompleteDungeon(ctx context.Context, input *CompleteDungeonInput) (*CompleteDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:          engine.OpCompleteDungeon,
		Caller:      input.Caller,
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, err
	}
	return &CompleteDungeonOutput{
		Character:          res.Character,
		RewardCredited:     res.RewardCredited,
		GovernanceCredited: res.GovernanceCredited,
		RewardBalance:      res.Balance,
	}, nil
}

func (o *orchestrator) StakeCharacter(ctx context.Context, input *StakeCharacterInput) (*StakeCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:          engine.OpStakeCharacter,
		Caller:      input.Caller,
		CharacterID: input.CharacterID,
		Amount:      input.Amount,
	})
	if err != nil {
		return nil, err
	}
	return &StakeCharacterOutput{Stake: res.Stake, RewardBalance: res.Balance}, nil
}

func (o *orchestrator) UnstakeCharacter(ctx context.Context, input *UnstakeCharacterInput) (*UnstakeCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:          engine.OpUnstakeCharacter,
		Caller:      input.Caller,
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, err
	}
	return &UnstakeCharacterOutput{Returned: res.Returned, Reward: res.StakeReward, RewardBalance: res.Balance}, nil
}

func (o *orchestrator) SetEvolutionCost(ctx context.Context, input *SetEvolutionCostInput) (*SetEvolutionCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:     engine.OpSetEvolutionCost,
		Caller: input.Caller,
		Amount: input.Value,
	})
	if err != nil {
		return nil, err
	}
	return &SetEvolutionCostOutput{Params: *res.Params}, nil
}

func (o *orchestrator) SetDungeonReward(ctx context.Context, input *SetDungeonRewardInput) (*SetDungeonRewardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:     engine.OpSetDungeonReward,
		Caller: input.Caller,
		Amount: input.Value,
	})
	if err != nil {
		return nil, err
	}
	return &SetDungeonRewardOutput{Params: *res.Params}, nil
}

func (o *orchestrator) GrantTokens(ctx context.Context, input *GrantTokensInput) (*GrantTokensOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.execute(ctx, engine.Command{
		Op:        engine.OpGrantTokens,
		Caller:    input.Caller,
		Recipient: input.Recipient,
		Amount:    input.Amount,
	})
	if err != nil {
		return nil, err
	}
	return &GrantTokensOutput{Balance: res.Balance}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetCharacterOutput
	err := o.read(ctx, "GetCharacter", func(e *engine.Engine) error {
		c, err := e.GetCharacter(input.CharacterID)
		if err != nil {
			return err
		}
		out.Character = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) GetCharacterMetadata(ctx context.Context, input *GetCharacterMetadataInput) (*GetCharacterMetadataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetCharacterMetadataOutput
	err := o.read(ctx, "GetCharacterMetadata", func(e *engine.Engine) error {
		md, err := e.GetCharacterMetadata(input.CharacterID)
		if err != nil {
			return err
		}
		out.Metadata = &md
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) GetCharacterOwner(ctx context.Context, input *GetCharacterOwnerInput) (*GetCharacterOwnerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetCharacterOwnerOutput
	err := o.read(ctx, "GetCharacterOwner", func(e *engine.Engine) error {
		owner, err := e.GetCharacterOwner(input.CharacterID)
		out.Owner = owner
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) GetUserBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	return o.balance(ctx, "GetUserBalance", input, (*engine.Engine).GetUserBalance)
}

func (o *orchestrator) GetGovernanceBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	return o.balance(ctx, "GetGovernanceBalance", input, (*engine.Engine).GetGovernanceBalance)
}

func (o *orchestrator) GetBalances(ctx context.Context, input *GetBalanceInput) (*GetBalancesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetBalancesOutput
	err := o.read(ctx, "GetBalances", func(e *engine.Engine) error {
		out.Reward = e.GetUserBalance(input.Account)
		out.Governance = e.GetGovernanceBalance(input.Account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) balance(
	ctx context.Context,
	name string,
	input *GetBalanceInput,
	lookup func(*engine.Engine, entities.Principal) uint64,
) (*GetBalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetBalanceOutput
	err := o.read(ctx, name, func(e *engine.Engine) error {
		out.Balance = lookup(e, input.Account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) GetStakedInfo(ctx context.Context, input *GetStakedInfoInput) (*GetStakedInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetStakedInfoOutput
	err := o.read(ctx, "GetStakedInfo", func(e *engine.Engine) error {
		rec, err := e.GetStakedInfo(input.CharacterID)
		if err != nil {
			return err
		}
		out.Stake = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) GetLastTokenID(ctx context.Context, _ *GetLastTokenIDInput) (*GetLastTokenIDOutput, error) {
	var out GetLastTokenIDOutput
	err := o.read(ctx, "GetLastTokenID", func(e *engine.Engine) error {
		out.NextID = e.GetLastTokenID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) GetParams(ctx context.Context, _ *GetParamsInput) (*GetParamsOutput, error) {
	var out GetParamsOutput
	err := o.read(ctx, "GetParams", func(e *engine.Engine) error {
		out.Params = e.GetParams()
		out.Owner = e.GetContractOwner()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
