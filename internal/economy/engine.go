package economy

import (
	"math"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Bounds on caller-supplied text
const (
	MaxNameLength = 50
	DNAHashLength = 64
	MaxStatLength = 20
)

// Engine owns the whole economy state
type Engine struct {
	owner      entities.Principal
	params     entities.Params
	ids        *Allocator
	registry   *Registry
	metadata   *MetadataStore
	rewards    *Ledger
	governance *Ledger
	stakes     *StakingLedger
}

// NewEngine creates an empty economy owned by owner
func NewEngine(owner entities.Principal, params entities.Params) (*Engine, error) {
	if owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	ids := &Allocator{}
	return &Engine{
		owner:      owner,
		params:     params,
		ids:        ids,
		registry:   NewRegistry(ids),
		metadata:   NewMetadataStore(),
		rewards:    NewLedger(LedgerReward),
		governance: NewLedger(LedgerGovernance),
		stakes:     NewStakingLedger(),
	}, nil
}

// Execute applies cmd. On error nothing has changed.
func (e *Engine) Execute(cmd Command) (*Result, error) {
	switch cmd.Op {
	case OpMintCharacter:
		id, err := e.MintCharacter(cmd.Caller, cmd.Name, cmd.DNAHash, cmd.Marker)
		if err != nil {
			return nil, err
		}
		return e.characterResult(id), nil
	case OpTransferCharacter:
		if err := e.TransferCharacter(cmd.Caller, cmd.CharacterID, cmd.Recipient); err != nil {
			return nil, err
		}
		return e.characterResult(cmd.CharacterID), nil
	case OpEvolveCharacter:
		if err := e.EvolveCharacter(cmd.Caller, cmd.CharacterID, cmd.Stat); err != nil {
			return nil, err
		}
		res := e.characterResult(cmd.CharacterID)
		res.Balance = e.rewards.BalanceOf(cmd.Caller)
		return res, nil
	case OpCompleteDungeon:
		reward, gov, err := e.CompleteDungeon(cmd.Caller, cmd.CharacterID)
		if err != nil {
			return nil, err
		}
		res := e.characterResult(cmd.CharacterID)
		res.RewardCredited = reward
		res.GovernanceCredited = gov
		res.Balance = e.rewards.BalanceOf(cmd.Caller)
		return res, nil
	case OpStakeCharacter:
		if err := e.StakeCharacter(cmd.Caller, cmd.CharacterID, cmd.Amount, cmd.Marker); err != nil {
			return nil, err
		}
		rec, err := e.stakes.Get(cmd.CharacterID)
		if err != nil {
			return nil, err
		}
		return &Result{CharacterID: cmd.CharacterID, Stake: &rec, Balance: e.rewards.BalanceOf(cmd.Caller)}, nil
	case OpUnstakeCharacter:
		returned, reward, err := e.UnstakeCharacter(cmd.Caller, cmd.CharacterID, cmd.Marker)
		if err != nil {
			return nil, err
		}
		return &Result{
			CharacterID: cmd.CharacterID,
			Returned:    returned,
			StakeReward: reward,
			Balance:     e.rewards.BalanceOf(cmd.Caller),
		}, nil
	case OpSetEvolutionCost:
		if err := e.SetEvolutionCost(cmd.Caller, cmd.Amount); err != nil {
			return nil, err
		}
		params := e.params
		return &Result{Params: &params}, nil
	case OpSetDungeonReward:
		if err := e.SetDungeonReward(cmd.Caller, cmd.Amount); err != nil {
			return nil, err
		}
		params := e.params
		return &Result{Params: &params}, nil
	case OpGrantTokens:
		if err := e.GrantTokens(cmd.Caller, cmd.Recipient, cmd.Amount); err != nil {
			return nil, err
		}
		return &Result{Balance: e.rewards.BalanceOf(cmd.Recipient)}, nil
	case OpGenesis:
		return nil, errors.FailedPreconditionf("%s is only valid as the first journal entry", cmd.Op)
	default:
		return nil, errors.InvalidArgumentf("unknown operation %q", cmd.Op)
	}
}

func (e *Engine) characterResult(id uint64) *Result {
	res := &Result{CharacterID: id}
	if c, err := e.registry.Get(id); err == nil {
		res.Character = &c
	}
	return res
}

// MintCharacter creates a character owned by caller
func (e *Engine) MintCharacter(caller entities.Principal, name, dnaHash string, now uint64) (uint64, error) {
	vb := errors.NewValidationBuilder()
	if caller == "" {
		vb.RequiredField("caller")
	}
	errors.ValidateMaxLength("name", name, MaxNameLength, vb)
	errors.ValidateExactLength("dna_hash", dnaHash, DNAHashLength, vb)
	if err := vb.Build(); err != nil {
		return 0, err
	}

	id := e.registry.Create(caller, now)
	e.metadata.Create(id, name, dnaHash)
	return id, nil
}

// TransferCharacter hands a character to recipient
func (e *Engine) TransferCharacter(caller entities.Principal, id uint64, recipient entities.Principal) error {
	if recipient == "" {
		return errors.InvalidArgument("recipient is required")
	}
	if _, err := e.ownedBy(caller, id); err != nil {
		return err
	}
	return e.registry.SetOwner(id, recipient)
}

// EvolveCharacter charges the evolution cost and raises the named stat
func (e *Engine) EvolveCharacter(caller entities.Principal, id uint64, stat string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("stat", stat, MaxStatLength, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	if _, err := e.ownedBy(caller, id); err != nil {
		return err
	}

	// Debit checks the balance before writing
	if err := e.rewards.Debit(caller, e.params.EvolutionCost); err != nil {
		return err
	}
	return e.registry.ApplyEvolution(id, entities.ParseStatType(stat))
}

// CompleteDungeon pays the dungeon reward and the governance share
func (e *Engine) CompleteDungeon(caller entities.Principal, id uint64) (uint64, uint64, error) {
	if _, err := e.ownedBy(caller, id); err != nil {
		return 0, 0, err
	}

	reward := e.params.DungeonReward
	gov := reward / 10
	if err := e.rewards.CanCredit(caller, reward); err != nil {
		return 0, 0, err
	}
	if err := e.governance.CanCredit(caller, gov); err != nil {
		return 0, 0, err
	}

	if err := e.registry.RecordDungeonCompletion(id); err != nil {
		return 0, 0, err
	}
	if err := e.rewards.Credit(caller, reward); err != nil {
		return 0, 0, err
	}
	if err := e.governance.Credit(caller, gov); err != nil {
		return 0, 0, err
	}
	return reward, gov, nil
}

// StakeCharacter escrows amount of the caller's reward balance against id.
// A character with an active stake cannot be staked again.
func (e *Engine) StakeCharacter(caller entities.Principal, id, amount, now uint64) error {
	if amount == 0 {
		return errors.InvalidArgument("stake amount must be positive")
	}
	if _, err := e.ownedBy(caller, id); err != nil {
		return err
	}
	if existing, err := e.stakes.Get(id); err == nil {
		return errors.AlreadyExistsf("character %d is already staked", id).
			WithMeta("character_id", id).
			WithMeta("staker", existing.Staker.String())
	}

	if err := e.rewards.Debit(caller, amount); err != nil {
		return err
	}
	e.stakes.Open(id, caller, amount, now)
	return nil
}

// UnstakeCharacter closes the stake and returns amount plus reward
func (e *Engine) UnstakeCharacter(caller entities.Principal, id, now uint64) (uint64, uint64, error) {
	rec, err := e.stakes.Get(id)
	if err != nil {
		return 0, 0, err
	}
	if rec.Staker != caller {
		return 0, 0, errors.NotOwnerf("caller %s did not stake character %d", caller, id).
			WithMeta("character_id", id).
			WithMeta("caller", caller.String())
	}

	reward, err := StakeReward(rec.Amount, rec.StartedAt, now)
	if err != nil {
		return 0, 0, err
	}
	if rec.Amount > math.MaxUint64-reward {
		return 0, 0, errors.OutOfRangef("stake payout for character %d overflows", id)
	}
	total := rec.Amount + reward
	if err := e.rewards.Credit(caller, total); err != nil {
		return 0, 0, err
	}
	e.stakes.Close(id)
	return total, reward, nil
}

// SetEvolutionCost changes the evolution price
func (e *Engine) SetEvolutionCost(caller entities.Principal, v uint64) error {
	if err := e.requireOwner(caller); err != nil {
		return err
	}
	e.params.EvolutionCost = v
	return nil
}

// SetDungeonReward changes the dungeon payout
func (e *Engine) SetDungeonReward(caller entities.Principal, v uint64) error {
	if err := e.requireOwner(caller); err != nil {
		return err
	}
	e.params.DungeonReward = v
	return nil
}

// GrantTokens mints reward tokens to recipient
func (e *Engine) GrantTokens(caller, recipient entities.Principal, amount uint64) error {
	if err := e.requireOwner(caller); err != nil {
		return err
	}
	if recipient == "" {
		return errors.InvalidArgument("recipient is required")
	}
	return e.rewards.Credit(recipient, amount)
}

func (e *Engine) requireOwner(caller entities.Principal) error {
	if caller != e.owner {
		return errors.OwnerOnly("only the contract owner may call this").
			WithMeta("caller", caller.String())
	}
	return nil
}

func (e *Engine) ownedBy(caller entities.Principal, id uint64) (entities.Character, error) {
	c, err := e.registry.Get(id)
	if err != nil {
		return entities.Character{}, err
	}
	if c.Owner != caller {
		return entities.Character{}, errors.NotOwnerf("caller %s does not own character %d", caller, id).
			WithMeta("character_id", id).
			WithMeta("caller", caller.String())
	}
	return c, nil
}
