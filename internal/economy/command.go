package economy

import (
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Op identifies a state-changing operation
type Op string

// Operations accepted by Engine.Execute
const (
	OpMintCharacter     Op = "mint_character"
	OpTransferCharacter Op = "transfer_character"
	OpEvolveCharacter   Op = "evolve_character"
	OpCompleteDungeon   Op = "complete_dungeon"
	OpStakeCharacter    Op = "stake_character"
	OpUnstakeCharacter  Op = "unstake_character"
	OpSetEvolutionCost  Op = "set_evolution_cost"
	OpSetDungeonReward  Op = "set_dungeon_reward"
	OpGrantTokens       Op = "grant_tokens"

	// OpGenesis heads every journal. It records the owner and the
	// tunables the economy started with and is never executed.
	OpGenesis Op = "genesis"
)

// Command is a single operation with everything needed to apply it:
// who called, when, and the arguments. The journal stores commands
// verbatim so replay goes through the same path as live calls.
type Command struct {
	Op          Op                 `json:"op"`
	Caller      entities.Principal `json:"caller"`
	Marker      uint64             `json:"marker"`
	CharacterID uint64             `json:"character_id,omitempty"`
	Name        string             `json:"name,omitempty"`
	DNAHash     string             `json:"dna_hash,omitempty"`
	Stat        string             `json:"stat,omitempty"`
	Recipient   entities.Principal `json:"recipient,omitempty"`
	Amount      uint64             `json:"amount,omitempty"`
	// Params is only set on a genesis command
	Params *entities.Params `json:"params,omitempty"`
}

// NewGenesis returns the command that opens a journal for owner
func NewGenesis(owner entities.Principal, params entities.Params) Command {
	return Command{Op: OpGenesis, Caller: owner, Params: &params}
}

// NewEngineFromGenesis creates the empty economy a genesis command describes
func NewEngineFromGenesis(cmd Command) (*Engine, error) {
	if cmd.Op != OpGenesis {
		return nil, errors.FailedPreconditionf("journal starts with %q, not a genesis entry", cmd.Op)
	}
	if cmd.Params == nil {
		return nil, errors.Internal("genesis entry has no params")
	}
	return NewEngine(cmd.Caller, *cmd.Params)
}

// IsAdmin reports whether the operation is restricted to the contract owner
func (o Op) IsAdmin() bool {
	switch o {
	case OpSetEvolutionCost, OpSetDungeonReward, OpGrantTokens:
		return true
	default:
		return false
	}
}

// Result carries the values an accepted command produced. Fields that do
// not apply to the operation are zero.
type Result struct {
	CharacterID        uint64                `json:"character_id"`
	Character          *entities.Character   `json:"character,omitempty"`
	RewardCredited     uint64                `json:"reward_credited,omitempty"`
	GovernanceCredited uint64                `json:"governance_credited,omitempty"`
	StakeReward        uint64                `json:"stake_reward,omitempty"`
	Returned           uint64                `json:"returned,omitempty"`
	Stake              *entities.StakeRecord `json:"stake,omitempty"`
	Params             *entities.Params      `json:"params,omitempty"`
	Balance            uint64                `json:"balance,omitempty"`
}
