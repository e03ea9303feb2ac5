package economy

import (
	"github.com/KirkDiggler/rpg-economy/internal/entities"
)

// MintCharacterInput creates a character owned by Caller
type MintCharacterInput struct {
	Caller  entities.Principal
	Name    string
	DNAHash string
}

// MintCharacterOutput holds the new character
type MintCharacterOutput struct {
	CharacterID uint64
	Character   *entities.Character
}

// TransferCharacterInput moves a character to Recipient
type TransferCharacterInput struct {
	Caller      entities.Principal
	CharacterID uint64
	Recipient   entities.Principal
}

// TransferCharacterOutput holds the character after the transfer
type TransferCharacterOutput struct {
	Character *entities.Character
}

// EvolveCharacterInput spends the evolution cost on Stat
type EvolveCharacterInput struct {
	Caller      entities.Principal
	CharacterID uint64
	Stat        string
}

// EvolveCharacterOutput holds the evolved character and the caller's
// remaining reward balance
type EvolveCharacterOutput struct {
	Character     *entities.Character
	RewardBalance uint64
}

// CompleteDungeonInput records a dungeon run
type CompleteDungeonInput struct {
	Caller      entities.Principal
	CharacterID uint64
}

// CompleteDungeonOutput reports what was credited
type CompleteDungeonOutput struct {
	Character          *entities.Character
	RewardCredited     uint64
	GovernanceCredited uint64
	RewardBalance      uint64
}

// StakeCharacterInput escrows Amount against a character
type StakeCharacterInput struct {
	Caller      entities.Principal
	CharacterID uint64
	Amount      uint64
}

// StakeCharacterOutput holds the opened stake
type StakeCharacterOutput struct {
	Stake         *entities.StakeRecord
	RewardBalance uint64
}

// UnstakeCharacterInput closes a stake
type UnstakeCharacterInput struct {
	Caller      entities.Principal
	CharacterID uint64
}

// UnstakeCharacterOutput reports the payout
type UnstakeCharacterOutput struct {
	Returned      uint64
	Reward        uint64
	RewardBalance uint64
}

// SetEvolutionCostInput changes the evolution price
type SetEvolutionCostInput struct {
	Caller entities.Principal
	Value  uint64
}

// SetEvolutionCostOutput holds the tunables after the change
type SetEvolutionCostOutput struct {
	Params entities.Params
}

// SetDungeonRewardInput changes the dungeon payout
type SetDungeonRewardInput struct {
	Caller entities.Principal
	Value  uint64
}

// SetDungeonRewardOutput holds the tunables after the change
type SetDungeonRewardOutput struct {
	Params entities.Params
}

// GrantTokensInput mints reward tokens to Recipient
type GrantTokensInput struct {
	Caller    entities.Principal
	Recipient entities.Principal
	Amount    uint64
}

// GrantTokensOutput holds the recipient's new balance
type GrantTokensOutput struct {
	Balance uint64
}

// GetCharacterInput looks up a character
type GetCharacterInput struct {
	CharacterID uint64
}

// GetCharacterOutput holds the character
type GetCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterMetadataInput looks up metadata
type GetCharacterMetadataInput struct {
	CharacterID uint64
}

// GetCharacterMetadataOutput holds the metadata
type GetCharacterMetadataOutput struct {
	Metadata *entities.Metadata
}

// GetCharacterOwnerInput looks up the owner
type GetCharacterOwnerInput struct {
	CharacterID uint64
}

// GetCharacterOwnerOutput holds the owner
type GetCharacterOwnerOutput struct {
	Owner entities.Principal
}

// GetBalanceInput names an account
type GetBalanceInput struct {
	Account entities.Principal
}

// GetBalanceOutput holds one ledger balance
type GetBalanceOutput struct {
	Balance uint64
}

// GetBalancesOutput holds both ledger balances read at the same point
type GetBalancesOutput struct {
	Reward     uint64
	Governance uint64
}

// GetStakedInfoInput looks up a stake
type GetStakedInfoInput struct {
	CharacterID uint64
}

// GetStakedInfoOutput holds the active stake
type GetStakedInfoOutput struct {
	Stake *entities.StakeRecord
}

// GetLastTokenIDInput is empty
type GetLastTokenIDInput struct{}

// GetLastTokenIDOutput holds the id the next mint receives
type GetLastTokenIDOutput struct {
	NextID uint64
}

// GetParamsInput is empty
type GetParamsInput struct{}

// GetParamsOutput holds the tunables and the contract owner
type GetParamsOutput struct {
	Params entities.Params
	Owner  entities.Principal
}

// RestoreInput is empty
type RestoreInput struct{}

// RestoreOutput describes the recovery
type RestoreOutput struct {
	FromSnapshot bool
	SnapshotSeq  uint64
	Replayed     int
	Seq          uint64
}
