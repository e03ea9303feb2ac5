package v1alpha1

// Character is the wire form of a character
type Character struct {
	ID                uint64 `json:"id"`
	Owner             string `json:"owner"`
	Level             uint64 `json:"level"`
	Strength          uint64 `json:"strength"`
	Agility           uint64 `json:"agility"`
	Intelligence      uint64 `json:"intelligence"`
	EvolutionCount    uint64 `json:"evolution_count"`
	DungeonsCompleted uint64 `json:"dungeons_completed"`
	CreatedAt         uint64 `json:"created_at"`
}

// CharacterMetadata is the wire form of immutable character metadata
type CharacterMetadata struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	DNAHash string `json:"dna_hash"`
}

// Stake is the wire form of an active stake
type Stake struct {
	CharacterID uint64 `json:"character_id"`
	Staker      string `json:"staker"`
	Amount      uint64 `json:"amount"`
	StartedAt   uint64 `json:"started_at"`
}

// Params are the economy tunables
type Params struct {
	EvolutionCost uint64 `json:"evolution_cost"`
	DungeonReward uint64 `json:"dungeon_reward"`
}

type MintCharacterRequest struct {
	Name    string `json:"name"`
	DNAHash string `json:"dna_hash"`
}

type MintCharacterResponse struct {
	CharacterID uint64     `json:"character_id"`
	Character   *Character `json:"character"`
}

type TransferCharacterRequest struct {
	CharacterID uint64 `json:"character_id"`
	Recipient   string `json:"recipient"`
}

type TransferCharacterResponse struct {
	Character *Character `json:"character"`
}

type EvolveCharacterRequest struct {
	CharacterID uint64 `json:"character_id"`
	Stat        string `json:"stat"`
}

type EvolveCharacterResponse struct {
	Character     *Character `json:"character"`
	RewardBalance uint64     `json:"reward_balance"`
}

type CompleteDungeonRequest struct {
	CharacterID uint64 `json:"character_id"`
}

type CompleteDungeonResponse struct {
	Character          *Character `json:"character"`
	RewardCredited     uint64     `json:"reward_credited"`
	GovernanceCredited uint64     `json:"governance_credited"`
	RewardBalance      uint64     `json:"reward_balance"`
}

type StakeCharacterRequest struct {
	CharacterID uint64 `json:"character_id"`
	Amount      uint64 `json:"amount"`
}

type StakeCharacterResponse struct {
	Stake         *Stake `json:"stake"`
	RewardBalance uint64 `json:"reward_balance"`
}

type UnstakeCharacterRequest struct {
	CharacterID uint64 `json:"character_id"`
}

type UnstakeCharacterResponse struct {
	Returned      uint64 `json:"returned"`
	Reward        uint64 `json:"reward"`
	RewardBalance uint64 `json:"reward_balance"`
}

type SetEvolutionCostRequest struct {
	Value uint64 `json:"value"`
}

type SetEvolutionCostResponse struct {
	Params *Params `json:"params"`
}

type SetDungeonRewardRequest struct {
	Value uint64 `json:"value"`
}

type SetDungeonRewardResponse struct {
	Params *Params `json:"params"`
}

type GrantTokensRequest struct {
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type GrantTokensResponse struct {
	Balance uint64 `json:"balance"`
}

type GetCharacterRequest struct {
	CharacterID uint64 `json:"character_id"`
}

type GetCharacterResponse struct {
	Character *Character `json:"character"`
}

type GetCharacterMetadataRequest struct {
	CharacterID uint64 `json:"character_id"`
}

type GetCharacterMetadataResponse struct {
	Metadata *CharacterMetadata `json:"metadata"`
}

type GetCharacterOwnerRequest struct {
	CharacterID uint64 `json:"character_id"`
}

type GetCharacterOwnerResponse struct {
	Owner string `json:"owner"`
}

type GetBalanceRequest struct {
	Account string `json:"account"`
}

type GetBalanceResponse struct {
	Balance uint64 `json:"balance"`
}

type GetBalancesResponse struct {
	Reward     uint64 `json:"reward"`
	Governance uint64 `json:"governance"`
}

type GetStakedInfoRequest struct {
	CharacterID uint64 `json:"character_id"`
}

type GetStakedInfoResponse struct {
	Stake *Stake `json:"stake"`
}

type GetLastTokenIDRequest struct{}

type GetLastTokenIDResponse struct {
	NextID uint64 `json:"next_id"`
}

type GetParamsRequest struct{}

type GetParamsResponse struct {
	Params *Params `json:"params"`
	Owner  string  `json:"owner"`
}
