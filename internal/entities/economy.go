package entities

// Default tunables applied when genesis leaves them unset
const (
	DefaultEvolutionCost uint64 = 100
	DefaultDungeonReward uint64 = 50
)

// Params are the process-wide tunables, changed only by the contract owner
type Params struct {
	EvolutionCost uint64 `json:"evolution_cost" yaml:"evolution_cost"`
	DungeonReward uint64 `json:"dungeon_reward" yaml:"dungeon_reward"`
}

// DefaultParams returns the launch tunables
func DefaultParams() Params {
	return Params{
		EvolutionCost: DefaultEvolutionCost,
		DungeonReward: DefaultDungeonReward,
	}
}

// Snapshot is a complete, serialisable copy of the economy state
type Snapshot struct {
	Owner      Principal            `json:"owner"`
	NextID     uint64               `json:"next_id"`
	Params     Params               `json:"params"`
	Characters []Character          `json:"characters"`
	Metadata   []Metadata           `json:"metadata"`
	Rewards    map[Principal]uint64 `json:"rewards"`
	Governance map[Principal]uint64 `json:"governance"`
	Stakes     []StakeRecord        `json:"stakes"`
}
