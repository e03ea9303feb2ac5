package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the rpg-toolkit entity type for characters
const EntityTypeCharacter = "character"

// Starting stats for a freshly minted character
const (
	StartingLevel = 1
	StartingStat  = 10
	// EvolutionStatGain is added to the evolved stat on every evolution
	EvolutionStatGain = 5
)

// Principal is an opaque, host-authenticated account identity
type Principal string

// String returns the principal as a string
func (p Principal) String() string {
	return string(p)
}

// Character is the evolvable, ownable record
type Character struct {
	ID                uint64    `json:"id"`
	Owner             Principal `json:"owner"`
	Level             uint64    `json:"level"`
	Strength          uint64    `json:"strength"`
	Agility           uint64    `json:"agility"`
	Intelligence      uint64    `json:"intelligence"`
	EvolutionCount    uint64    `json:"evolution_count"`
	DungeonsCompleted uint64    `json:"dungeons_completed"`
	CreatedAt         uint64    `json:"created_at"`
}

// GetID returns the character id in decimal
func (c *Character) GetID() string {
	return strconv.FormatUint(c.ID, 10)
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*Character)(nil)

// Metadata is the immutable descriptive data minted alongside a character
type Metadata struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	DNAHash string `json:"dna_hash"`
}

// StakeRecord is an active escrow of reward tokens against a character
type StakeRecord struct {
	CharacterID uint64    `json:"character_id"`
	Staker      Principal `json:"staker"`
	Amount      uint64    `json:"amount"`
	StartedAt   uint64    `json:"started_at"`
}
