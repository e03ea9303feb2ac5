package v1alpha1

import (
	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
)

func toCharacter(c *entities.Character) *economyv1alpha1.Character {
	if c == nil {
		return nil
	}
	return &economyv1alpha1.Character{
		ID:                c.ID,
		Owner:             c.Owner.String(),
		Level:             c.Level,
		Strength:          c.Strength,
		Agility:           c.Agility,
		Intelligence:      c.Intelligence,
		EvolutionCount:    c.EvolutionCount,
		DungeonsCompleted: c.DungeonsCompleted,
		CreatedAt:         c.CreatedAt,
	}
}

func toMetadata(md *entities.Metadata) *economyv1alpha1.CharacterMetadata {
	if md == nil {
		return nil
	}
	return &economyv1alpha1.CharacterMetadata{ID: md.ID, Name: md.Name, DNAHash: md.DNAHash}
}

func toStake(rec *entities.StakeRecord) *economyv1alpha1.Stake {
	if rec == nil {
		return nil
	}
	return &economyv1alpha1.Stake{
		CharacterID: rec.CharacterID,
		Staker:      rec.Staker.String(),
		Amount:      rec.Amount,
		StartedAt:   rec.StartedAt,
	}
}

func toParams(p entities.Params) *economyv1alpha1.Params {
	return &economyv1alpha1.Params{EvolutionCost: p.EvolutionCost, DungeonReward: p.DungeonReward}
}
