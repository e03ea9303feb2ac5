package economy

import (
	"sort"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Registry holds character ownership and stats
type Registry struct {
	ids        *Allocator
	characters map[uint64]*entities.Character
}

// NewRegistry creates a registry drawing ids from ids
func NewRegistry(ids *Allocator) *Registry {
	return &Registry{
		ids:        ids,
		characters: make(map[uint64]*entities.Character),
	}
}

// Create stores a new starting character and returns its id
func (r *Registry) Create(owner entities.Principal, createdAt uint64) uint64 {
	id := r.ids.Next()
	r.characters[id] = &entities.Character{
		ID:           id,
		Owner:        owner,
		Level:        entities.StartingLevel,
		Strength:     entities.StartingStat,
		Agility:      entities.StartingStat,
		Intelligence: entities.StartingStat,
		CreatedAt:    createdAt,
	}
	return id
}

// Get returns a copy of the character
func (r *Registry) Get(id uint64) (entities.Character, error) {
	c, ok := r.characters[id]
	if !ok {
		return entities.Character{}, errors.NotFoundf("character %d not found", id).
			WithMeta("character_id", id)
	}
	return *c, nil
}

// SetOwner overwrites the owner and nothing else
func (r *Registry) SetOwner(id uint64, owner entities.Principal) error {
	c, ok := r.characters[id]
	if !ok {
		return errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
	}
	c.Owner = owner
	return nil
}

// ApplyEvolution levels the character and raises the chosen stat.
// StatUnknown raises level and evolution count only.
func (r *Registry) ApplyEvolution(id uint64, stat entities.StatType) error {
	c, ok := r.characters[id]
	if !ok {
		return errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
	}

	c.Level++
	c.EvolutionCount++
	switch stat {
	case entities.StatStrength:
		c.Strength += entities.EvolutionStatGain
	case entities.StatAgility:
		c.Agility += entities.EvolutionStatGain
	case entities.StatIntelligence:
		c.Intelligence += entities.EvolutionStatGain
	case entities.StatUnknown:
	}
	return nil
}

// RecordDungeonCompletion increments the dungeon counter
func (r *Registry) RecordDungeonCompletion(id uint64) error {
	c, ok := r.characters[id]
	if !ok {
		return errors.NotFoundf("character %d not found", id).WithMeta("character_id", id)
	}
	c.DungeonsCompleted++
	return nil
}

func (r *Registry) snapshot() []entities.Character {
	out := make([]entities.Character, 0, len(r.characters))
	for _, c := range r.characters {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) restore(characters []entities.Character) {
	r.characters = make(map[uint64]*entities.Character, len(characters))
	for i := range characters {
		c := characters[i]
		r.characters[c.ID] = &c
	}
}
