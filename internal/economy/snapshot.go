package economy

import (
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Snapshot copies the full state
func (e *Engine) Snapshot() *entities.Snapshot {
	return &entities.Snapshot{
		Owner:      e.owner,
		NextID:     e.ids.Peek(),
		Params:     e.params,
		Characters: e.registry.snapshot(),
		Metadata:   e.metadata.snapshot(),
		Rewards:    e.rewards.snapshot(),
		Governance: e.governance.snapshot(),
		Stakes:     e.stakes.snapshot(),
	}
}

// Restore replaces the state with s. The snapshot must belong to the same
// owner and must not reference ids at or above its NextID.
func (e *Engine) Restore(s *entities.Snapshot) error {
	if s == nil {
		return errors.InvalidArgument("snapshot is required")
	}
	if s.Owner != e.owner {
		return errors.FailedPreconditionf("snapshot owner %s does not match %s", s.Owner, e.owner).
			WithMeta("snapshot_owner", s.Owner.String())
	}
	for _, c := range s.Characters {
		if c.ID >= s.NextID {
			return errors.FailedPreconditionf("snapshot character %d is beyond next id %d", c.ID, s.NextID)
		}
	}

	e.params = s.Params
	e.ids.next = s.NextID
	e.registry.restore(s.Characters)
	e.metadata.restore(s.Metadata)
	e.rewards.restore(s.Rewards)
	e.governance.restore(s.Governance)
	e.stakes.restore(s.Stakes)
	return nil
}
