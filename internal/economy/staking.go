package economy

import (
	"math/bits"
	"sort"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// RewardDivisor scales stake*duration down to reward tokens
const RewardDivisor uint64 = 1000

// StakingLedger holds at most one active stake per character
type StakingLedger struct {
	stakes map[uint64]entities.StakeRecord
}

// NewStakingLedger creates an empty staking ledger
func NewStakingLedger() *StakingLedger {
	return &StakingLedger{stakes: make(map[uint64]entities.StakeRecord)}
}

// Open records a stake, replacing any existing record for the character.
// The engine rejects double stakes before calling it.
func (s *StakingLedger) Open(characterID uint64, staker entities.Principal, amount, startedAt uint64) {
	s.stakes[characterID] = entities.StakeRecord{
		CharacterID: characterID,
		Staker:      staker,
		Amount:      amount,
		StartedAt:   startedAt,
	}
}

// Get returns the active stake for the character
func (s *StakingLedger) Get(characterID uint64) (entities.StakeRecord, error) {
	rec, ok := s.stakes[characterID]
	if !ok {
		return entities.StakeRecord{}, errors.NotFoundf("no active stake on character %d", characterID).
			WithMeta("character_id", characterID)
	}
	return rec, nil
}

// Close removes the stake; closing an absent stake is a no-op
func (s *StakingLedger) Close(characterID uint64) {
	delete(s.stakes, characterID)
}

// StakeReward returns floor(amount*(now-startedAt)/1000). The product is
// computed in 128 bits; a quotient wider than 64 bits is OUT_OF_RANGE.
func StakeReward(amount, startedAt, now uint64) (uint64, error) {
	if now <= startedAt {
		return 0, nil
	}

	hi, lo := bits.Mul64(amount, now-startedAt)
	if hi >= RewardDivisor {
		return 0, errors.OutOfRangef("stake reward for %d over %d units overflows", amount, now-startedAt)
	}
	quo, _ := bits.Div64(hi, lo, RewardDivisor)
	return quo, nil
}

func (s *StakingLedger) snapshot() []entities.StakeRecord {
	out := make([]entities.StakeRecord, 0, len(s.stakes))
	for _, rec := range s.stakes {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CharacterID < out[j].CharacterID })
	return out
}

func (s *StakingLedger) restore(records []entities.StakeRecord) {
	s.stakes = make(map[uint64]entities.StakeRecord, len(records))
	for _, rec := range records {
		s.stakes[rec.CharacterID] = rec
	}
}
