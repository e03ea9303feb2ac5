package economy

import (
	"github.com/KirkDiggler/rpg-economy/internal/entities"
)

// GetCharacter returns the character or NOT_FOUND
func (e *Engine) GetCharacter(id uint64) (entities.Character, error) {
	return e.registry.Get(id)
}

// GetCharacterMetadata returns name and dna hash or NOT_FOUND
func (e *Engine) GetCharacterMetadata(id uint64) (entities.Metadata, error) {
	return e.metadata.Get(id)
}

// GetCharacterOwner returns the current owner or NOT_FOUND
func (e *Engine) GetCharacterOwner(id uint64) (entities.Principal, error) {
	c, err := e.registry.Get(id)
	if err != nil {
		return "", err
	}
	return c.Owner, nil
}

// GetUserBalance returns the reward balance, zero when absent
func (e *Engine) GetUserBalance(account entities.Principal) uint64 {
	return e.rewards.BalanceOf(account)
}

// GetGovernanceBalance returns the governance balance, zero when absent
func (e *Engine) GetGovernanceBalance(account entities.Principal) uint64 {
	return e.governance.BalanceOf(account)
}

// GetStakedInfo returns the active stake or NOT_FOUND
func (e *Engine) GetStakedInfo(id uint64) (entities.StakeRecord, error) {
	return e.stakes.Get(id)
}

// GetLastTokenID returns the id the next mint will receive
func (e *Engine) GetLastTokenID() uint64 {
	return e.ids.Peek()
}

// GetParams returns the current tunables
func (e *Engine) GetParams() entities.Params {
	return e.params
}

// GetContractOwner returns the identity fixed at initialization
func (e *Engine) GetContractOwner() entities.Principal {
	return e.owner
}
