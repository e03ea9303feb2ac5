package economy

import (
	"math"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// LedgerKind names a balance ledger
type LedgerKind string

// Ledger kinds
const (
	LedgerReward     LedgerKind = "reward"
	LedgerGovernance LedgerKind = "governance"
)

// Ledger maps accounts to non-negative balances. A missing account has
// balance zero.
type Ledger struct {
	kind     LedgerKind
	balances map[entities.Principal]uint64
}

// NewLedger creates an empty ledger of the given kind
func NewLedger(kind LedgerKind) *Ledger {
	return &Ledger{
		kind:     kind,
		balances: make(map[entities.Principal]uint64),
	}
}

// Kind returns the ledger kind
func (l *Ledger) Kind() LedgerKind {
	return l.kind
}

// BalanceOf returns the stored balance or zero
func (l *Ledger) BalanceOf(account entities.Principal) uint64 {
	return l.balances[account]
}

// CanCredit reports whether crediting amount would overflow
func (l *Ledger) CanCredit(account entities.Principal, amount uint64) error {
	if l.balances[account] > math.MaxUint64-amount {
		return errors.OutOfRangef("%s balance of %s would overflow", l.kind, account).
			WithMeta("account", account.String()).
			WithMeta("amount", amount)
	}
	return nil
}

// Credit adds amount to the account
func (l *Ledger) Credit(account entities.Principal, amount uint64) error {
	if err := l.CanCredit(account, amount); err != nil {
		return err
	}
	l.balances[account] += amount
	return nil
}

// Debit subtracts amount, failing without a write if the balance is short
func (l *Ledger) Debit(account entities.Principal, amount uint64) error {
	balance := l.balances[account]
	if balance < amount {
		return errors.InsufficientBalancef("%s balance %d is below %d", l.kind, balance, amount).
			WithMeta("account", account.String()).
			WithMeta("balance", balance).
			WithMeta("amount", amount)
	}
	l.balances[account] = balance - amount
	return nil
}

func (l *Ledger) snapshot() map[entities.Principal]uint64 {
	out := make(map[entities.Principal]uint64, len(l.balances))
	for k, v := range l.balances {
		out[k] = v
	}
	return out
}

func (l *Ledger) restore(balances map[entities.Principal]uint64) {
	l.balances = make(map[entities.Principal]uint64, len(balances))
	for k, v := range balances {
		l.balances[k] = v
	}
}
