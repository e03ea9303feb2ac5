// Package economy is the deterministic state machine behind the game
// economy: character registry and metadata, the reward and governance
// ledgers, and the staking ledger.
//
// Engine is single-writer and does no I/O. Every operation checks all of
// its preconditions before the first write, so a rejected operation leaves
// the state untouched. Hosts that serve concurrent callers must serialise
// calls themselves (see internal/orchestrators/economy).
package economy
