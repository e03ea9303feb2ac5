package economy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-economy/internal/economy"
	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

func TestLedger(t *testing.T) {
	ledger := economy.NewLedger(economy.LedgerReward)
	assert.Equal(t, economy.LedgerReward, ledger.Kind())
	assert.Equal(t, uint64(0), ledger.BalanceOf("nobody"))

	require.NoError(t, ledger.Credit("alice", 30))
	require.NoError(t, ledger.Debit("alice", 30))
	assert.Equal(t, uint64(0), ledger.BalanceOf("alice"))

	err := ledger.Debit("alice", 1)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientBalance(err))
	assert.Equal(t, uint64(1), errors.GetMeta(err)["amount"])

	require.NoError(t, ledger.Credit("bob", math.MaxUint64))
	assert.True(t, errors.IsOutOfRange(ledger.CanCredit("bob", 1)))
	assert.True(t, errors.IsOutOfRange(ledger.Credit("bob", 1)))
	assert.Equal(t, uint64(math.MaxUint64), ledger.BalanceOf("bob"))
	assert.NoError(t, ledger.CanCredit("bob", 0))
}

func TestAllocator(t *testing.T) {
	var ids economy.Allocator
	assert.Equal(t, uint64(0), ids.Peek())
	for want := uint64(0); want < 10; want++ {
		assert.Equal(t, want, ids.Next())
	}
	assert.Equal(t, uint64(10), ids.Peek())
}

// TestBalancesTrackModel drives random operations and checks every
// balance against a signed model that must never dip below zero.
func TestBalancesTrackModel(t *testing.T) {
	rng := rand.New(rand.NewSource(20240917))
	players := []entities.Principal{"p0", "p1", "p2", "p3"}

	engine, err := economy.NewEngine(owner, entities.DefaultParams())
	require.NoError(t, err)

	model := make(map[entities.Principal]int64)
	staked := make(map[uint64]entities.StakeRecord)
	for i, p := range players {
		id, err := engine.MintCharacter(p, "Hero", testDNA, 0)
		require.NoError(t, err)
		require.Equal(t, uint64(i), id)
	}

	var now uint64
	for step := 0; step < 2000; step++ {
		now += uint64(rng.Intn(50))
		id := uint64(rng.Intn(len(players)))
		caller := players[rng.Intn(len(players))]
		charOwner, err := engine.GetCharacterOwner(id)
		require.NoError(t, err)

		switch rng.Intn(5) {
		case 0:
			amount := uint64(rng.Intn(200))
			require.NoError(t, engine.GrantTokens(owner, caller, amount))
			model[caller] += int64(amount)
		case 1:
			err := engine.EvolveCharacter(caller, id, "agility")
			switch {
			case caller != charOwner:
				assert.True(t, errors.IsNotOwner(err), "step %d", step)
			case model[caller] < 100:
				assert.True(t, errors.IsInsufficientBalance(err), "step %d", step)
			default:
				require.NoError(t, err, "step %d", step)
				model[caller] -= 100
			}
		case 2:
			amount := uint64(rng.Intn(300) + 1)
			err := engine.StakeCharacter(caller, id, amount, now)
			_, active := staked[id]
			switch {
			case caller != charOwner:
				assert.True(t, errors.IsNotOwner(err), "step %d", step)
			case active:
				assert.True(t, errors.IsAlreadyExists(err), "step %d", step)
			case model[caller] < int64(amount):
				assert.True(t, errors.IsInsufficientBalance(err), "step %d", step)
			default:
				require.NoError(t, err, "step %d", step)
				model[caller] -= int64(amount)
				staked[id] = entities.StakeRecord{CharacterID: id, Staker: caller, Amount: amount, StartedAt: now}
			}
		case 3:
			returned, _, err := engine.UnstakeCharacter(caller, id, now)
			rec, active := staked[id]
			switch {
			case !active:
				assert.True(t, errors.IsNotFound(err), "step %d", step)
			case rec.Staker != caller:
				assert.True(t, errors.IsNotOwner(err), "step %d", step)
			default:
				require.NoError(t, err, "step %d", step)
				want := rec.Amount + rec.Amount*(now-rec.StartedAt)/1000
				assert.Equal(t, want, returned, "step %d", step)
				model[caller] += int64(want)
				delete(staked, id)
			}
		case 4:
			to := players[rng.Intn(len(players))]
			err := engine.TransferCharacter(caller, id, to)
			if caller != charOwner {
				assert.True(t, errors.IsNotOwner(err), "step %d", step)
			} else {
				require.NoError(t, err, "step %d", step)
			}
		}

		for _, p := range players {
			require.GreaterOrEqual(t, model[p], int64(0), "step %d", step)
			require.Equal(t, uint64(model[p]), engine.GetUserBalance(p), "step %d player %s", step, p)
		}
	}
}
