package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	v, err := parseUint("amount", "18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)

	_, err = parseUint("amount", "-1")
	assert.ErrorContains(t, err, "amount")

	_, err = parseUint("amount", "ten")
	assert.Error(t, err)
}

func TestRequirePrincipal(t *testing.T) {
	principal = ""
	assert.Error(t, requirePrincipal(nil, nil))

	principal = "alice"
	t.Cleanup(func() { principal = "" })
	assert.NoError(t, requirePrincipal(nil, nil))
}

func TestEveryOperationHasACommand(t *testing.T) {
	var names []string
	for _, cmd := range ClientCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{
		"mint", "transfer", "evolve", "complete-dungeon", "stake", "unstake",
		"set-evolution-cost", "set-dungeon-reward", "grant",
		"get-character", "balance", "stake-info", "params",
	})
}
