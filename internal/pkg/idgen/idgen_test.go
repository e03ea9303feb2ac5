package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-economy/internal/pkg/idgen"
)

func TestULIDGeneratorIsSortable(t *testing.T) {
	gen := idgen.NewULID()

	prev := gen.Generate()
	for i := 0; i < 500; i++ {
		next := gen.Generate()
		require.Len(t, next, 26)
		assert.Less(t, prev, next)
		prev = next
	}
}

func TestUUIDGeneratorPrefix(t *testing.T) {
	id := idgen.NewUUID("req").Generate()
	assert.True(t, strings.HasPrefix(id, "req_"))
	assert.Len(t, id, len("req_")+36)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("entry")
	assert.Equal(t, "entry_1", gen.Generate())
	assert.Equal(t, "entry_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
