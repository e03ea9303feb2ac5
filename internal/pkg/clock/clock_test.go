package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-economy/internal/pkg/clock"
)

func TestManualClock(t *testing.T) {
	c := clock.NewManual(100)
	assert.Equal(t, uint64(100), c.Now())
	assert.Equal(t, uint64(2100), c.Advance(2000))

	c.Set(50)
	assert.Equal(t, uint64(2100), c.Now(), "manual clock must not move backwards")

	c.Set(3000)
	assert.Equal(t, uint64(3000), c.Now())
}

func TestRealClockIsNonZero(t *testing.T) {
	assert.NotZero(t, clock.New().Now())
}

func TestRealClockNeverMovesBackwards(t *testing.T) {
	readings := []time.Time{
		time.Unix(1_700_000_100, 0),
		time.Unix(1_700_000_040, 0), // stepped back
		time.Unix(1_700_000_100, 0),
		time.Unix(1_700_000_160, 0),
	}
	c := clock.NewFromSource(func() time.Time {
		next := readings[0]
		readings = readings[1:]
		return next
	})

	assert.Equal(t, uint64(1_700_000_100), c.Now())
	assert.Equal(t, uint64(1_700_000_100), c.Now(), "real clock must not move backwards")
	assert.Equal(t, uint64(1_700_000_100), c.Now())
	assert.Equal(t, uint64(1_700_000_160), c.Now())
}
