// Package clock supplies the host's monotonic time marker.
//
// The economy never reads wall time directly. Creation markers and staking
// durations are measured in whatever unit the host's Clock reports.
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-economy/internal/pkg/clock Clock

// Clock provides the current time marker
type Clock interface {
	Now() uint64
}

// Real reports unix seconds. A wall clock stepped backwards holds the
// marker at the last value returned.
type Real struct {
	mu     sync.Mutex
	last   uint64
	source func() time.Time
}

// Now returns the current unix time in seconds, never less than a
// previous result
func (c *Real) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	source := c.source
	if source == nil {
		source = time.Now
	}
	if now := source().Unix(); now > 0 && uint64(now) > c.last {
		c.last = uint64(now)
	}
	return c.last
}

// New returns a new real clock
func New() Clock {
	return &Real{source: time.Now}
}

// NewFromSource returns a real clock reading source instead of time.Now
func NewFromSource(source func() time.Time) *Real {
	return &Real{source: source}
}

// Manual is a settable clock for tests and replays. It never moves backwards.
type Manual struct {
	mu  sync.Mutex
	now uint64
}

// NewManual returns a manual clock starting at start
func NewManual(start uint64) *Manual {
	return &Manual{now: start}
}

// Now returns the current marker
func (m *Manual) Now() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the marker forward by delta and returns the new value
func (m *Manual) Advance(delta uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += delta
	return m.now
}

// Set moves the marker to v; values behind the current marker are ignored
func (m *Manual) Set(v uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v > m.now {
		m.now = v
	}
}
