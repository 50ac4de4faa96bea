package mocks

import (
	"time"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/clock"
)

// MockClock is a manually driven clock. Tests move time with Advance or Set
// and the machine under test observes the frozen value through Now.
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward (or backward, for negative d).
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
