package clock

import "time"

// Clock provides time operations that can be mocked for testing. The game
// state machine's drop timer reads the clock only through this interface.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func New() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}
