package mocks

import (
	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/random"
)

// MockRandom replays queued draws. An exhausted queue yields the zero value,
// so a test that queues nothing gets a fixed, predictable sequence.
type MockRandom struct {
	intnQueue   []int
	stringQueue []string
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) Intn(n int) int {
	if len(r.intnQueue) == 0 {
		return 0
	}
	v := r.intnQueue[0]
	r.intnQueue = r.intnQueue[1:]
	return v
}

func (r *MockRandom) String(length int, alphabet string) string {
	if len(r.stringQueue) == 0 {
		return ""
	}
	v := r.stringQueue[0]
	r.stringQueue = r.stringQueue[1:]
	return v
}

// QueueIntn appends draws for Intn to replay in order.
func (r *MockRandom) QueueIntn(values ...int) {
	r.intnQueue = append(r.intnQueue, values...)
}

// QueueString appends draws for String to replay in order.
func (r *MockRandom) QueueString(values ...string) {
	r.stringQueue = append(r.stringQueue, values...)
}

// Reset drops any queued draws.
func (r *MockRandom) Reset() {
	r.intnQueue = nil
	r.stringQueue = nil
}
