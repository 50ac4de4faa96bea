package game

import (
	"sync"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// keyedLocks serializes mutating operations per game. The state machine
// assumes single-writer access; concurrent API requests for the same game
// are funneled through one mutex here.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{
		locks: make(map[model.GameID]*sync.Mutex),
	}
}

// get returns the mutex for a game, creating it on first use
func (l *keyedLocks) get(id model.GameID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// forget drops the mutex for a deleted game
func (l *keyedLocks) forget(id model.GameID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}
