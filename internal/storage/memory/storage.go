package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games  map[model.GameID]*model.Game
	scores map[string]*model.ScoreEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:  make(map[model.GameID]*model.Game),
		scores: make(map[string]*model.ScoreEntry),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Snapshot()
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game.Snapshot(), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Leaderboard operations

func (s *Storage) SubmitScore(ctx context.Context, entry *model.ScoreEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.scores[entry.Player]
	if ok && existing.Score >= entry.Score {
		return false, nil
	}

	stored := *entry
	s.scores[entry.Player] = &stored
	return true, nil
}

func (s *Storage) GetScore(ctx context.Context, player string) (*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.scores[player]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	out := *entry
	return &out, nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.ScoreEntry, error) {
	s.mu.RLock()
	entries := s.sortedScoresLocked()
	s.mu.RUnlock()

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Storage) PlayerRank(ctx context.Context, player string) (int, error) {
	s.mu.RLock()
	entries := s.sortedScoresLocked()
	s.mu.RUnlock()

	for i, entry := range entries {
		if entry.Player == player {
			return i + 1, nil
		}
	}
	return 0, model.ErrPlayerNotFound
}

// sortedScoresLocked returns copies of all entries, best first. Ties break
// toward the earlier submission, then the lexically smaller player name.
func (s *Storage) sortedScoresLocked() []*model.ScoreEntry {
	entries := make([]*model.ScoreEntry, 0, len(s.scores))
	for _, entry := range s.scores {
		out := *entry
		entries = append(entries, &out)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].SubmittedAt.Equal(entries[j].SubmittedAt) {
			return entries[i].SubmittedAt.Before(entries[j].SubmittedAt)
		}
		return entries[i].Player < entries[j].Player
	})
	return entries
}
