package leaderboard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/clock"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage"
)

const (
	maxPlayerNameLength = 32

	// DefaultLimit is the number of entries returned when a caller does not
	// ask for a specific count; MaxLimit caps what a caller may request.
	DefaultLimit = 10
	MaxLimit     = 100
)

// Service manages the high-score leaderboard. One entry is kept per player:
// a submission only replaces the stored entry when the score improves.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new leaderboard service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit records a final game result for a player. It returns the stored
// entry and whether this submission became the player's new best.
func (s *Service) Submit(ctx context.Context, player string, result model.Result) (*model.ScoreEntry, bool, error) {
	player = strings.TrimSpace(player)
	if player == "" || len(player) > maxPlayerNameLength {
		return nil, false, model.ErrInvalidPlayerName
	}
	if result.Score < 0 || result.Level < 1 || result.Lines < 0 {
		return nil, false, model.ErrInvalidScore
	}

	entry := &model.ScoreEntry{
		Player:      player,
		Score:       result.Score,
		Level:       result.Level,
		Lines:       result.Lines,
		SubmittedAt: s.clock.Now(),
	}

	improved, err := s.storage.SubmitScore(ctx, entry)
	if err != nil {
		s.logger.Error("failed to submit score",
			slog.String("player", player),
			slog.String("error", err.Error()),
		)
		return nil, false, err
	}

	s.logger.Info("score submitted",
		slog.String("player", player),
		slog.Int("score", result.Score),
		slog.Bool("improved", improved),
	)

	if !improved {
		// Return the standing best so callers can show what to beat
		best, err := s.storage.GetScore(ctx, player)
		if err != nil {
			return nil, false, err
		}
		return best, false, nil
	}
	return entry, true, nil
}

// Top returns the best entries in descending score order. A non-positive
// limit falls back to the default; requests above the cap are clamped.
func (s *Service) Top(ctx context.Context, limit int) ([]*model.ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.storage.TopScores(ctx, limit)
}

// PlayerBest returns a player's best recorded entry
func (s *Service) PlayerBest(ctx context.Context, player string) (*model.ScoreEntry, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return nil, model.ErrInvalidPlayerName
	}
	return s.storage.GetScore(ctx, player)
}

// PlayerRank returns a player's 1-based position on the leaderboard
func (s *Service) PlayerRank(ctx context.Context, player string) (int, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return 0, model.ErrInvalidPlayerName
	}
	return s.storage.PlayerRank(ctx, player)
}
