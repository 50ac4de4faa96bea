package storage

import (
	"context"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game session operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Leaderboard operations. SubmitScore keeps the best entry per player:
	// it reports true when the submission replaced (or created) the stored
	// entry, false when an equal or better score already existed.
	SubmitScore(ctx context.Context, entry *model.ScoreEntry) (bool, error)
	GetScore(ctx context.Context, player string) (*model.ScoreEntry, error)
	TopScores(ctx context.Context, limit int) ([]*model.ScoreEntry, error)
	PlayerRank(ctx context.Context, player string) (int, error)
}
