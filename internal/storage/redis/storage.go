package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Game
// sessions are JSON values with a TTL; the leaderboard is a sorted set of
// player names keyed by best score, with the full entry stored alongside.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}

// Leaderboard operations

func (s *Storage) SubmitScore(ctx context.Context, entry *model.ScoreEntry) (bool, error) {
	current, err := s.client.ZScore(ctx, leaderboardKey(), entry.Player).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	if err == nil && int(current) >= entry.Score {
		return false, nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return false, err
	}

	// Pipeline the ranking update and the entry body together
	pipe := s.client.Pipeline()
	pipe.ZAdd(ctx, leaderboardKey(), redis.Z{
		Score:  float64(entry.Score),
		Member: entry.Player,
	})
	pipe.Set(ctx, scoreKey(entry.Player), data, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) GetScore(ctx context.Context, player string) (*model.ScoreEntry, error) {
	data, err := s.client.Get(ctx, scoreKey(player)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var entry model.ScoreEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.ScoreEntry, error) {
	if limit <= 0 {
		return []*model.ScoreEntry{}, nil
	}

	ranked, err := s.client.ZRevRangeWithScores(ctx, leaderboardKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return []*model.ScoreEntry{}, nil
	}

	keys := make([]string, len(ranked))
	for i, z := range ranked {
		keys[i] = scoreKey(z.Member.(string))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.ScoreEntry, 0, len(ranked))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Ranking member without a body: fall back to what the set knows
			entries = append(entries, &model.ScoreEntry{
				Player: ranked[i].Member.(string),
				Score:  int(ranked[i].Score),
			})
			continue
		}
		var entry model.ScoreEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

func (s *Storage) PlayerRank(ctx context.Context, player string) (int, error) {
	rank, err := s.client.ZRevRank(ctx, leaderboardKey(), player).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrPlayerNotFound
		}
		return 0, err
	}
	return int(rank) + 1, nil
}
