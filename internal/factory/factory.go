package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jackiesafari/dam-attack-sub002/internal/api/sse"
	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/clock"
	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/random"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/board"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/game"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/leaderboard"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/piece"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/scoring"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage/memory"
	redisstorage "github.com/jackiesafari/dam-attack-sub002/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService       *board.Service
	PieceService       *piece.Service
	ScoringService     *scoring.Service
	Machine            *game.Machine
	GameController     *game.Controller
	LeaderboardService *leaderboard.Service
	HubManager         *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// GameConfig holds gameplay tuning (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	gameCfg := cfg.GameConfig
	if gameCfg.BoardWidth == 0 {
		gameCfg = game.DefaultConfig()
	}

	return NewWithDependencies(store, gameCfg, clock.New(), random.New(), logger), nil
}

// NewWithDependencies creates an App with the given dependencies (useful for testing)
func NewWithDependencies(store storage.Storage, gameCfg game.Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	boardService := board.New(logger)
	pieceService := piece.New(rnd, boardService)
	scoringService := scoring.New()
	machine := game.NewMachine(gameCfg, pieceService, boardService, scoringService, clk, logger)
	gameController := game.NewController(store, machine, boardService, rnd, logger)
	leaderboardService := leaderboard.New(store, clk, logger)
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		BoardService:       boardService,
		PieceService:       pieceService,
		ScoringService:     scoringService,
		Machine:            machine,
		GameController:     gameController,
		LeaderboardService: leaderboardService,
		HubManager:         hubManager,
	}
}
