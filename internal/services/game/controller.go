package game

import (
	"context"
	"log/slog"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/random"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/board"
	"github.com/jackiesafari/dam-attack-sub002/internal/storage"
)

const (
	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller orchestrates game sessions: it loads games from storage, runs
// the state machine, and persists the result. All mutating operations on a
// game are serialized through a per-game lock, preserving the machine's
// single-writer contract.
type Controller struct {
	storage storage.Storage
	machine *Machine
	boards  *board.Service
	random  random.Random
	logger  *slog.Logger
	locks   *keyedLocks
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	machine *Machine,
	boards *board.Service,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		machine: machine,
		boards:  boards,
		random:  random,
		logger:  logger,
		locks:   newKeyedLocks(),
	}
}

// CreateGame starts a new game session and persists it
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, []model.Event, error) {
	id := model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
	g, events := c.machine.NewGame(id)

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(id)),
		slog.Int("board_width", g.Board.Width),
		slog.Int("board_height", g.Board.Height),
	)

	return g.Snapshot(), events, nil
}

// GetGame retrieves a read-only snapshot of a game
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.Snapshot(), nil
}

// ApplyCommand handles one player input. Rejected moves (collisions,
// inputs while paused, inputs after game over) return the unchanged state
// with no events; they are not errors.
func (c *Controller) ApplyCommand(ctx context.Context, id model.GameID, cmd model.Command) (*model.Game, []model.Event, error) {
	if !cmd.Valid() {
		return nil, nil, model.ErrInvalidCommand
	}
	return c.mutate(ctx, id, func(g *model.Game) []model.Event {
		return c.machine.Apply(g, cmd)
	})
}

// Tick advances the automatic-drop clock for a game
func (c *Controller) Tick(ctx context.Context, id model.GameID) (*model.Game, []model.Event, error) {
	return c.mutate(ctx, id, c.machine.Advance)
}

// ResetGame reinitializes a game to its defaults
func (c *Controller) ResetGame(ctx context.Context, id model.GameID) (*model.Game, []model.Event, error) {
	return c.mutate(ctx, id, c.machine.Reset)
}

// DeleteGame removes a game session
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	if err := c.storage.DeleteGame(ctx, id); err != nil {
		return err
	}
	c.locks.forget(id)
	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}

// mutate loads a game under its lock, applies the state-machine step, and
// persists the result. A game whose board fails validation is reset to a
// known-good default before the step runs.
func (c *Controller) mutate(ctx context.Context, id model.GameID, step func(*model.Game) []model.Event) (*model.Game, []model.Event, error) {
	lock := c.locks.get(id)
	lock.Lock()
	defer lock.Unlock()

	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var events []model.Event
	if err := c.boards.Validate(g.Board); err != nil {
		c.logger.Warn("corrupted board detected, resetting game",
			slog.String("game_id", string(id)),
		)
		events = append(events, c.machine.Reset(g)...)
	}

	events = append(events, step(g)...)

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	return g.Snapshot(), events, nil
}

// ControllerInterface is the controller surface used by the API layer
type ControllerInterface interface {
	CreateGame(ctx context.Context) (*model.Game, []model.Event, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ApplyCommand(ctx context.Context, id model.GameID, cmd model.Command) (*model.Game, []model.Event, error)
	Tick(ctx context.Context, id model.GameID) (*model.Game, []model.Event, error)
	ResetGame(ctx context.Context, id model.GameID) (*model.Game, []model.Event, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
