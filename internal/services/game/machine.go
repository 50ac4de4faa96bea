package game

import (
	"log/slog"

	"github.com/jackiesafari/dam-attack-sub002/internal/dependencies/clock"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/board"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/piece"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/scoring"
)

// Machine is the gameplay state machine. It sequences spawn, movement,
// locking, line clearing, scoring, level progression and game over on a
// single game value. It is synchronous and takes no locks: callers must
// serialize mutating calls per game (the controller funnels them through a
// per-game lock).
//
// Collisions, rejected rotations and post-game-over inputs are normal
// outcomes, not errors: the affected operation is a no-op and produces no
// events.
type Machine struct {
	cfg     Config
	pieces  *piece.Service
	boards  *board.Service
	scoring *scoring.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// NewMachine creates a new gameplay state machine
func NewMachine(
	cfg Config,
	pieces *piece.Service,
	boards *board.Service,
	scoring *scoring.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Machine {
	return &Machine{
		cfg:     cfg,
		pieces:  pieces,
		boards:  boards,
		scoring: scoring,
		clock:   clock,
		logger:  logger,
	}
}

// Config returns the machine's tuning constants
func (m *Machine) Config() Config {
	return m.cfg
}

// NewGame creates a fresh game with an empty board and the first piece
// spawned
func (m *Machine) NewGame(id model.GameID) (*model.Game, []model.Event) {
	now := m.clock.Now()
	g := &model.Game{
		ID:           id,
		Board:        model.NewBoard(m.cfg.BoardWidth, m.cfg.BoardHeight),
		Level:        1,
		DropInterval: m.cfg.DropIntervalForLevel(1),
		LastDrop:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	events := []model.Event{m.event(g, model.EventGameCreated, nil)}
	events = append(events, m.spawn(g)...)
	return g, events
}

// Reset reinitializes board, score, level, lines and pieces to their
// defaults and clears the game-over and pause flags
func (m *Machine) Reset(g *model.Game) []model.Event {
	now := m.clock.Now()
	g.Board = model.NewBoard(m.cfg.BoardWidth, m.cfg.BoardHeight)
	g.Current = nil
	g.Next = nil
	g.Score = 0
	g.Level = 1
	g.Lines = 0
	g.DropInterval = m.cfg.DropIntervalForLevel(1)
	g.LastDrop = now
	g.Over = false
	g.Paused = false
	g.UpdatedAt = now

	events := []model.Event{m.event(g, model.EventGameReset, nil)}
	return append(events, m.spawn(g)...)
}

// Apply handles one discrete player command. Once the game is over every
// command is a no-op. While paused, only the pause toggle is accepted.
func (m *Machine) Apply(g *model.Game, cmd model.Command) []model.Event {
	if g.Over {
		return nil
	}

	if cmd == model.CommandPause {
		return m.togglePause(g)
	}

	if g.Paused || g.Current == nil {
		return nil
	}

	switch cmd {
	case model.CommandMoveLeft:
		return m.shift(g, -1)
	case model.CommandMoveRight:
		return m.shift(g, 1)
	case model.CommandSoftDrop:
		events, _ := m.stepDown(g)
		return events
	case model.CommandRotate:
		return m.rotate(g)
	case model.CommandHardDrop:
		return m.hardDrop(g)
	}
	return nil
}

// Advance runs the automatic-drop clock: every elapsed drop interval since
// the last registered drop advances the current piece one row, locking it
// when it cannot descend. Paused and finished games do not advance.
func (m *Machine) Advance(g *model.Game) []model.Event {
	if g.Over || g.Paused || g.Current == nil {
		return nil
	}

	now := m.clock.Now()
	var events []model.Event
	for now.Sub(g.LastDrop) >= g.DropInterval {
		next := g.LastDrop.Add(g.DropInterval)
		stepEvents, locked := m.stepDown(g)
		events = append(events, stepEvents...)
		if locked || g.Over {
			break
		}
		// stepDown stamps LastDrop with the wall clock; the catch-up loop
		// accounts in whole intervals instead
		g.LastDrop = next
	}
	return events
}

// shift attempts a horizontal move; collisions reject it with no state change
func (m *Machine) shift(g *model.Game, dx int) []model.Event {
	candidate := m.pieces.Move(g.Current, dx, 0)
	if m.boards.Collides(candidate, g.Board) {
		return nil
	}
	g.Current = candidate
	g.UpdatedAt = m.clock.Now()
	return []model.Event{m.event(g, model.EventPieceMoved, model.PieceMovedPayload{
		DX: dx,
		X:  candidate.X,
		Y:  candidate.Y,
	})}
}

// stepDown attempts a one-row descent. A collision below means the piece
// has landed, which triggers the lock sequence; the second return value
// reports whether that happened.
func (m *Machine) stepDown(g *model.Game) ([]model.Event, bool) {
	candidate := m.pieces.Move(g.Current, 0, 1)
	if m.boards.Collides(candidate, g.Board) {
		return m.lock(g), true
	}
	g.Current = candidate
	g.LastDrop = m.clock.Now()
	g.UpdatedAt = g.LastDrop
	return []model.Event{m.event(g, model.EventPieceMoved, model.PieceMovedPayload{
		DY: 1,
		X:  candidate.X,
		Y:  candidate.Y,
	})}, false
}

// rotate attempts a clockwise rotation, falling back to the wall-kick
// offsets when the naive rotation collides
func (m *Machine) rotate(g *model.Game) []model.Event {
	rotated := m.pieces.Rotate(g.Current)
	kicked := false
	if m.boards.Collides(rotated, g.Board) {
		rotated = m.pieces.WallKick(rotated, g.Board)
		if rotated == nil {
			return nil
		}
		kicked = true
	}
	g.Current = rotated
	g.UpdatedAt = m.clock.Now()
	return []model.Event{m.event(g, model.EventPieceRotated, model.PieceRotatedPayload{
		X:      rotated.X,
		Y:      rotated.Y,
		Kicked: kicked,
	})}
}

// hardDrop moves the piece straight to its resting position, awards the
// drop-distance bonus, and locks immediately
func (m *Machine) hardDrop(g *model.Game) []model.Event {
	restY := m.boards.DropPosition(g.Current, g.Board)
	distance := restY - g.Current.Y
	if distance > 0 {
		g.Current = m.pieces.Move(g.Current, 0, restY-g.Current.Y)
		g.Score += m.scoring.HardDropPoints(distance)
	}

	var events []model.Event
	if distance > 0 {
		events = append(events, m.event(g, model.EventPieceMoved, model.PieceMovedPayload{
			DY: distance,
			X:  g.Current.X,
			Y:  g.Current.Y,
		}))
	}
	return append(events, m.lock(g)...)
}

// lock writes the current piece into the board, clears full lines, applies
// scoring and level progression, and spawns the next piece
func (m *Machine) lock(g *model.Game) []model.Event {
	locked := g.Current
	events := []model.Event{m.event(g, model.EventPieceLocked, model.PieceLockedPayload{
		Piece: locked.Type,
		Cells: locked.Cells(),
	})}

	g.Board = m.boards.Merge(locked, g.Board)
	g.Current = nil

	result := m.boards.ClearLines(g.Board)
	g.Board = result.Board

	if result.Count > 0 {
		points := m.scoring.LineClearPoints(result.Count, g.Level)
		g.Score += points
		g.Lines += result.Count
		events = append(events, m.event(g, model.EventLinesCleared, model.LinesClearedPayload{
			Count:  result.Count,
			Rows:   result.Rows,
			Tetris: result.Count == TetrisLines,
			Points: points,
		}))

		if newLevel := m.cfg.LevelForLines(g.Lines); newLevel > g.Level {
			g.Level = newLevel
			g.DropInterval = m.cfg.DropIntervalForLevel(newLevel)
			events = append(events, m.event(g, model.EventLevelUp, model.LevelUpPayload{
				Level:          newLevel,
				DropInterval:   g.DropInterval,
				DropIntervalMs: g.DropInterval.Milliseconds(),
			}))
		}
	}

	g.UpdatedAt = m.clock.Now()
	return append(events, m.spawn(g)...)
}

// spawn installs the queued next piece at top-center, drawing a new next
// piece. A spawn-position collision means the stack has no room: the game
// ends with the board unchanged and no piece installed.
func (m *Machine) spawn(g *model.Game) []model.Event {
	p := g.Next
	if p == nil {
		p = m.pieces.CreateRandom(g.Board.Width)
	}

	if m.boards.Collides(p, g.Board) {
		g.Over = true
		g.Current = nil
		g.UpdatedAt = m.clock.Now()
		m.logger.Info("game over",
			slog.String("game_id", string(g.ID)),
			slog.Int("score", g.Score),
			slog.Int("level", g.Level),
			slog.Int("lines", g.Lines),
		)
		return []model.Event{m.event(g, model.EventGameOver, model.GameOverPayload{
			Result: g.Result(),
		})}
	}

	g.Current = p
	g.Next = m.pieces.CreateRandom(g.Board.Width)
	g.LastDrop = m.clock.Now()
	g.UpdatedAt = g.LastDrop
	return []model.Event{m.event(g, model.EventPieceSpawned, model.PieceSpawnedPayload{
		Piece: p.Type,
		X:     p.X,
		Y:     p.Y,
	})}
}

// togglePause flips the pause flag. Resuming restarts the drop clock from
// now so time spent paused does not count toward the next automatic drop.
func (m *Machine) togglePause(g *model.Game) []model.Event {
	g.Paused = !g.Paused
	now := m.clock.Now()
	if !g.Paused {
		g.LastDrop = now
	}
	g.UpdatedAt = now
	return []model.Event{m.event(g, model.EventPauseToggled, model.PauseToggledPayload{
		Paused: g.Paused,
	})}
}

func (m *Machine) event(g *model.Game, t model.EventType, payload any) model.Event {
	return model.Event{
		Type:      t,
		Timestamp: m.clock.Now(),
		GameID:    g.ID,
		Payload:   payload,
	}
}
