package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// Game is the full state of one play session. It is owned by the game state
// machine: external components read snapshots and request mutations through
// the game controller, never by writing fields directly.
//
// Invariants: Score >= 0, Level >= 1, Lines >= 0, board dimensions fixed.
// Once Over is set no further piece operations take effect.
type Game struct {
	ID    GameID `json:"id"`
	Board *Board `json:"board"`

	Current *Piece `json:"current"` // nil until first spawn, and after game over
	Next    *Piece `json:"next"`

	Score int `json:"score"`
	Level int `json:"level"`
	Lines int `json:"lines"`

	// DropInterval is the logical delay between automatic drops; it shrinks
	// as the level rises. LastDrop is the injected-clock time of the last
	// registered vertical advance.
	DropInterval time.Duration `json:"drop_interval"`
	LastDrop     time.Time     `json:"last_drop"`

	Over   bool `json:"over"`
	Paused bool `json:"paused"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a deep copy of the game state. Reading a snapshot twice
// without an intervening mutation yields equal values.
func (g *Game) Snapshot() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Board = g.Board.Clone()
	out.Current = g.Current.Clone()
	out.Next = g.Next.Clone()
	return &out
}

// Result is the final triple handed off when a game ends
type Result struct {
	Score int `json:"score"`
	Level int `json:"level"`
	Lines int `json:"lines"`
}

// Result returns the game's score/level/lines triple
func (g *Game) Result() Result {
	return Result{Score: g.Score, Level: g.Level, Lines: g.Lines}
}

// Command is a discrete player input accepted by the state machine
type Command string

const (
	CommandMoveLeft  Command = "move_left"
	CommandMoveRight Command = "move_right"
	CommandSoftDrop  Command = "soft_drop"
	CommandRotate    Command = "rotate"
	CommandHardDrop  Command = "hard_drop"
	CommandPause     Command = "pause" // toggles the pause flag
)

// Valid returns true if the command is one the state machine accepts
func (c Command) Valid() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandSoftDrop,
		CommandRotate, CommandHardDrop, CommandPause:
		return true
	}
	return false
}
