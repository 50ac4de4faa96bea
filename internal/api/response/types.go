package response

import (
	"time"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// PieceState is the wire form of a falling piece
type PieceState struct {
	Type  string  `json:"type"`
	Shape [][]int `json:"shape"`
	X     int     `json:"x"`
	Y     int     `json:"y"`
}

// GameState is the read-only snapshot exposed to renderer and input clients
type GameState struct {
	ID             string      `json:"id"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
	Board          [][]int     `json:"board"`
	Current        *PieceState `json:"current,omitempty"`
	Next           *PieceState `json:"next,omitempty"`
	Score          int         `json:"score"`
	Level          int         `json:"level"`
	Lines          int         `json:"lines"`
	DropIntervalMs int64       `json:"drop_interval_ms"`
	Over           bool        `json:"over"`
	Paused         bool        `json:"paused"`
}

// GameEvent is the wire form of a gameplay event
type GameEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// GameResponse pairs a state snapshot with the events the triggering
// operation produced (empty for rejected moves)
type GameResponse struct {
	State  GameState   `json:"state"`
	Events []GameEvent `json:"events"`
}

// ScoreEntry is the wire form of a leaderboard entry
type ScoreEntry struct {
	Rank        int       `json:"rank,omitempty"`
	Player      string    `json:"player"`
	Score       int       `json:"score"`
	Level       int       `json:"level"`
	Lines       int       `json:"lines"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// LeaderboardResponse is the response body for leaderboard queries
type LeaderboardResponse struct {
	Entries []ScoreEntry `json:"entries"`
}

// SubmitScoreResponse is the response body for score submissions
type SubmitScoreResponse struct {
	Best     ScoreEntry `json:"best"`
	Improved bool       `json:"improved"`
}

// PieceStateFromModel converts a piece to its wire form
func PieceStateFromModel(p *model.Piece) *PieceState {
	if p == nil {
		return nil
	}
	return &PieceState{
		Type:  p.Type.String(),
		Shape: p.Shape,
		X:     p.X,
		Y:     p.Y,
	}
}

// GameStateFromModel converts a game snapshot to its wire form
func GameStateFromModel(g *model.Game) GameState {
	return GameState{
		ID:             string(g.ID),
		Width:          g.Board.Width,
		Height:         g.Board.Height,
		Board:          g.Board.Cells,
		Current:        PieceStateFromModel(g.Current),
		Next:           PieceStateFromModel(g.Next),
		Score:          g.Score,
		Level:          g.Level,
		Lines:          g.Lines,
		DropIntervalMs: g.DropInterval.Milliseconds(),
		Over:           g.Over,
		Paused:         g.Paused,
	}
}

// GameEventsFromModel converts events to their wire form
func GameEventsFromModel(events []model.Event) []GameEvent {
	out := make([]GameEvent, 0, len(events))
	for _, e := range events {
		out = append(out, GameEvent{
			Type:      string(e.Type),
			Timestamp: e.Timestamp,
			Payload:   e.Payload,
		})
	}
	return out
}

// ScoreEntryFromModel converts a score entry to its wire form
func ScoreEntryFromModel(e *model.ScoreEntry, rank int) ScoreEntry {
	return ScoreEntry{
		Rank:        rank,
		Player:      e.Player,
		Score:       e.Score,
		Level:       e.Level,
		Lines:       e.Lines,
		SubmittedAt: e.SubmittedAt,
	}
}
