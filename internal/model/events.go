package model

import "time"

// EventType identifies the type of gameplay event
type EventType string

const (
	EventGameCreated  EventType = "game_created"
	EventGameReset    EventType = "game_reset"
	EventPieceSpawned EventType = "piece_spawned"
	EventPieceMoved   EventType = "piece_moved"
	EventPieceRotated EventType = "piece_rotated"
	EventPieceLocked  EventType = "piece_locked"
	EventLinesCleared EventType = "lines_cleared"
	EventLevelUp      EventType = "level_up"
	EventGameOver     EventType = "game_over"
	EventPauseToggled EventType = "pause_toggled"
)

// Event describes one accepted state change, for renderer and effect
// consumers. Rejected moves produce no event.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    GameID    `json:"game_id"`
	Payload   any       `json:"payload,omitempty"`
}

// PieceSpawnedPayload contains data for piece spawned events
type PieceSpawnedPayload struct {
	Piece PieceType `json:"piece"`
	X     int       `json:"x"`
	Y     int       `json:"y"`
}

// PieceMovedPayload contains data for piece moved events
type PieceMovedPayload struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// PieceRotatedPayload contains data for piece rotated events. Kicked is
// true when the rotation only fit after a wall-kick offset.
type PieceRotatedPayload struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Kicked bool `json:"kicked"`
}

// PieceLockedPayload carries the placement coordinates, for impact effects
type PieceLockedPayload struct {
	Piece PieceType  `json:"piece"`
	Cells []Position `json:"cells"`
}

// LinesClearedPayload carries the cleared row indices in pre-clear
// coordinates, plus the tetris flag, for celebration effects
type LinesClearedPayload struct {
	Count  int   `json:"count"`
	Rows   []int `json:"rows"`
	Tetris bool  `json:"tetris"`
	Points int   `json:"points"`
}

// LevelUpPayload contains data for level up events
type LevelUpPayload struct {
	Level          int           `json:"level"`
	DropInterval   time.Duration `json:"drop_interval"`
	DropIntervalMs int64         `json:"drop_interval_ms"`
}

// GameOverPayload carries the final triple for the game-over screen
type GameOverPayload struct {
	Result Result `json:"result"`
}

// PauseToggledPayload contains data for pause toggled events
type PauseToggledPayload struct {
	Paused bool `json:"paused"`
}
