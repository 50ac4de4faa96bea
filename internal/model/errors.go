package model

import "errors"

// Common errors used across the application. Collisions, rejected rotations
// and post-game-over inputs are not errors: the state machine reports those
// as no-op outcomes. Errors here cover lookups, invalid requests, and
// storage failures surfaced to the API layer.
var (
	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrInvalidCommand = errors.New("invalid command")
	ErrInvalidBoard   = errors.New("invalid board dimensions")

	// Leaderboard errors
	ErrPlayerNotFound    = errors.New("player has no recorded score")
	ErrInvalidPlayerName = errors.New("invalid player name")
	ErrInvalidScore      = errors.New("invalid score submission")
)
