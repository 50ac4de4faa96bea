package model

import "time"

// ScoreEntry is a player's best recorded result. The leaderboard keeps one
// entry per player; a submission only replaces it when the score improves.
type ScoreEntry struct {
	Player      string    `json:"player"`
	Score       int       `json:"score"`
	Level       int       `json:"level"`
	Lines       int       `json:"lines"`
	SubmittedAt time.Time `json:"submitted_at"`
}
