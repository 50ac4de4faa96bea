package redis

import (
	"fmt"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "damattack"

// gameKey returns the Redis key for a game session
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// leaderboardKey returns the Redis key for the leaderboard sorted set
// (member = player name, score = best score)
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

// scoreKey returns the Redis key for a player's best score entry
func scoreKey(player string) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, player)
}
