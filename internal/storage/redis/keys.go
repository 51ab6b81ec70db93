package redis

import (
	"fmt"

	"github.com/ch00kz/adieu-backend/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "adieu"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersForGameKey returns the Redis key for the LIST of player ids in a
// game, in join order
func playersForGameKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:players_for_game:%s", keyPrefix, gameID)
}

// guessesForPlayerKey returns the Redis key for the LIST of a player's
// guesses, in submission order
func guessesForPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:guesses:%s", keyPrefix, playerID)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
