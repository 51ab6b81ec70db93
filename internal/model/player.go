package model

import "time"

// PlayerID uniquely identifies a player
type PlayerID string

// Player is a participant in a specific game. Players are not accounts:
// usernames are display names only and uniqueness is not enforced.
type Player struct {
	ID        PlayerID  `json:"id"`
	GameID    GameID    `json:"game_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
