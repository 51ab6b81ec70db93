package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is one instance of a secret word plus all players who joined it.
// Games are immutable after creation.
type Game struct {
	ID GameID `json:"id"`

	// Word is the secret solution, stored uppercase.
	// Comparison against guesses is always case-insensitive.
	Word string `json:"word"`

	CreatedAt time.Time `json:"created_at"`
}

// WordLength returns the length of the solution word, which is the board
// width a client renders for this game.
func (g *Game) WordLength() int {
	return len(g.Word)
}
