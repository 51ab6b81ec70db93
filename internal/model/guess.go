package model

import "time"

// GuessID uniquely identifies a guess
type GuessID string

// Guess is one submitted word attempt by a player. Guesses form an
// append-only log: they are never edited or deleted, and CreatedAt orders
// them within a player's history.
type Guess struct {
	ID       GuessID  `json:"id"`
	PlayerID PlayerID `json:"player_id"`
	Text     string   `json:"text"`

	// IsWinningGuess is the evaluation result computed at submission time.
	// It is persisted for audit but read paths recompute it from Text.
	IsWinningGuess bool `json:"is_winning_guess"`

	CreatedAt time.Time `json:"created_at"`
}

// PlayerGuess is the evaluated form of one guess: the per-letter
// classification against the game's solution plus the win flag. It is a
// derived view, recomputed from the stored guess text on every read.
type PlayerGuess struct {
	Letters        []Letter
	IsWinningGuess bool
}

// PlayerScore is one row of a game's leaderboard. It is an aggregation over
// the guess log, never stored.
type PlayerScore struct {
	PlayerID   PlayerID
	Username   string
	GuessCount int
	HasWon     bool
}
