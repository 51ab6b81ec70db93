// Package response defines the JSON response bodies produced by the API and
// their conversions from model types.
package response

import (
	"github.com/ch00kz/adieu-backend/internal/model"
)

// CreateGameResponse is the response for game creation
type CreateGameResponse struct {
	GameID string `json:"gameId"`
}

// JoinGameResponse is the response for joining a game. Length is the
// solution's character count, i.e. the board width to render.
type JoinGameResponse struct {
	PlayerID string `json:"playerId"`
	Length   int    `json:"length"`
}

// Letter is one evaluated character of a guess. Status is serialized
// verbatim as one of Correct, InTheWord, Wrong or Unsubmitted.
type Letter struct {
	Status model.LetterState `json:"status"`
	Letter string            `json:"letter"`
}

// PlayerGuess is one fully evaluated guess
type PlayerGuess struct {
	Letters        []Letter `json:"letters"`
	IsWinningGuess bool     `json:"isWinningGuess"`
}

// PlayerGuessFromModel converts a model.PlayerGuess
func PlayerGuessFromModel(pg model.PlayerGuess) PlayerGuess {
	letters := make([]Letter, len(pg.Letters))
	for i, l := range pg.Letters {
		letters[i] = Letter{
			Status: l.Status,
			Letter: string(l.Char),
		}
	}
	return PlayerGuess{
		Letters:        letters,
		IsWinningGuess: pg.IsWinningGuess,
	}
}

// SubmitGuessResponse is the response for a submitted guess
type SubmitGuessResponse struct {
	Guess PlayerGuess `json:"guess"`
}

// ListGuessesResponse is a player's guess history in submission order
type ListGuessesResponse struct {
	Guesses []PlayerGuess `json:"guesses"`
}

// PlayerScore is one leaderboard row
type PlayerScore struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
	Guesses  int    `json:"guesses"`
	HasWon   bool   `json:"hasWon"`
}

// PlayerScoreFromModel converts a model.PlayerScore
func PlayerScoreFromModel(s model.PlayerScore) PlayerScore {
	return PlayerScore{
		PlayerID: string(s.PlayerID),
		Username: s.Username,
		Guesses:  s.GuessCount,
		HasWon:   s.HasWon,
	}
}

// GetScoresResponse is the ranked leaderboard for a game
type GetScoresResponse struct {
	PlayerScores []PlayerScore `json:"playerScores"`
}
