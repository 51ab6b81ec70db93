// Package request defines the JSON request bodies accepted by the API.
package request

// CreateGameRequest creates a new game. Leave Word empty for a random
// 5-letter solution; a custom word is normalized to uppercase server-side.
type CreateGameRequest struct {
	Word string `json:"word,omitempty"`
}

// JoinGameRequest joins an existing game as a named player
type JoinGameRequest struct {
	Username string `json:"username"`
}

// SubmitGuessRequest submits one guess for a player
type SubmitGuessRequest struct {
	Guess string `json:"guess"`
}
