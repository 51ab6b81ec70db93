package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateGameResult:
		fmt.Printf("Game: %s\n", v.GameID)
	case JoinGameResult:
		fmt.Printf("Player: %s\n", v.PlayerID)
		fmt.Printf("Word length: %d\n", v.Length)
	case GuessResult:
		o.printGuess(v.Guess)
	case GuessesResult:
		for i, g := range v.Guesses {
			fmt.Printf("%d. ", i+1)
			o.printGuess(g)
		}
	case ScoresResult:
		o.printScores(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// printGuess renders one evaluated guess as colored-tile shorthand:
// an uppercase letter for Correct, lowercase for InTheWord, and a dot
// for Wrong.
func (o *Output) printGuess(g Guess) {
	for _, l := range g.Letters {
		switch l.Status {
		case "Correct":
			fmt.Print(strings.ToUpper(l.Letter))
		case "InTheWord":
			fmt.Print(strings.ToLower(l.Letter))
		default:
			fmt.Print(".")
		}
	}
	if g.IsWinningGuess {
		fmt.Print("  (winner!)")
	}
	fmt.Println()
}

func (o *Output) printScores(s ScoresResult) {
	fmt.Printf("Players (%d):\n", len(s.PlayerScores))
	for rank, score := range s.PlayerScores {
		wonStr := ""
		if score.HasWon {
			wonStr = " [won]"
		}
		fmt.Printf("  %d. %s - %d guesses%s\n", rank+1, score.Username, score.Guesses, wonStr)
	}
}

// Response types (match the API)

// CreateGameResult is the create-game response
type CreateGameResult struct {
	GameID string `json:"gameId"`
}

// JoinGameResult is the join-game response
type JoinGameResult struct {
	PlayerID string `json:"playerId"`
	Length   int    `json:"length"`
}

// Letter is one evaluated character
type Letter struct {
	Status string `json:"status"`
	Letter string `json:"letter"`
}

// Guess is one evaluated guess
type Guess struct {
	Letters        []Letter `json:"letters"`
	IsWinningGuess bool     `json:"isWinningGuess"`
}

// GuessResult is the submit-guess response
type GuessResult struct {
	Guess Guess `json:"guess"`
}

// GuessesResult is the guess-history response
type GuessesResult struct {
	Guesses []Guess `json:"guesses"`
}

// PlayerScore is one leaderboard row
type PlayerScore struct {
	PlayerID string `json:"playerId"`
	Username string `json:"username"`
	Guesses  int    `json:"guesses"`
	HasWon   bool   `json:"hasWon"`
}

// ScoresResult is the leaderboard response
type ScoresResult struct {
	PlayerScores []PlayerScore `json:"playerScores"`
}

// HealthResult is the health response
type HealthResult struct {
	Status string `json:"status"`
}
