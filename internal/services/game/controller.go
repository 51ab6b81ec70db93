// Package game orchestrates game sessions: creating games, joining players,
// and submitting and replaying guesses.
package game

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ch00kz/adieu-backend/internal/dependencies/clock"
	"github.com/ch00kz/adieu-backend/internal/dependencies/random"
	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/services/dictionary"
	"github.com/ch00kz/adieu-backend/internal/services/evaluator"
	"github.com/ch00kz/adieu-backend/internal/services/scoring"
	"github.com/ch00kz/adieu-backend/internal/storage"
)

const (
	// RandomWordLength is the solution length used for random games
	RandomWordLength = 5

	idLength   = 12
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller ties the dictionary, evaluator and storage together into the
// game session operations
type Controller struct {
	storage        storage.Storage
	dictionary     *dictionary.Service
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	dictionary *dictionary.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		dictionary:     dictionary,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// CreateGame creates a game bound to a secret word. An empty word requests a
// random dictionary word of RandomWordLength. Custom words are normalized to
// uppercase for storage and must be letters only.
func (c *Controller) CreateGame(ctx context.Context, word string) (*model.Game, error) {
	if word == "" {
		randomWord, ok := c.dictionary.RandomWord(RandomWordLength)
		if !ok {
			return nil, model.ErrNoWordsForLength
		}
		word = randomWord
	}

	if !isLettersOnly(word) {
		return nil, model.ErrInvalidWord
	}

	game := &model.Game{
		ID:        model.GameID(c.random.String(idLength, idAlphabet)),
		Word:      strings.ToUpper(word),
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("word_length", game.WordLength()),
	)

	return game, nil
}

// JoinGame adds a player to a game and returns the new player together with
// the solution's length, which clients need to render an empty board.
// Returns model.ErrGameNotFound if the game does not exist.
func (c *Controller) JoinGame(ctx context.Context, gameID model.GameID, username string) (*model.Player, int, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, 0, err
	}

	player := &model.Player{
		ID:        model.PlayerID(c.random.String(idLength, idAlphabet)),
		GameID:    gameID,
		Username:  username,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, 0, err
	}

	c.logger.Info("player joined",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(player.ID)),
		slog.String("username", username),
	)

	return player, game.WordLength(), nil
}

// SubmitGuess validates, evaluates and persists one guess for a player,
// returning the per-letter result. The guess must be a dictionary word of the
// same length as the solution; rejected guesses create no record. The guess
// is only persisted after evaluation succeeds, so the stored win flag always
// matches what evaluation of the stored text would produce.
func (c *Controller) SubmitGuess(ctx context.Context, playerID model.PlayerID, text string) (model.PlayerGuess, error) {
	solution, err := c.getSolution(ctx, playerID)
	if err != nil {
		return model.PlayerGuess{}, err
	}

	if len(text) != len(solution) || !c.dictionary.IsValidWord(text) {
		return model.PlayerGuess{}, model.ErrInvalidGuess
	}

	result := evaluator.Evaluate(text, solution)

	guess := &model.Guess{
		ID:             model.GuessID(c.random.String(idLength, idAlphabet)),
		PlayerID:       playerID,
		Text:           text,
		IsWinningGuess: result.IsWinningGuess,
		CreatedAt:      c.clock.Now(),
	}

	if err := c.storage.SaveGuess(ctx, guess); err != nil {
		c.logger.Error("failed to save guess",
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
		return model.PlayerGuess{}, err
	}

	c.logger.Info("guess submitted",
		slog.String("player_id", string(playerID)),
		slog.Bool("is_winning", result.IsWinningGuess),
	)

	return result, nil
}

// ListGuesses returns a player's evaluated guesses in submission order.
// Every guess is re-evaluated from its stored text against the solution;
// the persisted win flag is never trusted on read.
func (c *Controller) ListGuesses(ctx context.Context, playerID model.PlayerID) ([]model.PlayerGuess, error) {
	solution, err := c.getSolution(ctx, playerID)
	if err != nil {
		return nil, err
	}

	guesses, err := c.storage.GetGuessesForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	results := make([]model.PlayerGuess, len(guesses))
	for i, guess := range guesses {
		results[i] = evaluator.Evaluate(guess.Text, solution)
	}
	return results, nil
}

// GetScores returns the ranked leaderboard for a game
func (c *Controller) GetScores(ctx context.Context, gameID model.GameID) ([]model.PlayerScore, error) {
	return c.scoringService.GetPlayerScores(ctx, gameID)
}

// getSolution resolves a player's game solution. Returns the corresponding
// NotFound error if the player or its game is missing.
func (c *Controller) getSolution(ctx context.Context, playerID model.PlayerID) (string, error) {
	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return "", err
	}

	game, err := c.storage.GetGame(ctx, player.GameID)
	if err != nil {
		return "", err
	}

	return game.Word, nil
}

func isLettersOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, word string) (*model.Game, error)
	JoinGame(ctx context.Context, gameID model.GameID, username string) (*model.Player, int, error)
	SubmitGuess(ctx context.Context, playerID model.PlayerID, text string) (model.PlayerGuess, error)
	ListGuesses(ctx context.Context, playerID model.PlayerID) ([]model.PlayerGuess, error)
	GetScores(ctx context.Context, gameID model.GameID) ([]model.PlayerScore, error)
}

var _ ControllerInterface = (*Controller)(nil)
