package storage

import (
	"context"

	"github.com/ch00kz/adieu-backend/internal/model"
)

// Storage defines the interface for data persistence. Games, players and
// guesses are immutable facts: implementations only ever insert them, and
// each write is a single atomic operation.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// GetPlayersForGame returns every player who joined the game, in join
	// order.
	GetPlayersForGame(ctx context.Context, gameID model.GameID) ([]*model.Player, error)

	// Guess operations. The guess log is append-only: guesses are never
	// edited or deleted.
	SaveGuess(ctx context.Context, guess *model.Guess) error
	// GetGuessesForPlayer returns the player's guesses ordered by
	// submission time ascending. Callers rely on this ordering to replay
	// guess history.
	GetGuessesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Guess, error)

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
