// Package scoring builds a game's leaderboard from the append-only guess log.
package scoring

import (
	"context"
	"sort"

	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/services/evaluator"
	"github.com/ch00kz/adieu-backend/internal/storage"
)

// Service aggregates per-player scores for a game
type Service struct {
	storage storage.Storage
}

// New creates a new scoring Service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// GetPlayerScores returns one score row per player who joined the game,
// including players with no guesses yet. Win status is recomputed from the
// stored guess text rather than read from the persisted flag, so scores stay
// correct even if a stored flag were ever wrong.
//
// Rows are ranked winners first, then by fewest guesses; the sort is stable
// so ties keep their aggregation order within a single query.
func (s *Service) GetPlayerScores(ctx context.Context, gameID model.GameID) ([]model.PlayerScore, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	players, err := s.storage.GetPlayersForGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	scores := make([]model.PlayerScore, 0, len(players))
	for _, player := range players {
		guesses, err := s.storage.GetGuessesForPlayer(ctx, player.ID)
		if err != nil {
			return nil, err
		}

		score := model.PlayerScore{
			PlayerID: player.ID,
			Username: player.Username,
		}
		for _, guess := range guesses {
			score.GuessCount++
			if evaluator.Evaluate(guess.Text, game.Word).IsWinningGuess {
				score.HasWon = true
			}
		}
		scores = append(scores, score)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].HasWon != scores[j].HasWon {
			return scores[i].HasWon
		}
		return scores[i].GuessCount < scores[j].GuessCount
	})

	return scores, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	GetPlayerScores(ctx context.Context, gameID model.GameID) ([]model.PlayerScore, error)
}

var _ ServiceInterface = (*Service)(nil)
