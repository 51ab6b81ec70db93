package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/storage/memory"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *ServiceSuite) createGame(id model.GameID, word string) {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{
		ID:        id,
		Word:      word,
		CreatedAt: s.now,
	}))
}

func (s *ServiceSuite) createPlayer(id model.PlayerID, gameID model.GameID, username string) {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{
		ID:        id,
		GameID:    gameID,
		Username:  username,
		CreatedAt: s.now,
	}))
}

func (s *ServiceSuite) addGuesses(playerID model.PlayerID, texts ...string) {
	for i, text := range texts {
		s.Require().NoError(s.storage.SaveGuess(s.ctx, &model.Guess{
			ID:        model.GuessID(string(playerID) + "-" + string(rune('a'+i))),
			PlayerID:  playerID,
			Text:      text,
			CreatedAt: s.now,
		}))
	}
}

func (s *ServiceSuite) TestWinnerRanksBeforeNonWinner() {
	s.createGame("GAME1", "ADIEU")
	s.createPlayer("player-y", "GAME1", "yvonne")
	s.createPlayer("player-x", "GAME1", "xavier")

	s.addGuesses("player-y", "erase", "audio", "speed", "alloy", "geese")
	s.addGuesses("player-x", "erase", "audio", "adieu")

	scores, err := s.service.GetPlayerScores(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Require().Len(scores, 2)

	s.Equal(model.PlayerID("player-x"), scores[0].PlayerID)
	s.Equal("xavier", scores[0].Username)
	s.True(scores[0].HasWon)
	s.Equal(3, scores[0].GuessCount)

	s.Equal(model.PlayerID("player-y"), scores[1].PlayerID)
	s.False(scores[1].HasWon)
	s.Equal(5, scores[1].GuessCount)
}

func (s *ServiceSuite) TestWinnersRankByFewestGuesses() {
	s.createGame("GAME1", "ADIEU")
	s.createPlayer("player-slow", "GAME1", "slow")
	s.createPlayer("player-fast", "GAME1", "fast")

	s.addGuesses("player-slow", "erase", "audio", "speed", "adieu")
	s.addGuesses("player-fast", "audio", "adieu")

	scores, err := s.service.GetPlayerScores(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Require().Len(scores, 2)

	s.Equal(model.PlayerID("player-fast"), scores[0].PlayerID)
	s.Equal(model.PlayerID("player-slow"), scores[1].PlayerID)
}

func (s *ServiceSuite) TestPlayersWithNoGuessesAreIncluded() {
	s.createGame("GAME1", "ADIEU")
	s.createPlayer("player-1", "GAME1", "alice")
	s.createPlayer("player-2", "GAME1", "bob")

	s.addGuesses("player-1", "audio")

	scores, err := s.service.GetPlayerScores(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Require().Len(scores, 2)

	s.Equal(model.PlayerID("player-2"), scores[1].PlayerID)
	s.Equal(0, scores[1].GuessCount)
	s.False(scores[1].HasWon)
}

func (s *ServiceSuite) TestWinStatusIsRecomputedFromGuessText() {
	s.createGame("GAME1", "ADIEU")
	s.createPlayer("player-1", "GAME1", "alice")

	// The persisted flag lies; the stored text decides.
	s.Require().NoError(s.storage.SaveGuess(s.ctx, &model.Guess{
		ID:             "guess-1",
		PlayerID:       "player-1",
		Text:           "audio",
		IsWinningGuess: true,
		CreatedAt:      s.now,
	}))

	scores, err := s.service.GetPlayerScores(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.False(scores[0].HasWon)
}

func (s *ServiceSuite) TestTiedPlayersKeepJoinOrder() {
	s.createGame("GAME1", "ADIEU")
	s.createPlayer("player-1", "GAME1", "alice")
	s.createPlayer("player-2", "GAME1", "bob")

	s.addGuesses("player-1", "audio", "erase")
	s.addGuesses("player-2", "speed", "geese")

	scores, err := s.service.GetPlayerScores(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Require().Len(scores, 2)

	s.Equal(model.PlayerID("player-1"), scores[0].PlayerID)
	s.Equal(model.PlayerID("player-2"), scores[1].PlayerID)
}

func (s *ServiceSuite) TestEmptyGameReturnsNoScores() {
	s.createGame("GAME1", "ADIEU")

	scores, err := s.service.GetPlayerScores(s.ctx, "GAME1")
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *ServiceSuite) TestFailsForUnknownGame() {
	_, err := s.service.GetPlayerScores(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}
