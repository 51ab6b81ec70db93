package game

import (
	"context"
	"testing"
	"time"

	"github.com/ch00kz/adieu-backend/internal/dependencies/mocks"
	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/services/dictionary"
	"github.com/ch00kz/adieu-backend/internal/services/scoring"
	"github.com/ch00kz/adieu-backend/internal/storage/memory"
	"github.com/ch00kz/adieu-backend/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ControllerSuite struct {
	suite.Suite
	storage        *memory.Storage
	dictService    *dictionary.Service
	scoringService *scoring.Service
	clock          *mocks.MockClock
	random         *mocks.MockRandom
	controller     *Controller
	ctx            context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.dictService = dictionary.New(s.storage, s.random, testutil.NopLogger())
	s.scoringService = scoring.New(s.storage)
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.controller = NewController(s.storage, s.dictService, s.scoringService, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()

	s.dictService.LoadWords([]string{
		"adieu", "audio", "apple", "erase", "speed", "loyal", "alloy", "geese", "animal",
	})
}

// joinPlayer creates a player in the given game with a fixed ID.
func (s *ControllerSuite) joinPlayer(gameID model.GameID, id, username string) *model.Player {
	s.random.QueueString(id)
	player, _, err := s.controller.JoinGame(s.ctx, gameID, username)
	s.Require().NoError(err)
	return player
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameWithCustomWord() {
	s.random.QueueString("GAME12345678")

	game, err := s.controller.CreateGame(s.ctx, "hello")
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal("HELLO", game.Word)
	s.Equal(5, game.WordLength())
	s.Equal(s.clock.CurrentTime, game.CreatedAt)
}

func (s *ControllerSuite) TestCreateGameCustomWordNeedNotBeInDictionary() {
	s.random.QueueString("GAME12345678")

	game, err := s.controller.CreateGame(s.ctx, "zzzzzz")
	s.Require().NoError(err)
	s.Equal("ZZZZZZ", game.Word)
}

func (s *ControllerSuite) TestCreateGameWithRandomWord() {
	// The sorted 5-letter bucket starts [adieu, alloy, apple, audio, ...].
	s.random.QueueIntn(0)
	s.random.QueueString("GAME12345678")

	game, err := s.controller.CreateGame(s.ctx, "")
	s.Require().NoError(err)

	s.Equal("ADIEU", game.Word)
	s.Equal(RandomWordLength, game.WordLength())
}

func (s *ControllerSuite) TestCreateGameFailsWithNonLetterWord() {
	_, err := s.controller.CreateGame(s.ctx, "abc12")
	s.ErrorIs(err, model.ErrInvalidWord)
}

func (s *ControllerSuite) TestCreateGameFailsWhenNoRandomWordAvailable() {
	s.dictService.LoadWords([]string{"able", "animal"})

	_, err := s.controller.CreateGame(s.ctx, "")
	s.ErrorIs(err, model.ErrNoWordsForLength)
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	s.random.QueueString("GAME12345678")

	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)

	stored, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("ADIEU", stored.Word)
}

// JoinGame tests

func (s *ControllerSuite) TestJoinGameReturnsBoardLength() {
	s.random.QueueString("GAME12345678", "PLAYER111111")

	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)

	player, length, err := s.controller.JoinGame(s.ctx, game.ID, "alice")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("PLAYER111111"), player.ID)
	s.Equal(game.ID, player.GameID)
	s.Equal("alice", player.Username)
	s.Equal(5, length)
}

func (s *ControllerSuite) TestJoinGameFailsForUnknownGame() {
	_, _, err := s.controller.JoinGame(s.ctx, "NOPE", "alice")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestJoinGameNeverRevealsSolution() {
	s.random.QueueString("GAME12345678", "PLAYER111111")

	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)

	player, _, err := s.controller.JoinGame(s.ctx, game.ID, "alice")
	s.Require().NoError(err)
	s.NotContains([]string{player.Username, string(player.ID)}, game.Word)
}

// SubmitGuess tests

func (s *ControllerSuite) TestSubmitWinningGuess() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	s.random.QueueString("GUESS1111111")
	result, err := s.controller.SubmitGuess(s.ctx, player.ID, "adieu")
	s.Require().NoError(err)

	s.True(result.IsWinningGuess)
	s.Len(result.Letters, 5)
	for _, letter := range result.Letters {
		s.Equal(model.LetterStateCorrect, letter.Status)
	}
}

func (s *ControllerSuite) TestSubmitNonWinningGuess() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "speed")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	s.random.QueueString("GUESS1111111")
	result, err := s.controller.SubmitGuess(s.ctx, player.ID, "erase")
	s.Require().NoError(err)

	s.False(result.IsWinningGuess)
	expected := []model.LetterState{
		model.LetterStateInTheWord,
		model.LetterStateWrong,
		model.LetterStateWrong,
		model.LetterStateInTheWord,
		model.LetterStateInTheWord,
	}
	for i, letter := range result.Letters {
		s.Equal(expected[i], letter.Status)
	}
}

func (s *ControllerSuite) TestSubmitGuessRejectsNonDictionaryWord() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	_, err = s.controller.SubmitGuess(s.ctx, player.ID, "zzzzz")
	s.ErrorIs(err, model.ErrInvalidGuess)

	// A rejected guess creates no record.
	guesses, err := s.storage.GetGuessesForPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Empty(guesses)
}

func (s *ControllerSuite) TestSubmitGuessRejectsLengthMismatch() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "geese")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	// "animal" is a dictionary word, but the wrong length for this game.
	_, err = s.controller.SubmitGuess(s.ctx, player.ID, "animal")
	s.ErrorIs(err, model.ErrInvalidGuess)

	guesses, err := s.storage.GetGuessesForPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Empty(guesses)
}

func (s *ControllerSuite) TestSubmitGuessFailsForUnknownPlayer() {
	_, err := s.controller.SubmitGuess(s.ctx, "NOPE", "adieu")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestSubmitGuessPersistsWinFlagMatchingEvaluation() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	s.random.QueueString("GUESS1111111", "GUESS2222222")
	_, err = s.controller.SubmitGuess(s.ctx, player.ID, "audio")
	s.Require().NoError(err)
	_, err = s.controller.SubmitGuess(s.ctx, player.ID, "adieu")
	s.Require().NoError(err)

	guesses, err := s.storage.GetGuessesForPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Require().Len(guesses, 2)
	s.False(guesses[0].IsWinningGuess)
	s.True(guesses[1].IsWinningGuess)
}

// ListGuesses tests

func (s *ControllerSuite) TestListGuessesPreservesSubmissionOrder() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	s.random.QueueString("GUESS1111111", "GUESS2222222", "GUESS3333333")
	for _, text := range []string{"audio", "erase", "adieu"} {
		_, err := s.controller.SubmitGuess(s.ctx, player.ID, text)
		s.Require().NoError(err)
	}

	results, err := s.controller.ListGuesses(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Require().Len(results, 3)

	s.False(results[0].IsWinningGuess)
	s.False(results[1].IsWinningGuess)
	s.True(results[2].IsWinningGuess)
}

func (s *ControllerSuite) TestListGuessesRecomputesFromStoredText() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	// A stored flag that disagrees with the text must not leak through reads.
	guess := &model.Guess{
		ID:             "GUESS1111111",
		PlayerID:       player.ID,
		Text:           "audio",
		IsWinningGuess: true,
		CreatedAt:      s.clock.Now(),
	}
	s.Require().NoError(s.storage.SaveGuess(s.ctx, guess))

	results, err := s.controller.ListGuesses(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.False(results[0].IsWinningGuess)
}

func (s *ControllerSuite) TestListGuessesEmptyForNewPlayer() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)
	player := s.joinPlayer(game.ID, "PLAYER111111", "alice")

	results, err := s.controller.ListGuesses(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *ControllerSuite) TestListGuessesFailsForUnknownPlayer() {
	_, err := s.controller.ListGuesses(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// GetScores tests

func (s *ControllerSuite) TestGetScoresRanksWinnersFirst() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, "adieu")
	s.Require().NoError(err)

	loser := s.joinPlayer(game.ID, "PLAYERLOSER1", "yvonne")
	winner := s.joinPlayer(game.ID, "PLAYERWINNER", "xavier")

	s.random.QueueString("G1", "G2", "G3", "G4", "G5", "G6", "G7", "G8")
	for _, text := range []string{"erase", "audio", "speed", "alloy", "geese"} {
		_, err := s.controller.SubmitGuess(s.ctx, loser.ID, text)
		s.Require().NoError(err)
	}
	for _, text := range []string{"erase", "audio", "adieu"} {
		_, err := s.controller.SubmitGuess(s.ctx, winner.ID, text)
		s.Require().NoError(err)
	}

	scores, err := s.controller.GetScores(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().Len(scores, 2)

	s.Equal(winner.ID, scores[0].PlayerID)
	s.True(scores[0].HasWon)
	s.Equal(3, scores[0].GuessCount)

	s.Equal(loser.ID, scores[1].PlayerID)
	s.False(scores[1].HasWon)
	s.Equal(5, scores[1].GuessCount)
}

func (s *ControllerSuite) TestGetScoresFailsForUnknownGame() {
	_, err := s.controller.GetScores(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}
