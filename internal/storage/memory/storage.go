package memory

import (
	"context"
	"sync"

	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games           map[model.GameID]*model.Game
	players         map[model.PlayerID]*model.Player
	gamePlayers     map[model.GameID][]model.PlayerID
	playerGuesses   map[model.PlayerID][]*model.Guess
	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:         make(map[model.GameID]*model.Game),
		players:       make(map[model.PlayerID]*model.Player),
		gamePlayers:   make(map[model.GameID][]model.PlayerID),
		playerGuesses: make(map[model.PlayerID][]*model.Guess),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.players[player.ID]; !exists {
		s.gamePlayers[player.GameID] = append(s.gamePlayers[player.GameID], player.ID)
	}
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayersForGame(ctx context.Context, gameID model.GameID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.gamePlayers[gameID]
	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		if player, ok := s.players[id]; ok {
			players = append(players, player)
		}
	}
	return players, nil
}

// Guess operations

func (s *Storage) SaveGuess(ctx context.Context, guess *model.Guess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerGuesses[guess.PlayerID] = append(s.playerGuesses[guess.PlayerID], guess)
	return nil
}

func (s *Storage) GetGuessesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Guess, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guesses := s.playerGuesses[playerID]
	// Insertion order is submission order.
	result := make([]*model.Guess, len(guesses))
	copy(result, guesses)
	return result, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}
