// Package dictionary provides the word-validity oracle: a length-partitioned
// word list used to validate guesses and pick random solution words.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/ch00kz/adieu-backend/internal/dependencies/random"
	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/storage"
)

// BucketLengths are the word lengths the dictionary accepts. Words of any
// other length are dropped at load time.
var BucketLengths = []int{4, 5, 6}

// Service provides word validation and random word selection. Words are
// bucketed strictly by character length. The service is loaded once at
// startup and treated as read-only for the process lifetime.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu      sync.RWMutex
	buckets map[int][]string
	members map[int]map[string]struct{}
	loaded  bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
		buckets: make(map[int][]string),
		members: make(map[int]map[string]struct{}),
	}
}

// LoadFromStorage loads dictionary words previously saved to storage. Returns
// model.ErrDictionaryNotLoaded if storage holds no words, so callers can fall
// back to loading from a file.
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return model.ErrDictionaryNotLoaded
	}
	s.loadWords(words)
	return nil
}

// LoadFromFile loads dictionary words from a JSON array file and saves them
// to storage for future loads.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}

	var words []string
	if err := json.Unmarshal(contents, &words); err != nil {
		return fmt.Errorf("parsing word list: %w", err)
	}

	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.loadWords(words)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) {
	s.loadWords(words)
}

func (s *Service) loadWords(words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets = make(map[int][]string)
	s.members = make(map[int]map[string]struct{})
	for _, length := range BucketLengths {
		s.members[length] = make(map[string]struct{})
	}

	dropped := 0
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		set, ok := s.members[len(word)]
		if !ok {
			dropped++
			continue
		}
		if _, exists := set[word]; exists {
			continue
		}
		set[word] = struct{}{}
		s.buckets[len(word)] = append(s.buckets[len(word)], word)
	}

	// Keep bucket order deterministic regardless of input order so random
	// selection is reproducible under an injected random source.
	for _, bucket := range s.buckets {
		sort.Strings(bucket)
	}
	s.loaded = true

	if s.logger != nil {
		s.logger.Info("dictionary loaded",
			slog.Int("words", s.wordCountLocked()),
			slog.Int("dropped", dropped),
		)
	}
}

// IsValidWord reports whether word is in the dictionary. Matching is
// case-insensitive; the word's own length selects the bucket to check.
func (s *Service) IsValidWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	set, ok := s.members[len(word)]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(word)]
	return ok
}

// RandomWord picks a uniformly random word of exactly the given length.
// ok is false if the length bucket is empty or absent.
func (s *Service) RandomWord(length int) (word string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.buckets[length]
	if len(bucket) == 0 {
		return "", false
	}
	return bucket[s.random.Intn(len(bucket))], true
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words across all buckets
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wordCountLocked()
}

func (s *Service) wordCountLocked() int {
	total := 0
	for _, bucket := range s.buckets {
		total += len(bucket)
	}
	return total
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	RandomWord(length int) (string, bool)
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string)
}

var _ ServiceInterface = (*Service)(nil)
