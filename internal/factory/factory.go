// Package factory wires the application's services and storage together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ch00kz/adieu-backend/internal/dependencies/clock"
	"github.com/ch00kz/adieu-backend/internal/dependencies/random"
	"github.com/ch00kz/adieu-backend/internal/services/dictionary"
	"github.com/ch00kz/adieu-backend/internal/services/game"
	"github.com/ch00kz/adieu-backend/internal/services/scoring"
	"github.com/ch00kz/adieu-backend/internal/storage"
	"github.com/ch00kz/adieu-backend/internal/storage/memory"
	redisstorage "github.com/ch00kz/adieu-backend/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, rnd, logger)
	scoringService := scoring.New(store)
	gameController := game.NewController(store, dictService, scoringService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		GameController:    gameController,
	}
}
