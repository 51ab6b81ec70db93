package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidWord      = errors.New("word must be non-empty and letters only")
	ErrNoWordsForLength = errors.New("no dictionary words of the requested length")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Guess errors
	ErrInvalidGuess = errors.New("guess is not a valid word for this game")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
