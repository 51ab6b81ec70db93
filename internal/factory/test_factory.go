package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/ch00kz/adieu-backend/internal/dependencies/mocks"
	"github.com/ch00kz/adieu-backend/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() {
	t.DictionaryService.LoadWords([]string{
		// 4-letter words
		"able", "area", "bank", "blue", "gold", "good", "word", "zone",
		// 5-letter words
		"adieu", "alloy", "audio", "erase", "geese", "llama", "loyal", "speed",
		// 6-letter words
		"animal", "thirty", "wonder", "yellow",
	})
}
