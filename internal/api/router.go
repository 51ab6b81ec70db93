package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ch00kz/adieu-backend/internal/api/handler"
	"github.com/ch00kz/adieu-backend/internal/middleware"
	"github.com/ch00kz/adieu-backend/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	// CORSOrigin, if non-empty, is the origin allowed to call the API from
	// a browser
	CORSOrigin string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)
	guessHandler := handler.NewGuessHandler(cfg.GameController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	if cfg.CORSOrigin != "" {
		api.Use(middleware.CORS(cfg.CORSOrigin))
	}

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/join", gameHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/scores", gameHandler.Scores).Methods(http.MethodGet)

	// Guess routes
	api.HandleFunc("/players/{player_id}/guesses", guessHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}/guesses", guessHandler.List).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
