package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ch00kz/adieu-backend/internal/api/apierr"
	"github.com/ch00kz/adieu-backend/internal/api/request"
	"github.com/ch00kz/adieu-backend/internal/api/response"
	"github.com/ch00kz/adieu-backend/internal/model"
	"github.com/ch00kz/adieu-backend/internal/services/game"
)

// GuessHandler handles per-player guess endpoints
type GuessHandler struct {
	gameController *game.Controller
}

// NewGuessHandler creates a new guess handler
func NewGuessHandler(gameController *game.Controller) *GuessHandler {
	return &GuessHandler{
		gameController: gameController,
	}
}

// Submit handles POST /api/v1/players/{player_id}/guesses
func (h *GuessHandler) Submit(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.SubmitGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Guess == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("guess is required"))
		return
	}

	result, err := h.gameController.SubmitGuess(r.Context(), playerID, req.Guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitGuessResponse{
		Guess: response.PlayerGuessFromModel(result),
	})
}

// List handles GET /api/v1/players/{player_id}/guesses
func (h *GuessHandler) List(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	results, err := h.gameController.ListGuesses(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.ListGuessesResponse{
		Guesses: make([]response.PlayerGuess, len(results)),
	}
	for i, result := range results {
		resp.Guesses[i] = response.PlayerGuessFromModel(result)
	}
	response.JSON(w, http.StatusOK, resp)
}
