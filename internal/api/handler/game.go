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

// GameHandler handles game-level endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), req.Word)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{
		GameID: string(g.ID),
	})
}

// Join handles POST /api/v1/games/{game_id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}

	player, length, err := h.gameController.JoinGame(r.Context(), gameID, req.Username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.JoinGameResponse{
		PlayerID: string(player.ID),
		Length:   length,
	})
}

// Scores handles GET /api/v1/games/{game_id}/scores
func (h *GameHandler) Scores(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	scores, err := h.gameController.GetScores(r.Context(), gameID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := response.GetScoresResponse{
		PlayerScores: make([]response.PlayerScore, len(scores)),
	}
	for i, s := range scores {
		resp.PlayerScores[i] = response.PlayerScoreFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}
