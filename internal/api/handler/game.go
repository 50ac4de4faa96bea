package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jackiesafari/dam-attack-sub002/internal/api/apierr"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/request"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/response"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/sse"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	games      game.ControllerInterface
	hubManager *sse.HubManager
	publisher  *sse.Publisher
}

// NewGameHandler creates a new game handler
func NewGameHandler(games game.ControllerInterface, hubManager *sse.HubManager, publisher *sse.Publisher) *GameHandler {
	return &GameHandler{
		games:      games,
		hubManager: hubManager,
		publisher:  publisher,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, events, err := h.games.CreateGame(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameResponse{
		State:  response.GameStateFromModel(g),
		Events: response.GameEventsFromModel(events),
	})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{
		State:  response.GameStateFromModel(g),
		Events: []response.GameEvent{},
	})
}

// Command handles POST /api/v1/games/{id}/commands
func (h *GameHandler) Command(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewBadRequest(apierr.CodeInvalidRequest, "invalid request body"))
		return
	}

	g, events, err := h.games.ApplyCommand(r.Context(), id, model.Command(req.Command))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcast(id, events)
	response.JSON(w, http.StatusOK, response.GameResponse{
		State:  response.GameStateFromModel(g),
		Events: response.GameEventsFromModel(events),
	})
}

// Tick handles POST /api/v1/games/{id}/tick
func (h *GameHandler) Tick(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, events, err := h.games.Tick(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcast(id, events)
	response.JSON(w, http.StatusOK, response.GameResponse{
		State:  response.GameStateFromModel(g),
		Events: response.GameEventsFromModel(events),
	})
}

// Reset handles POST /api/v1/games/{id}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, events, err := h.games.ResetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcast(id, events)
	response.JSON(w, http.StatusOK, response.GameResponse{
		State:  response.GameStateFromModel(g),
		Events: response.GameEventsFromModel(events),
	})
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.games.DeleteGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	if h.publisher != nil {
		h.publisher.GameDeleted(id)
	}
	response.NoContent(w)
}

// Events handles GET /api/v1/games/{id}/events (SSE stream)
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	// Verify the game exists before holding a stream open
	if _, err := h.games.GetGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}

func (h *GameHandler) broadcast(id model.GameID, events []model.Event) {
	if h.publisher != nil {
		h.publisher.Publish(id, events)
	}
}
