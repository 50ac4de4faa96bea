package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jackiesafari/dam-attack-sub002/internal/api/apierr"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/request"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/response"
	"github.com/jackiesafari/dam-attack-sub002/internal/model"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/leaderboard"
)

// LeaderboardHandler handles score submission and leaderboard queries
type LeaderboardHandler struct {
	leaderboard *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: leaderboard,
	}
}

// Submit handles POST /api/v1/scores
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewBadRequest(apierr.CodeInvalidRequest, "invalid request body"))
		return
	}

	best, improved, err := h.leaderboard.Submit(r.Context(), req.Player, model.Result{
		Score: req.Score,
		Level: req.Level,
		Lines: req.Lines,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitScoreResponse{
		Best:     response.ScoreEntryFromModel(best, 0),
		Improved: improved,
	})
}

// Top handles GET /api/v1/leaderboard?limit=N
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apierr.WriteError(w, apierr.NewBadRequest(apierr.CodeInvalidRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboard.Top(r.Context(), limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.ScoreEntry, 0, len(entries))
	for i, entry := range entries {
		out = append(out, response.ScoreEntryFromModel(entry, i+1))
	}
	response.JSON(w, http.StatusOK, response.LeaderboardResponse{Entries: out})
}

// PlayerBest handles GET /api/v1/leaderboard/{player}
func (h *LeaderboardHandler) PlayerBest(w http.ResponseWriter, r *http.Request) {
	player := mux.Vars(r)["player"]

	entry, err := h.leaderboard.PlayerBest(r.Context(), player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	rank, err := h.leaderboard.PlayerRank(r.Context(), player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreEntryFromModel(entry, rank))
}
