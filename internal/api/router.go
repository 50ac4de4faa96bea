package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jackiesafari/dam-attack-sub002/internal/api/apierr"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/handler"
	"github.com/jackiesafari/dam-attack-sub002/internal/api/sse"
	"github.com/jackiesafari/dam-attack-sub002/internal/middleware"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/game"
	"github.com/jackiesafari/dam-attack-sub002/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	GameController     game.ControllerInterface
	LeaderboardService *leaderboard.Service
	HubManager         *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	var publisher *sse.Publisher
	if cfg.HubManager != nil {
		publisher = sse.NewPublisher(cfg.HubManager, cfg.Logger)
	}

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager, publisher)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Game session routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/commands", gameHandler.Command).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/tick", gameHandler.Tick).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/reset", gameHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	// Leaderboard routes
	api.HandleFunc("/scores", leaderboardHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", leaderboardHandler.Top).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/{player}", leaderboardHandler.PlayerBest).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, errors.New("panic in handler"))
}
