package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/jackiesafari/dam-attack-sub002/internal/model"
)

// Publisher pushes gameplay events to the SSE clients watching a game.
// Events are sent as JSON with the event type as the SSE event name, so
// renderer and effect clients can subscribe to exactly the transitions they
// care about (locks for impact effects, clears for celebrations, and so on).
type Publisher struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewPublisher creates a new Publisher
func NewPublisher(hubManager *HubManager, logger *slog.Logger) *Publisher {
	return &Publisher{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-publisher")),
	}
}

// Publish broadcasts the given events to the game's hub, if anyone is
// watching. A game with no hub simply has no subscribers; nothing is queued.
func (p *Publisher) Publish(gameID model.GameID, events []model.Event) {
	if len(events) == 0 {
		return
	}
	hub := p.hubManager.GetHub(gameID)
	if hub == nil {
		return
	}

	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("failed to marshal event",
				slog.String("game_id", string(gameID)),
				slog.String("event_type", string(event.Type)),
				slog.Any("error", err))
			continue
		}
		hub.BroadcastEvent(string(event.Type), string(data))
	}
}

// GameDeleted tears down the hub for a deleted game
func (p *Publisher) GameDeleted(gameID model.GameID) {
	p.hubManager.RemoveHub(gameID)
}
