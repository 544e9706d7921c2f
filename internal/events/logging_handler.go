package events

import (
	"context"
	"log/slog"
)

// LoggingHandler writes every event to a structured logger at info level.
type LoggingHandler struct {
	logger *slog.Logger
}

var _ EventHandler = (*LoggingHandler)(nil)

// NewLoggingHandler creates a LoggingHandler
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &LoggingHandler{logger: logger.With("component", "game_event_log")}
}

// HandleEvent implements EventHandler
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *GameEvent) error {
	h.logger.InfoContext(ctx, "game event",
		slog.String("event_type", event.Type),
		slog.String("game_id", event.GameID.String()),
		slog.String("event_id", event.ID.String()),
		slog.String("payload", string(event.Payload)))
	return nil
}
