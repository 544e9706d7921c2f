package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event type constants
const (
	// TypeLevelCompleted is emitted when the summary of a level appears.
	// The payload is the level summary.
	TypeLevelCompleted = "level_completed"

	// TypeGameFinished is emitted when the player leaves a game and returns to options.
	TypeGameFinished = "game_finished"
)

// GameEvent is a notification about something that happened in one game.
type GameEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type constants
	Type string `json:"type"`

	// GameID identifies the hosted game that produced the event
	GameID uuid.UUID `json:"game_id"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *GameEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewGameEvent creates a new GameEvent with the specified type and payload.
// A nil payload leaves Payload empty.
func NewGameEvent(gameID uuid.UUID, eventType string, payload interface{}, now time.Time) (*GameEvent, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = b
	}

	return &GameEvent{
		ID:        uuid.New(),
		Type:      eventType,
		GameID:    gameID,
		Payload:   payloadBytes,
		CreatedAt: now,
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *GameEvent) error
}

// EventHandlerFunc adapts a function to the EventHandler interface
type EventHandlerFunc func(ctx context.Context, event *GameEvent) error

// HandleEvent implements EventHandler
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *GameEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *GameEvent) error
}
