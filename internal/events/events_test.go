package events

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameEvent(t *testing.T) {
	// Define a sample payload
	type testPayload struct {
		Level          string `json:"level"`
		ElapsedSeconds int    `json:"elapsed_seconds"`
	}

	payload := testPayload{Level: "one", ElapsedSeconds: 4}
	gameID := uuid.New()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	event, err := NewGameEvent(gameID, TypeLevelCompleted, payload, now)

	// Assert creation was successful
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeLevelCompleted, event.Type)
	assert.Equal(t, gameID, event.GameID)
	assert.Equal(t, now, event.CreatedAt)

	// Verify payload was correctly serialized
	var decodedPayload testPayload
	require.NoError(t, event.UnmarshalPayload(&decodedPayload))
	assert.Equal(t, payload, decodedPayload)
}

func TestNewGameEventWithoutPayload(t *testing.T) {
	event, err := NewGameEvent(uuid.New(), TypeGameFinished, nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, event.Payload)
}

func TestNewGameEventUnsupportedPayload(t *testing.T) {
	_, err := NewGameEvent(uuid.New(), TypeGameFinished, make(chan int), time.Now())
	assert.Error(t, err)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *GameEvent
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *GameEvent) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandlerFunc(t *testing.T) {
	var got *GameEvent
	handler := EventHandlerFunc(func(ctx context.Context, event *GameEvent) error {
		got = event
		return errors.New("handler error")
	})

	event, err := NewGameEvent(uuid.New(), TypeGameFinished, nil, time.Now())
	require.NoError(t, err)

	err = handler.HandleEvent(context.Background(), event)
	assert.EqualError(t, err, "handler error")
	assert.Same(t, event, got)
}

func TestLoggingHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := NewLoggingHandler(logger)

	event, err := NewGameEvent(uuid.New(), TypeLevelCompleted, map[string]int{"elapsed_seconds": 4}, time.Now())
	require.NoError(t, err)

	require.NoError(t, handler.HandleEvent(context.Background(), event))
	assert.Contains(t, buf.String(), `"event_type":"level_completed"`)
	assert.Contains(t, buf.String(), event.GameID.String())
	assert.Contains(t, buf.String(), `"component":"game_event_log"`)
}
