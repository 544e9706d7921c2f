package shared

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is the type of the request context keys set by the API
type ContextKey string

// Context keys for various values
const (
	// GameIDContextKey is the context key for the game id carried by the bearer token
	GameIDContextKey ContextKey = "gameID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when none is set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithGameID returns a copy of ctx carrying the authenticated game id.
func WithGameID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, GameIDContextKey, id)
}

// GameIDFromContext returns the authenticated game id, if any.
func GameIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(GameIDContextKey).(uuid.UUID)
	return id, ok
}

// generateTraceID returns 32 hex characters.
func generateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
