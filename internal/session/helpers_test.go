package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/game"
	"github.com/phrazzld/memory-cards/internal/platform/durationfmt"
	"github.com/phrazzld/memory-cards/internal/platform/idgen"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestReducer() *game.Reducer {
	logger := discardLogger()
	br := board.NewReducer(
		catalog.NewFixtureCatalog(),
		idgen.Incrementing(),
		durationfmt.Live(),
		board.DefaultTimings(),
		logger,
	)
	return game.NewReducer(br, logger)
}

// recordingHandler keeps every event it receives
type recordingHandler struct {
	mu     sync.Mutex
	events []*events.GameEvent
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event *events.GameEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandler) types() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestEmitter(t *testing.T) (*events.Bus, *recordingHandler) {
	t.Helper()
	bus := events.NewBus(discardLogger())
	handler := &recordingHandler{}
	bus.Subscribe(events.Filter{}, handler)
	return bus, handler
}

func newFakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClock()
}
