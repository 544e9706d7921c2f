package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Filter selects the events a subscriber receives.
// Empty Types matches every type; a nil GameID matches every game.
type Filter struct {
	Types  []string
	GameID uuid.UUID
}

// Matches reports whether event passes the filter.
func (f Filter) Matches(event *GameEvent) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, event.Type) {
		return false
	}
	return f.GameID == uuid.Nil || f.GameID == event.GameID
}

type subscription struct {
	id      uint64
	filter  Filter
	handler EventHandler
}

// Bus dispatches game events to the subscribers whose filter matches.
// Subscribers scoped to one game are dropped with DropGame when the game ends.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID uint64
	logger *slog.Logger
}

var _ EventEmitter = (*Bus)(nil)

// NewBus creates an empty Bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Bus{logger: logger.With("component", "game_event_bus")}
}

// Subscribe registers handler for the events matching filter and returns a
// function that removes the subscription. Calling it more than once is a no-op.
func (b *Bus) Subscribe(filter Filter, handler EventHandler) (unsubscribe func()) {
	if handler == nil {
		panic("handler cannot be nil")
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, filter: filter, handler: handler})
	count := len(b.subs)
	b.mu.Unlock()

	b.logger.Debug("subscribed to game events",
		"subscription_id", id,
		"types", filter.Types,
		"game_id", filter.GameID,
		"subscriber_count", count)

	return func() { b.remove(func(s subscription) bool { return s.id == id }) }
}

// DropGame removes every subscription scoped to gameID and returns how many were removed.
func (b *Bus) DropGame(gameID uuid.UUID) int {
	if gameID == uuid.Nil {
		return 0
	}
	n := b.remove(func(s subscription) bool { return s.filter.GameID == gameID })
	if n > 0 {
		b.logger.Debug("dropped game subscriptions", "game_id", gameID, "count", n)
	}
	return n
}

// SubscriberCount returns the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Bus) remove(match func(subscription) bool) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	before := len(b.subs)
	b.subs = slices.DeleteFunc(b.subs, match)
	return before - len(b.subs)
}

// EmitEvent delivers event to every matching subscriber in subscription order.
// All matching subscribers run even when one fails; the first error is returned.
func (b *Bus) EmitEvent(ctx context.Context, event *GameEvent) error {
	b.mu.RLock()
	var targets []subscription
	for _, s := range b.subs {
		if s.filter.Matches(event) {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	if len(targets) == 0 {
		b.logger.Debug("no subscribers for event",
			"event_type", event.Type,
			"game_id", event.GameID)
		return nil
	}

	var firstErr error
	for _, s := range targets {
		if err := s.handler.HandleEvent(ctx, event); err != nil {
			b.logger.Error("subscriber failed to handle event",
				"error", err,
				"subscription_id", s.id,
				"event_id", event.ID,
				"event_type", event.Type,
				"game_id", event.GameID)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
