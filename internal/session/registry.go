package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/game"
	"github.com/phrazzld/memory-cards/internal/platform/idgen"
)

// RegistryConfig holds configuration for the game registry
type RegistryConfig struct {
	// MaxGames is the maximum number of games hosted at once
	MaxGames int

	// IdleTimeout is how long a game may go without player input before it is reaped
	IdleTimeout time.Duration

	// ReapInterval defines how often to look for idle games.
	// If zero, defaults to one minute
	ReapInterval time.Duration
}

// DefaultRegistryConfig returns a RegistryConfig with reasonable defaults
func DefaultRegistryConfig() RegistryConfig {
	return RegistryConfig{
		MaxGames:     1000,
		IdleTimeout:  30 * time.Minute,
		ReapInterval: time.Minute,
	}
}

// gameSubscriptions is implemented by emitters that hold subscriptions scoped to one game
type gameSubscriptions interface {
	DropGame(gameID uuid.UUID) int
}

// Registry keeps the running games of the process
type Registry struct {
	config  RegistryConfig
	reducer *game.Reducer
	clock   clockwork.Clock
	emitter events.EventEmitter
	ids     idgen.Generator
	logger  *slog.Logger

	mu    sync.RWMutex
	games map[uuid.UUID]*Runner

	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewRegistry creates a new Registry
func NewRegistry(
	config RegistryConfig,
	reducer *game.Reducer,
	clock clockwork.Clock,
	emitter events.EventEmitter,
	ids idgen.Generator,
	logger *slog.Logger,
) *Registry {
	if reducer == nil {
		panic("reducer cannot be nil")
	}
	if clock == nil {
		panic("clock cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}
	if ids == nil {
		panic("ids cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if config.ReapInterval == 0 {
		config.ReapInterval = time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Registry{
		config:     config,
		reducer:    reducer,
		clock:      clock,
		emitter:    emitter,
		ids:        ids,
		logger:     logger.With(slog.String("component", "game_registry")),
		games:      make(map[uuid.UUID]*Runner),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Create starts a new game on the options screen
func (r *Registry) Create(options domain.GameOptions) (*Runner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.config.MaxGames > 0 && len(r.games) >= r.config.MaxGames {
		r.logger.Warn("refusing new game, registry is full", "max_games", r.config.MaxGames)
		return nil, ErrRegistryFull
	}

	id := r.ids.NewID()
	runner := NewRunner(id, petname.Generate(2, "-"), options, r.reducer, r.clock, r.emitter, r.logger)
	r.games[id] = runner

	r.logger.Info("game created",
		"game_id", id,
		"nickname", runner.Nickname(),
		"active_games", len(r.games))
	return runner, nil
}

// Get returns the runner of a game
func (r *Registry) Get(id uuid.UUID) (*Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return runner, nil
}

// Remove closes and forgets a game
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	runner, ok := r.games[id]
	delete(r.games, id)
	r.mu.Unlock()

	if !ok {
		return ErrGameNotFound
	}
	r.closeGame(runner)
	r.logger.Info("game removed", "game_id", id)
	return nil
}

// Len returns the number of hosted games
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// Start begins reaping idle games in the background
func (r *Registry) Start() {
	ticker := r.clock.NewTicker(r.config.ReapInterval)
	r.wg.Add(1)
	go r.idleGameMonitor(ticker)
}

// Stop stops the reaper and closes every game
func (r *Registry) Stop() {
	r.cancelFunc()
	r.wg.Wait()

	r.mu.Lock()
	games := r.games
	r.games = make(map[uuid.UUID]*Runner)
	r.mu.Unlock()

	for _, runner := range games {
		r.closeGame(runner)
	}
	r.logger.Info("game registry stopped", "closed_games", len(games))
}

// idleGameMonitor periodically closes games that have not seen player
// input for longer than the idle timeout
func (r *Registry) idleGameMonitor(ticker clockwork.Ticker) {
	defer r.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.Chan():
			r.reapIdle()
		}
	}
}

// reapIdle closes the games idle for longer than the idle timeout and returns how many were closed
func (r *Registry) reapIdle() int {
	if r.config.IdleTimeout <= 0 {
		return 0
	}
	cutoff := r.clock.Now().Add(-r.config.IdleTimeout)

	r.mu.Lock()
	var idle []*Runner
	for id, runner := range r.games {
		if runner.LastActivity().Before(cutoff) {
			idle = append(idle, runner)
			delete(r.games, id)
		}
	}
	r.mu.Unlock()

	if len(idle) == 0 {
		return 0
	}

	r.logger.Info("found idle games", "count", len(idle))
	for _, runner := range idle {
		r.closeGame(runner)
		r.logger.Info("reaped idle game",
			"game_id", runner.ID(),
			"nickname", runner.Nickname())
	}
	return len(idle)
}

// closeGame stops a runner and drops the event subscriptions scoped to it
func (r *Registry) closeGame(runner *Runner) {
	runner.Close()
	if subs, ok := r.emitter.(gameSubscriptions); ok {
		subs.DropGame(runner.ID())
	}
}
