package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/effect"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/game"
)

const inboxSize = 64

// envelope is one item of the runner inbox. A nil action only renders the view.
type envelope struct {
	action game.Action
	reply  chan game.View
}

// Runner drives a single game
type Runner struct {
	id       uuid.UUID
	nickname string

	reducer   *game.Reducer
	state     *game.State
	scheduler *effect.Scheduler
	emitter   events.EventEmitter
	clock     clockwork.Clock
	logger    *slog.Logger

	inbox        chan envelope
	ctx          context.Context
	cancelFunc   context.CancelFunc
	done         chan struct{}
	closeOnce    sync.Once
	lastActivity atomic.Int64
}

// NewRunner creates a runner for a new game and starts its loop
func NewRunner(
	id uuid.UUID,
	nickname string,
	options domain.GameOptions,
	reducer *game.Reducer,
	clock clockwork.Clock,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *Runner {
	if reducer == nil {
		panic("reducer cannot be nil")
	}
	if clock == nil {
		panic("clock cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	runnerLogger := logger.With(
		slog.String("component", "game_runner"),
		slog.String("game_id", id.String()),
	)

	r := &Runner{
		id:         id,
		nickname:   nickname,
		reducer:    reducer,
		state:      reducer.New(options),
		scheduler:  effect.NewScheduler(clock, runnerLogger),
		emitter:    emitter,
		clock:      clock,
		logger:     runnerLogger,
		inbox:      make(chan envelope, inboxSize),
		ctx:        ctx,
		cancelFunc: cancel,
		done:       make(chan struct{}),
	}
	r.touch()

	go r.loop()
	return r
}

// ID returns the game id
func (r *Runner) ID() uuid.UUID {
	return r.id
}

// Nickname returns the human readable name of the game
func (r *Runner) Nickname() string {
	return r.nickname
}

// LastActivity returns when the player last sent an action
func (r *Runner) LastActivity() time.Time {
	return time.Unix(0, r.lastActivity.Load())
}

// Dispatch sends a player action to the game and waits for the resulting view
func (r *Runner) Dispatch(ctx context.Context, action game.Action) (game.View, error) {
	r.touch()
	return r.send(ctx, action)
}

// View returns the current view without changing the game
func (r *Runner) View(ctx context.Context) (game.View, error) {
	return r.send(ctx, nil)
}

func (r *Runner) send(ctx context.Context, action game.Action) (game.View, error) {
	reply := make(chan game.View, 1)

	select {
	case <-r.ctx.Done():
		return game.View{}, ErrSessionClosed
	case <-ctx.Done():
		return game.View{}, ctx.Err()
	case r.inbox <- envelope{action: action, reply: reply}:
	}

	select {
	case v := <-reply:
		return v, nil
	case <-r.done:
		return game.View{}, ErrSessionClosed
	case <-ctx.Done():
		return game.View{}, ctx.Err()
	}
}

// Close stops the game. Pending effects are cancelled and later dispatches
// fail with ErrSessionClosed. Close is idempotent.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		r.cancelFunc()
		<-r.done
		r.scheduler.Close()
		r.logger.Debug("game runner closed")
	})
}

// loop is the single consumer of the inbox
func (r *Runner) loop() {
	defer close(r.done)

	for {
		select {
		case <-r.ctx.Done():
			return
		case env := <-r.inbox:
			r.handle(env)
		}
	}
}

func (r *Runner) handle(env envelope) {
	if env.action != nil {
		r.apply(r.reducer.Reduce(r.state, env.action))
	}
	if env.reply != nil {
		env.reply <- r.reducer.View(r.state)
	}
}

// apply runs the effects returned by the reducer
func (r *Runner) apply(effects []effect.Effect) {
	for _, e := range effects {
		switch v := e.(type) {
		case effect.Delay:
			action := v.Action.(game.Action)
			r.scheduler.After(v.ID, v.After, func() { r.enqueue(action) })
		case effect.Repeat:
			action := v.Action.(game.Action)
			r.scheduler.Every(v.ID, v.Every, func() { r.enqueue(action) })
		case effect.Cancel:
			for _, id := range v.IDs {
				r.scheduler.Cancel(id)
			}
		case effect.Emit:
			r.emit(v)
		}
	}
}

// enqueue delivers a scheduled action back to the loop
func (r *Runner) enqueue(action game.Action) {
	select {
	case r.inbox <- envelope{action: action}:
	case <-r.ctx.Done():
	}
}

func (r *Runner) emit(e effect.Emit) {
	event, err := events.NewGameEvent(r.id, e.Type, e.Payload, r.clock.Now())
	if err != nil {
		r.logger.Error("failed to build game event", "event_type", e.Type, "error", err)
		return
	}
	if err := r.emitter.EmitEvent(r.ctx, event); err != nil {
		r.logger.Error("failed to emit game event", "event_type", e.Type, "error", err)
	}
}

func (r *Runner) touch() {
	r.lastActivity.Store(r.clock.Now().UnixNano())
}
