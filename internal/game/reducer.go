package game

import (
	"log/slog"

	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/effect"
	"github.com/phrazzld/memory-cards/internal/events"
)

// Reducer applies game actions to game state.
type Reducer struct {
	board  *board.Reducer
	logger *slog.Logger
}

// NewReducer creates a game flow reducer on top of a board reducer.
func NewReducer(boardReducer *board.Reducer, logger *slog.Logger) *Reducer {
	if boardReducer == nil {
		panic("boardReducer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reducer{
		board:  boardReducer,
		logger: logger.With(slog.String("component", "game_flow")),
	}
}

// New creates a game on the options screen with the given selection.
// Invalid options fall back to the defaults.
func (r *Reducer) New(options domain.GameOptions) *State {
	if err := options.Validate(); err != nil {
		r.logger.Debug("using default options", "error", err)
		options = domain.DefaultGameOptions()
	}
	return &State{
		Options:      options,
		Modes:        domain.AllModes(),
		Styles:       domain.AllStyles(),
		Difficulties: domain.AllDifficulties(),
		machine:      newMachine(),
	}
}

// Reduce applies action to s and returns the effects to run.
func (r *Reducer) Reduce(s *State, action Action) []effect.Effect {
	switch a := action.(type) {
	case SelectMode:
		if r.selecting(s, a.Mode.Valid()) {
			s.Options.Mode = a.Mode
		}
	case SelectStyle:
		if r.selecting(s, a.Style.Valid()) {
			s.Options.Style = a.Style
		}
	case SelectDifficulty:
		if r.selecting(s, a.Difficulty.Valid()) {
			s.Options.Difficulty = a.Difficulty
		}
	case StartGameRequested:
		return r.start(s, a)
	case Board:
		return r.forward(s, a.Action)
	case QuitRequested:
		if s.Board == nil {
			r.logger.Debug("ignored quit without an active board")
			return nil
		}
		return r.teardown(s, ReasonQuit)
	default:
		r.logger.Warn("unknown game action")
	}
	return nil
}

// selecting reports whether an option change may be applied.
func (r *Reducer) selecting(s *State, valid bool) bool {
	if s.Phase() != PhaseSelectingOptions {
		r.logger.Debug("ignored option change outside the options screen", "phase", s.Phase())
		return false
	}
	if !valid {
		r.logger.Debug("ignored invalid option")
		return false
	}
	return true
}

func (r *Reducer) start(s *State, a StartGameRequested) []effect.Effect {
	options := domain.GameOptions{Mode: a.Mode, Style: a.Style, Difficulty: a.Difficulty}
	if err := options.Validate(); err != nil {
		r.logger.Debug("ignored start with invalid options", "error", err)
		return nil
	}
	if s.Phase() != PhaseSelectingOptions {
		r.logger.Debug("ignored start while a game is running", "phase", s.Phase())
		return nil
	}

	s.Options = options
	level := r.board.Dealer().InitialLevel(options.Difficulty)
	s.Board = r.board.New(options.Mode, options.Difficulty, options.Style, level)
	if err := s.transition(eventStart); err != nil {
		r.logger.Error("failed to enter level", "error", err)
	}

	r.logger.Info("game started",
		"mode", options.Mode,
		"style", options.Style,
		"difficulty", options.Difficulty,
		"level", level.Type.String())
	return nil
}

func (r *Reducer) forward(s *State, action board.Action) []effect.Effect {
	if s.Board == nil {
		r.logger.Debug("ignored board action without an active board")
		return nil
	}

	session := s.Board.SessionID
	effects := effect.Map(r.board.Reduce(s.Board, action), func(a any) any {
		return Board{Action: a.(board.Action)}
	})

	switch {
	case s.Board.Finished:
		return append(effects, r.teardown(s, ReasonFinished)...)
	case s.Board.Summary != nil:
		if err := s.transition(eventComplete); err != nil {
			r.logger.Error("failed to enter level summary", "error", err)
		}
	case s.Phase() == PhaseLevelSummary && s.Board.SessionID != session:
		if err := s.transition(eventContinue); err != nil {
			r.logger.Error("failed to leave level summary", "error", err)
		}
	}
	return effects
}

// teardown discards the board and returns to the options screen.
func (r *Reducer) teardown(s *State, reason string) []effect.Effect {
	payload := FinishedPayload{
		Level:      s.Board.Level,
		Mode:       s.Board.Mode,
		Difficulty: s.Board.Difficulty,
		Reason:     reason,
	}
	s.Board = nil
	if err := s.transition(eventFinish); err != nil {
		r.logger.Error("failed to return to options", "error", err)
	}

	r.logger.Info("game finished",
		"level", payload.Level.Type.String(),
		"reason", reason)

	return []effect.Effect{
		effect.CancelIDs(board.EffectIDs()...),
		effect.Emit{Type: events.TypeGameFinished, Payload: payload},
	}
}
