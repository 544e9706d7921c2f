package board

import (
	"log/slog"
	"time"

	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
	"github.com/phrazzld/memory-cards/internal/effect"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/platform/durationfmt"
	"github.com/phrazzld/memory-cards/internal/platform/idgen"
)

// Reducer applies board actions to board state.
type Reducer struct {
	dealer    catalog.Dealer
	ids       idgen.Generator
	formatter durationfmt.Formatter
	timings   Timings
	logger    *slog.Logger
}

// NewReducer creates a board reducer with its collaborators.
func NewReducer(
	dealer catalog.Dealer,
	ids idgen.Generator,
	formatter durationfmt.Formatter,
	timings Timings,
	logger *slog.Logger,
) *Reducer {
	if dealer == nil {
		panic("dealer cannot be nil")
	}
	if ids == nil {
		panic("ids cannot be nil")
	}
	if formatter == nil {
		panic("formatter cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reducer{
		dealer:    dealer,
		ids:       ids,
		formatter: formatter,
		timings:   timings,
		logger:    logger.With(slog.String("component", "board")),
	}
}

// Dealer returns the catalog the reducer deals from.
func (r *Reducer) Dealer() catalog.Dealer {
	return r.dealer
}

// New deals the first board of a level.
func (r *Reducer) New(
	mode domain.Mode,
	difficulty domain.Difficulty,
	style domain.Style,
	level domain.Level,
) *State {
	s := &State{
		Mode:       mode,
		Difficulty: difficulty,
		Style:      style,
	}
	r.deal(s, level)
	return s
}

// Reduce applies action to s and returns the effects to run.
func (r *Reducer) Reduce(s *State, action Action) []effect.Effect {
	switch a := action.(type) {
	case CardTapped:
		return r.tap(s, a.ID)
	case SummaryActionSelected:
		return r.resolveSummary(s, a.Choice)
	}

	if !r.current(s, action) {
		return nil
	}

	switch a := action.(type) {
	case SettledFlip:
		if s.Settling != nil && *s.Settling == a.ID {
			s.Settling = nil
		}
		return r.tap(s, a.ID)
	case MatchShown:
		return r.matchShown(s, a.Pair)
	case MismatchTimedOut:
		return r.mismatchTimedOut(s, a.Pair)
	case LevelCompleted:
		return r.levelCompleted(s, a.Level)
	case TimerTicked:
		if s.GameStarted && s.Summary == nil {
			s.ElapsedSeconds++
		}
		return nil
	}

	r.logger.Warn("unknown board action", "action_type", typeName(action))
	return nil
}

// current reports whether an internal action belongs to the current deal.
func (r *Reducer) current(s *State, action Action) bool {
	var sessionID = s.SessionID
	switch a := action.(type) {
	case SettledFlip:
		sessionID = a.SessionID
	case MatchShown:
		sessionID = a.SessionID
	case MismatchTimedOut:
		sessionID = a.SessionID
	case LevelCompleted:
		sessionID = a.SessionID
	case TimerTicked:
		sessionID = a.SessionID
	}
	if sessionID != s.SessionID {
		r.logger.Debug("ignored stale board action",
			"action_type", typeName(action),
			"session_id", s.SessionID)
		return false
	}
	return true
}

// tap flips a card and evaluates the tracker.
func (r *Reducer) tap(s *State, id domain.CardID) []effect.Effect {
	if s.Summary != nil || s.Finished {
		r.logger.Debug("ignored tap while board is frozen", "card_id", id)
		return nil
	}
	i := s.indexOf(id)
	if i < 0 {
		r.logger.Debug("ignored tap on unknown card", "card_id", id)
		return nil
	}
	if !s.Cards[i].Selectable() {
		r.logger.Debug("ignored tap on face-up card", "card_id", id)
		return nil
	}

	var effects []effect.Effect
	if !s.GameStarted {
		s.GameStarted = true
		if s.Mode == domain.ModeTimed {
			effects = append(effects, effect.Repeat{
				ID:     EffectTimer,
				Every:  r.timings.Tick,
				Action: TimerTicked{SessionID: s.SessionID},
			})
		}
	}

	// A mismatched pair is still showing: retract it and register this pick
	// once the settle delay has passed.
	if previous, ok := s.Tracker.CurrentPair(); ok {
		s.Tracker.Clear()
		s.hide(previous.First.ID)
		s.hide(previous.Second.ID)
		settling := id
		s.Settling = &settling
		return append(effects,
			effect.CancelIDs(EffectMismatch),
			effect.Delay{
				ID:     EffectSettle,
				After:  r.timings.Settle,
				Action: SettledFlip{SessionID: s.SessionID, ID: id},
			})
	}

	if s.Settling != nil && *s.Settling == id {
		s.Settling = nil
		effects = append(effects, effect.CancelIDs(EffectSettle))
	}

	s.Cards[i].Flip()
	s.Tracker.Add(s.Cards[i].Flipped())

	if match, ok := s.Tracker.PairMatch(); ok {
		s.Tracker.Clear()
		if s.PendingMatch != nil {
			s.pair(*s.PendingMatch)
		}
		s.PendingMatch = &match
		return append(effects, effect.Delay{
			ID:     EffectShowMatch,
			After:  r.timings.ShowMatch,
			Action: MatchShown{SessionID: s.SessionID, Pair: match},
		})
	}

	if mismatch, ok := s.Tracker.CurrentPair(); ok {
		return append(effects, effect.Delay{
			ID:     EffectMismatch,
			After:  r.timings.Mismatch,
			Action: MismatchTimedOut{SessionID: s.SessionID, Pair: mismatch},
		})
	}

	return effects
}

func (r *Reducer) matchShown(s *State, pair domain.Pair[domain.FlippedCard]) []effect.Effect {
	s.pair(pair)
	if s.PendingMatch != nil && *s.PendingMatch == pair {
		s.PendingMatch = nil
	}
	if !s.allPaired() {
		return nil
	}
	return []effect.Effect{effect.Delay{
		ID:     EffectComplete,
		After:  r.timings.Complete,
		Action: LevelCompleted{SessionID: s.SessionID, Level: s.Level},
	}}
}

func (r *Reducer) mismatchTimedOut(s *State, pair domain.Pair[domain.FlippedCard]) []effect.Effect {
	current, ok := s.Tracker.CurrentPair()
	if !ok || current != pair {
		r.logger.Debug("ignored mismatch timeout for a resolved pair")
		return nil
	}
	s.hide(pair.First.ID)
	s.hide(pair.Second.ID)
	s.Tracker.Clear()
	return nil
}

func (r *Reducer) levelCompleted(s *State, level domain.Level) []effect.Effect {
	if s.Summary != nil {
		return nil
	}

	_, hasNext := r.dealer.NextLevel(level, s.Difficulty)
	summary := &domain.LevelSummary{
		CompletedLevel: level,
		Difficulty:     s.Difficulty,
		Mode:           s.Mode,
		ElapsedSeconds: s.ElapsedSeconds,
		HasNextLevel:   hasNext,
	}
	if s.Mode == domain.ModeTimed {
		d := r.formatter.Format(time.Duration(s.ElapsedSeconds)*time.Second, durationfmt.Details)
		summary.Duration = &d
	}
	s.Summary = summary

	r.logger.Info("level completed",
		"level", level.Type.String(),
		"difficulty", s.Difficulty,
		"mode", s.Mode,
		"elapsed_seconds", s.ElapsedSeconds)

	return []effect.Effect{
		effect.CancelIDs(EffectTimer),
		effect.Emit{Type: events.TypeLevelCompleted, Payload: *summary},
	}
}

func (r *Reducer) resolveSummary(s *State, choice domain.SummaryChoice) []effect.Effect {
	if s.Summary == nil || s.Finished {
		r.logger.Debug("ignored summary choice without a summary", "choice", choice)
		return nil
	}

	switch choice {
	case domain.ChoiceNextLevel:
		next, ok := r.dealer.NextLevel(s.Level, s.Difficulty)
		if !ok {
			r.logger.Warn("no level after the completed one, finishing instead",
				"level", s.Level.Type.String(),
				"difficulty", s.Difficulty)
			return r.finish(s)
		}
		r.deal(s, next)
	case domain.ChoiceRetry:
		r.deal(s, s.Level)
	case domain.ChoiceFinish:
		return r.finish(s)
	default:
		r.logger.Debug("ignored unknown summary choice", "choice", choice)
		return nil
	}

	return []effect.Effect{effect.CancelIDs(EffectIDs()...)}
}

func (r *Reducer) finish(s *State) []effect.Effect {
	s.Finished = true
	return []effect.Effect{effect.CancelIDs(EffectIDs()...)}
}

// deal replaces the cards and resets everything tied to the previous deal.
func (r *Reducer) deal(s *State, level domain.Level) {
	faces := r.dealer.CardsForLevel(level, s.Style)
	cards := make([]domain.Card, 0, len(faces))
	for _, face := range faces {
		cards = append(cards, domain.NewCard(r.ids.NewID(), face))
	}

	s.SessionID = r.ids.NewID()
	s.Level = level
	s.Cards = cards
	s.Tracker = domain.NewPairMatch(domain.SameFace)
	s.ElapsedSeconds = 0
	s.GameStarted = false
	s.Summary = nil
	s.PendingMatch = nil
	s.Settling = nil
	s.Finished = false

	if len(cards) == 0 {
		r.logger.Warn("dealt an empty board",
			"level", level.Type.String(),
			"style", s.Style)
	}
}

func typeName(action Action) string {
	switch action.(type) {
	case CardTapped:
		return "card_tapped"
	case SummaryActionSelected:
		return "summary_action_selected"
	case SettledFlip:
		return "settled_flip"
	case MatchShown:
		return "match_shown"
	case MismatchTimedOut:
		return "mismatch_timed_out"
	case LevelCompleted:
		return "level_completed"
	case TimerTicked:
		return "timer_ticked"
	default:
		return "unknown"
	}
}
