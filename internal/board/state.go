package board

import (
	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/domain"
)

// Phase is the derived stage of a board session.
type Phase string

// Possible phases.
const (
	PhaseIdle               Phase = "idle"
	PhaseAwaitingSecondPick Phase = "awaiting-second-pick"
	PhaseResolving          Phase = "resolving"
	PhaseSummary            Phase = "summary"
)

// State is the complete state of one board session.
// Exactly one of "no summary, board interactive" and "summary present,
// board frozen" holds at any time.
type State struct {
	// SessionID changes on every deal.
	SessionID uuid.UUID

	Mode       domain.Mode
	Difficulty domain.Difficulty
	Style      domain.Style
	Level      domain.Level

	// Cards keeps the deal order.
	Cards   []domain.Card
	Tracker domain.PairMatch[domain.FlippedCard]

	ElapsedSeconds int
	GameStarted    bool
	Summary        *domain.LevelSummary

	// PendingMatch is a matched pair waiting to be locked.
	PendingMatch *domain.Pair[domain.FlippedCard]
	// Settling is a pick waiting for the settle delay.
	Settling *domain.CardID

	// Finished is set when the player leaves from the summary.
	Finished bool
}

// Phase derives the current stage of the session.
func (s *State) Phase() Phase {
	switch {
	case s.Summary != nil:
		return PhaseSummary
	case s.PendingMatch != nil, s.Settling != nil, s.Tracker.Len() == 2, s.allPaired():
		return PhaseResolving
	case s.Tracker.Len() == 1:
		return PhaseAwaitingSecondPick
	default:
		return PhaseIdle
	}
}

// UnpairedCount returns how many cards are not yet paired.
func (s *State) UnpairedCount() int {
	n := 0
	for _, c := range s.Cards {
		if !c.IsPaired {
			n++
		}
	}
	return n
}

// Card looks a card up by id.
func (s *State) Card(id domain.CardID) (domain.Card, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Cards[i], true
	}
	return domain.Card{}, false
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	out := *s
	out.Cards = append([]domain.Card(nil), s.Cards...)
	out.Tracker = s.Tracker.Clone()
	if s.Summary != nil {
		summary := *s.Summary
		if s.Summary.Duration != nil {
			d := *s.Summary.Duration
			summary.Duration = &d
		}
		out.Summary = &summary
	}
	if s.PendingMatch != nil {
		p := *s.PendingMatch
		out.PendingMatch = &p
	}
	if s.Settling != nil {
		id := *s.Settling
		out.Settling = &id
	}
	return &out
}

func (s *State) indexOf(id domain.CardID) int {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *State) allPaired() bool {
	if len(s.Cards) == 0 {
		return false
	}
	return s.UnpairedCount() == 0
}

func (s *State) hide(id domain.CardID) {
	if i := s.indexOf(id); i >= 0 {
		s.Cards[i].Hide()
	}
}

func (s *State) pair(p domain.Pair[domain.FlippedCard]) {
	for _, id := range []domain.CardID{p.First.ID, p.Second.ID} {
		if i := s.indexOf(id); i >= 0 {
			s.Cards[i].Pair()
		}
	}
}
