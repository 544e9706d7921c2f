package board

import (
	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/domain"
)

// Action is an input to the board reducer.
type Action interface {
	isBoardAction()
}

// CardTapped is sent when the player taps a card.
type CardTapped struct {
	ID domain.CardID
}

// SummaryActionSelected is sent when the player picks an option on the summary.
type SummaryActionSelected struct {
	Choice domain.SummaryChoice
}

// SettledFlip registers a pick delayed by an interrupted mismatch.
type SettledFlip struct {
	SessionID uuid.UUID
	ID        domain.CardID
}

// MatchShown locks a matched pair once it has been shown.
type MatchShown struct {
	SessionID uuid.UUID
	Pair      domain.Pair[domain.FlippedCard]
}

// MismatchTimedOut turns a mismatched pair face down.
type MismatchTimedOut struct {
	SessionID uuid.UUID
	Pair      domain.Pair[domain.FlippedCard]
}

// LevelCompleted shows the summary for a fully paired deal.
type LevelCompleted struct {
	SessionID uuid.UUID
	Level     domain.Level
}

// TimerTicked advances the timed-mode clock by one second.
type TimerTicked struct {
	SessionID uuid.UUID
}

func (CardTapped) isBoardAction()            {}
func (SummaryActionSelected) isBoardAction() {}
func (SettledFlip) isBoardAction()           {}
func (MatchShown) isBoardAction()            {}
func (MismatchTimedOut) isBoardAction()      {}
func (LevelCompleted) isBoardAction()        {}
func (TimerTicked) isBoardAction()           {}
