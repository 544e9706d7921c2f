package board

import (
	"time"

	"github.com/phrazzld/memory-cards/internal/effect"
)

// Effect identifiers. Arming one of these while it is pending replaces it.
const (
	EffectSettle    effect.ID = "settle-then-flip"
	EffectShowMatch effect.ID = "show-match"
	EffectMismatch  effect.ID = "auto-unflip-mismatch"
	EffectComplete  effect.ID = "complete-level"
	EffectTimer     effect.ID = "game-timer"
)

// EffectIDs lists every effect a board may arm.
func EffectIDs() []effect.ID {
	return []effect.ID{EffectSettle, EffectShowMatch, EffectMismatch, EffectComplete, EffectTimer}
}

// Timings holds the delays used by the board.
type Timings struct {
	// Settle is how long a pick waits after an interrupted mismatch is hidden.
	Settle time.Duration
	// ShowMatch is how long a matched pair stays face up before it is paired.
	ShowMatch time.Duration
	// Mismatch is how long a mismatched pair stays face up.
	Mismatch time.Duration
	// Complete is the pause between the last pair and the summary.
	Complete time.Duration
	// Tick is the period of the timed-mode clock.
	Tick time.Duration
}

// DefaultTimings returns the standard board timings.
func DefaultTimings() Timings {
	return Timings{
		Settle:    300 * time.Millisecond,
		ShowMatch: 500 * time.Millisecond,
		Mismatch:  2 * time.Second,
		Complete:  400 * time.Millisecond,
		Tick:      time.Second,
	}
}
