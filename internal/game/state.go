package game

import (
	"github.com/looplab/fsm"

	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
)

// State is the state of one game.
type State struct {
	// Options is the current selection; it survives finished sessions.
	Options domain.GameOptions

	Modes        []domain.Mode
	Styles       []domain.Style
	Difficulties []domain.Difficulty

	// Board is nil before play and after finishing.
	Board *board.State

	machine *fsm.FSM
}

// Phase returns the current stage of the flow.
func (s *State) Phase() Phase {
	return Phase(s.machine.Current())
}
