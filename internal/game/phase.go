package game

import (
	"context"

	"github.com/looplab/fsm"
)

// Phase is the stage of the game flow.
type Phase string

// Possible phases.
const (
	PhaseSelectingOptions Phase = "selecting_options"
	PhaseInLevel          Phase = "in_level"
	PhaseLevelSummary     Phase = "level_summary"
)

// Phase transition events.
const (
	eventStart    = "start"
	eventComplete = "complete"
	eventContinue = "continue"
	eventFinish   = "finish"
)

func newMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseSelectingOptions),
		fsm.Events{
			{Name: eventStart, Src: []string{string(PhaseSelectingOptions)}, Dst: string(PhaseInLevel)},
			{Name: eventComplete, Src: []string{string(PhaseInLevel)}, Dst: string(PhaseLevelSummary)},
			{Name: eventContinue, Src: []string{string(PhaseLevelSummary)}, Dst: string(PhaseInLevel)},
			{
				Name: eventFinish,
				Src:  []string{string(PhaseInLevel), string(PhaseLevelSummary)},
				Dst:  string(PhaseSelectingOptions),
			},
		},
		fsm.Callbacks{},
	)
}

// transition fires event when the current phase allows it.
func (s *State) transition(event string) error {
	if !s.machine.Can(event) {
		return nil
	}
	return s.machine.Event(context.Background(), event)
}
