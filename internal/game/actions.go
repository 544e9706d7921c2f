package game

import (
	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
)

// Action is an input to the game flow reducer.
type Action interface {
	isGameAction()
}

// SelectMode changes the selected mode on the options screen.
type SelectMode struct {
	Mode domain.Mode
}

// SelectStyle changes the selected style on the options screen.
type SelectStyle struct {
	Style domain.Style
}

// SelectDifficulty changes the selected difficulty on the options screen.
type SelectDifficulty struct {
	Difficulty domain.Difficulty
}

// StartGameRequested starts the first level with the given options.
type StartGameRequested struct {
	Mode       domain.Mode
	Style      domain.Style
	Difficulty domain.Difficulty
}

// Board forwards an action to the active board session.
type Board struct {
	Action board.Action
}

// QuitRequested abandons the active board and returns to the options screen.
type QuitRequested struct{}

func (SelectMode) isGameAction()         {}
func (SelectStyle) isGameAction()        {}
func (SelectDifficulty) isGameAction()   {}
func (StartGameRequested) isGameAction() {}
func (Board) isGameAction()              {}
func (QuitRequested) isGameAction()      {}

// Finish reasons reported with the game_finished event.
const (
	ReasonFinished = "finished"
	ReasonQuit     = "quit"
)

// FinishedPayload describes a game that returned to the options screen.
type FinishedPayload struct {
	Level      domain.Level      `json:"level"`
	Mode       domain.Mode       `json:"mode"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Reason     string            `json:"reason"`
}
