package game

import (
	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
)

// View is a snapshot of a game for the presentation layer.
type View struct {
	Phase        Phase               `json:"phase"`
	Options      domain.GameOptions  `json:"options"`
	Modes        []domain.Mode       `json:"modes"`
	Styles       []domain.Style      `json:"styles"`
	Difficulties []domain.Difficulty `json:"difficulties"`
	Board        *board.View         `json:"board,omitempty"`
}

// View renders s.
func (r *Reducer) View(s *State) View {
	v := View{
		Phase:        s.Phase(),
		Options:      s.Options,
		Modes:        append([]domain.Mode(nil), s.Modes...),
		Styles:       append([]domain.Style(nil), s.Styles...),
		Difficulties: append([]domain.Difficulty(nil), s.Difficulties...),
	}
	if s.Board != nil {
		bv := r.board.View(s.Board)
		v.Board = &bv
	}
	return v
}
