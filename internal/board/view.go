package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/platform/durationfmt"
)

// CardView is the rendering of one card. Face is empty unless the card is face up.
type CardView struct {
	ID        domain.CardID `json:"id"`
	Face      domain.Face   `json:"face,omitempty"`
	IsFlipped bool          `json:"is_flipped"`
	IsPaired  bool          `json:"is_paired"`
}

// View is a snapshot of a board session for the presentation layer.
type View struct {
	SessionID      uuid.UUID            `json:"session_id"`
	Mode           domain.Mode          `json:"mode"`
	Difficulty     domain.Difficulty    `json:"difficulty"`
	Style          domain.Style         `json:"style"`
	Level          domain.Level         `json:"level"`
	Phase          Phase                `json:"phase"`
	Cards          []CardView           `json:"cards"`
	Selected       []domain.CardID      `json:"selected"`
	ShowTimer      bool                 `json:"show_timer"`
	Timer          string               `json:"timer"`
	ElapsedSeconds int                  `json:"elapsed_seconds"`
	Summary        *domain.LevelSummary `json:"summary,omitempty"`
}

// View renders s.
func (r *Reducer) View(s *State) View {
	cards := make([]CardView, 0, len(s.Cards))
	for _, c := range s.Cards {
		cv := CardView{ID: c.ID, IsFlipped: c.IsFlipped, IsPaired: c.IsPaired}
		if c.IsFlipped {
			cv.Face = c.Face
		}
		cards = append(cards, cv)
	}

	selected := make([]domain.CardID, 0, 2)
	if first, ok := s.Tracker.First(); ok {
		selected = append(selected, first.ID)
	}
	if pair, ok := s.Tracker.CurrentPair(); ok {
		selected = append(selected, pair.Second.ID)
	}

	var summary *domain.LevelSummary
	if s.Summary != nil {
		copied := *s.Summary
		summary = &copied
	}

	return View{
		SessionID:      s.SessionID,
		Mode:           s.Mode,
		Difficulty:     s.Difficulty,
		Style:          s.Style,
		Level:          s.Level,
		Phase:          s.Phase(),
		Cards:          cards,
		Selected:       selected,
		ShowTimer:      s.Mode == domain.ModeTimed,
		Timer:          r.formatter.Format(time.Duration(s.ElapsedSeconds)*time.Second, durationfmt.Timer),
		ElapsedSeconds: s.ElapsedSeconds,
		Summary:        summary,
	}
}
