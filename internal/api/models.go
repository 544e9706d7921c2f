package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/game"
)

// OptionsRequest carries an optional selection for each game option.
// Empty fields keep the current selection.
type OptionsRequest struct {
	Mode       string `json:"mode,omitempty"       validate:"omitempty,game_mode"`
	Style      string `json:"style,omitempty"      validate:"omitempty,game_style"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,game_difficulty"`
}

// apply overlays the non-empty fields of the request on base.
func (o OptionsRequest) apply(base domain.GameOptions) domain.GameOptions {
	if o.Mode != "" {
		base.Mode = domain.Mode(o.Mode)
	}
	if o.Style != "" {
		base.Style = domain.Style(o.Style)
	}
	if o.Difficulty != "" {
		base.Difficulty = domain.Difficulty(o.Difficulty)
	}
	return base
}

// SummaryRequest carries the player's choice on the level summary.
type SummaryRequest struct {
	Choice string `json:"choice" validate:"required,summary_choice"`
}

// CreateGameResponse is returned when a game is created.
type CreateGameResponse struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	// Token authorizes every later request on this game.
	Token string    `json:"token"`
	View  game.View `json:"view"`
}

// GameResponse wraps the current view of a game.
type GameResponse struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	View     game.View `json:"view"`
}

// LevelResponse describes one tier of the catalog.
type LevelResponse struct {
	Type       int                  `json:"type"`
	Name       string               `json:"name"`
	Message    string               `json:"message"`
	ColorTheme string               `json:"color_theme"`
	CardCounts map[domain.Style]int `json:"card_counts"`
	// Next holds the successor tier per difficulty; absent where the game ends.
	Next map[domain.Difficulty]int `json:"next"`
	// StartsAt lists the difficulties whose games begin at this tier.
	StartsAt []domain.Difficulty `json:"starts_at,omitempty"`
}

// LevelsResponse lists the catalog.
type LevelsResponse struct {
	Levels []LevelResponse `json:"levels"`
}
