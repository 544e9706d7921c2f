package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/memory-cards/internal/api/shared"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
)

// LevelCatalog is the part of the catalog the level listing needs
type LevelCatalog interface {
	catalog.Dealer
	CardCount(level domain.Level, style domain.Style) int
}

// LevelHandler serves the level catalog
type LevelHandler struct {
	catalog LevelCatalog
	logger  *slog.Logger
}

// NewLevelHandler creates a new LevelHandler
func NewLevelHandler(c LevelCatalog, logger *slog.Logger) *LevelHandler {
	if c == nil {
		panic("catalog cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &LevelHandler{
		catalog: c,
		logger:  logger.With(slog.String("component", "level_handler")),
	}
}

// ListLevels handles GET /api/levels. An optional difficulty query
// parameter restricts progression to that difficulty.
func (h *LevelHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	difficulties := domain.AllDifficulties()
	if q := r.URL.Query().Get("difficulty"); q != "" {
		d, err := domain.ParseDifficulty(q)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		difficulties = []domain.Difficulty{d}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LevelsResponse{Levels: h.describe(difficulties)})
}

func (h *LevelHandler) describe(difficulties []domain.Difficulty) []LevelResponse {
	levels := catalog.Levels()
	out := make([]LevelResponse, 0, len(levels))

	for _, level := range levels {
		lr := LevelResponse{
			Type:       int(level.Type),
			Name:       level.Type.String(),
			Message:    level.Message,
			ColorTheme: level.ColorTheme,
			CardCounts: make(map[domain.Style]int),
			Next:       make(map[domain.Difficulty]int),
		}
		for _, style := range domain.AllStyles() {
			lr.CardCounts[style] = h.catalog.CardCount(level, style)
		}
		for _, d := range difficulties {
			if next, ok := h.catalog.NextLevel(level, d); ok {
				lr.Next[d] = int(next.Type)
			}
			if h.catalog.InitialLevel(d).Type == level.Type {
				lr.StartsAt = append(lr.StartsAt, d)
			}
		}
		out = append(out, lr)
	}
	return out
}
