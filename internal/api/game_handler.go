package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/memory-cards/internal/api/middleware"
	"github.com/phrazzld/memory-cards/internal/api/shared"
	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/game"
	"github.com/phrazzld/memory-cards/internal/platform/logger"
	"github.com/phrazzld/memory-cards/internal/service/auth"
	"github.com/phrazzld/memory-cards/internal/session"
)

// dispatchTimeout bounds how long a request waits for a game to answer
const dispatchTimeout = 5 * time.Second

// GameRegistry hosts the running games
type GameRegistry interface {
	Create(options domain.GameOptions) (*session.Runner, error)
	Get(id uuid.UUID) (*session.Runner, error)
	Remove(id uuid.UUID) error
}

// GameHandler handles game-related HTTP requests
type GameHandler struct {
	registry GameRegistry
	tokens   auth.TokenService
	logger   *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(registry GameRegistry, tokens auth.TokenService, logger *slog.Logger) *GameHandler {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GameHandler{
		registry: registry,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "game_handler")),
	}
}

// CreateGame handles POST /api/games. The body is optional; any options it
// carries replace the defaults shown on the options screen.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req OptionsRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}

	runner, err := h.registry.Create(req.apply(domain.DefaultGameOptions()))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	token, err := h.tokens.GenerateToken(r.Context(), runner.ID())
	if err != nil {
		log.Error("failed to issue game token", "error", err, "game_id", runner.ID())
		if rmErr := h.registry.Remove(runner.ID()); rmErr != nil {
			log.Warn("failed to discard game without token", "error", rmErr, "game_id", runner.ID())
		}
		HandleAPIError(w, r, err, "Failed to create game")
		return
	}

	view, err := h.view(r, runner)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("game created over API", "game_id", runner.ID(), "nickname", runner.Nickname())
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateGameResponse{
		ID:       runner.ID(),
		Nickname: runner.Nickname(),
		Token:    token,
		View:     view,
	})
}

// GetGame handles GET /api/games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	runner, ok := h.runner(w, r)
	if !ok {
		return
	}
	view, err := h.view(r, runner)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respond(w, r, runner, view)
}

// UpdateOptions handles PUT /api/games/{id}/options. Each non-empty field is
// sent as its own selection; outside the options screen they are ignored.
func (h *GameHandler) UpdateOptions(w http.ResponseWriter, r *http.Request) {
	runner, ok := h.runner(w, r)
	if !ok {
		return
	}

	var req OptionsRequest
	if !h.decode(w, r, &req) {
		return
	}

	var actions []game.Action
	if req.Mode != "" {
		actions = append(actions, game.SelectMode{Mode: domain.Mode(req.Mode)})
	}
	if req.Style != "" {
		actions = append(actions, game.SelectStyle{Style: domain.Style(req.Style)})
	}
	if req.Difficulty != "" {
		actions = append(actions, game.SelectDifficulty{Difficulty: domain.Difficulty(req.Difficulty)})
	}
	if len(actions) == 0 {
		h.GetGame(w, r)
		return
	}

	var view game.View
	for _, action := range actions {
		var err error
		if view, err = h.dispatch(r, runner, action); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}
	h.respond(w, r, runner, view)
}

// Play handles POST /api/games/{id}/play. Options in the body override the
// current selection for this start.
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	runner, ok := h.runner(w, r)
	if !ok {
		return
	}

	var req OptionsRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}

	current, err := h.view(r, runner)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	options := req.apply(current.Options)

	view, err := h.dispatch(r, runner, game.StartGameRequested{
		Mode:       options.Mode,
		Style:      options.Style,
		Difficulty: options.Difficulty,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respond(w, r, runner, view)
}

// TapCard handles POST /api/games/{id}/cards/{cardID}/tap
func (h *GameHandler) TapCard(w http.ResponseWriter, r *http.Request) {
	runner, ok := h.runner(w, r)
	if !ok {
		return
	}

	cardID, err := uuid.Parse(chi.URLParam(r, "cardID"))
	if err != nil {
		HandleAPIError(w, r, ErrInvalidID, "Invalid card id")
		return
	}

	view, err := h.dispatch(r, runner, game.Board{Action: board.CardTapped{ID: cardID}})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respond(w, r, runner, view)
}

// SelectSummary handles POST /api/games/{id}/summary
func (h *GameHandler) SelectSummary(w http.ResponseWriter, r *http.Request) {
	runner, ok := h.runner(w, r)
	if !ok {
		return
	}

	var req SummaryRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.dispatch(r, runner, game.Board{
		Action: board.SummaryActionSelected{Choice: domain.SummaryChoice(req.Choice)},
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respond(w, r, runner, view)
}

// Quit handles POST /api/games/{id}/quit
func (h *GameHandler) Quit(w http.ResponseWriter, r *http.Request) {
	runner, ok := h.runner(w, r)
	if !ok {
		return
	}

	view, err := h.dispatch(r, runner, game.QuitRequested{})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respond(w, r, runner, view)
}

// DeleteGame handles DELETE /api/games/{id}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	if err := h.registry.Remove(id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// gameID returns the authenticated game id. It must name the game in the path.
func (h *GameHandler) gameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.GetGameID(r)
	if !ok {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("game id not found in request context")
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return uuid.Nil, false
	}
	if param := chi.URLParam(r, middleware.GameIDParam); param != "" && param != id.String() {
		HandleAPIError(w, r, ErrWrongGame, "")
		return uuid.Nil, false
	}
	return id, true
}

func (h *GameHandler) runner(w http.ResponseWriter, r *http.Request) (*session.Runner, bool) {
	id, ok := h.gameID(w, r)
	if !ok {
		return nil, false
	}
	runner, err := h.registry.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return nil, false
	}
	return runner, true
}

func contextWithDispatchTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), dispatchTimeout)
}

func (h *GameHandler) dispatch(r *http.Request, runner *session.Runner, action game.Action) (game.View, error) {
	ctx, cancel := contextWithDispatchTimeout(r)
	defer cancel()
	return runner.Dispatch(ctx, action)
}

func (h *GameHandler) view(r *http.Request, runner *session.Runner) (game.View, error) {
	ctx, cancel := contextWithDispatchTimeout(r)
	defer cancel()
	return runner.View(ctx)
}

func (h *GameHandler) respond(w http.ResponseWriter, r *http.Request, runner *session.Runner, view game.View) {
	shared.RespondWithJSON(w, r, http.StatusOK, GameResponse{
		ID:       runner.ID(),
		Nickname: runner.Nickname(),
		View:     view,
	})
}

// decode reads and validates a required JSON body.
func (h *GameHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		HandleAPIError(w, r, errors.Join(ErrInvalidRequest, err), "")
		return false
	}
	return h.validate(w, r, v)
}

// decodeOptional is decode for endpoints whose body may be empty.
func (h *GameHandler) decodeOptional(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		HandleAPIError(w, r, errors.Join(ErrInvalidRequest, err), "")
		return false
	}
	return h.validate(w, r, v)
}

func (h *GameHandler) validate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
