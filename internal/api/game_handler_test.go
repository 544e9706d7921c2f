package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/memory-cards/internal/api/shared"
	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/game"
	"github.com/phrazzld/memory-cards/internal/mocks"
)

func TestCreateGame(t *testing.T) {
	t.Parallel()

	t.Run("defaults without body", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, 10)

		resp := s.create(t, nil)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.NotEmpty(t, resp.Nickname)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, game.PhaseSelectingOptions, resp.View.Phase)
		assert.Equal(t, domain.DefaultGameOptions(), resp.View.Options)
		assert.Nil(t, resp.View.Board)
		assert.Equal(t, 1, s.registry.Len())
	})

	t.Run("options from body", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, 10)

		resp := s.create(t, OptionsRequest{Mode: "timed", Difficulty: "hard"})
		assert.Equal(t, domain.ModeTimed, resp.View.Options.Mode)
		assert.Equal(t, domain.StyleNumbers, resp.View.Options.Style)
		assert.Equal(t, domain.DifficultyHard, resp.View.Options.Difficulty)
	})

	t.Run("rejects unknown option", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, 10)

		w := s.do(t, http.MethodPost, "/api/games", "", OptionsRequest{Mode: "speedrun"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid mode")
		assert.Equal(t, 0, s.registry.Len())
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, 10)

		w := s.do(t, http.MethodPost, "/api/games", "", `{"mode":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request format")
	})

	t.Run("registry full", func(t *testing.T) {
		t.Parallel()
		s := newTestServer(t, 1)

		s.create(t, nil)
		w := s.do(t, http.MethodPost, "/api/games", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCreateGameDiscardsGameWhenTokenFails(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	tokens := &mocks.MockTokenService{Err: assert.AnError}
	handler := NewGameHandler(s.registry, tokens, discardLog())

	w := s.do(t, http.MethodPost, "/api/games", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, s.registry.Len())

	rec := serve(handler.CreateGame, http.MethodPost, "/api/games")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create game")
	assert.Equal(t, 1, s.registry.Len())
	assert.Len(t, tokens.Generated(), 1)
}

func TestGameAuthorization(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	first := s.create(t, nil)
	second := s.create(t, nil)

	t.Run("own token", func(t *testing.T) {
		resp := decodeGame(t, s.do(t, http.MethodGet, "/api/games/"+first.ID.String(), first.Token, nil))
		assert.Equal(t, first.ID, resp.ID)
		assert.Equal(t, first.Nickname, resp.Nickname)
	})

	t.Run("missing token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/games/"+first.ID.String(), "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("forged token", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/games/"+first.ID.String(), "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token of another game", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/games/"+first.ID.String(), second.Token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown game", func(t *testing.T) {
		id := uuid.New()
		token, err := s.tokens.GenerateToken(context.Background(), id)
		require.NoError(t, err)
		w := s.do(t, http.MethodGet, "/api/games/"+id.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Game not found")
	})
}

func TestUpdateOptions(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	g := s.create(t, nil)
	path := "/api/games/" + g.ID.String() + "/options"

	resp := decodeGame(t, s.do(t, http.MethodPut, path, g.Token, OptionsRequest{Style: "letters", Difficulty: "medium"}))
	assert.Equal(t, domain.GameOptions{
		Mode:       domain.ModePractice,
		Style:      domain.StyleLetters,
		Difficulty: domain.DifficultyMedium,
	}, resp.View.Options)

	w := s.do(t, http.MethodPut, path, g.Token, OptionsRequest{Difficulty: "insane"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid difficulty")

	w = s.do(t, http.MethodPut, path, g.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp = decodeGame(t, s.do(t, http.MethodPut, path, g.Token, OptionsRequest{}))
	assert.Equal(t, domain.StyleLetters, resp.View.Options.Style)
}

func TestPlayTapAndQuit(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	g := s.create(t, nil)
	base := "/api/games/" + g.ID.String()

	resp := decodeGame(t, s.do(t, http.MethodPost, base+"/play", g.Token, OptionsRequest{Style: "letters"}))
	require.Equal(t, game.PhaseInLevel, resp.View.Phase)
	require.NotNil(t, resp.View.Board)
	assert.Equal(t, domain.StyleLetters, resp.View.Options.Style)
	assert.Equal(t, domain.LevelOne, resp.View.Board.Level.Type)
	cards := resp.View.Board.Cards
	require.Len(t, cards, 4)
	for _, c := range cards {
		assert.Empty(t, c.Face, "hidden cards must not reveal their face")
	}

	tapPath := func(id uuid.UUID) string { return base + "/cards/" + id.String() + "/tap" }

	resp = decodeGame(t, s.do(t, http.MethodPost, tapPath(cards[0].ID), g.Token, nil))
	assert.Equal(t, board.PhaseAwaitingSecondPick, resp.View.Board.Phase)
	assert.Equal(t, domain.Face("A"), resp.View.Board.Cards[0].Face)

	resp = decodeGame(t, s.do(t, http.MethodPost, tapPath(cards[1].ID), g.Token, nil))
	assert.Equal(t, board.PhaseResolving, resp.View.Board.Phase)
	assert.True(t, resp.View.Board.Cards[1].IsFlipped)

	// unknown cards are ignored, not errors
	resp = decodeGame(t, s.do(t, http.MethodPost, tapPath(uuid.New()), g.Token, nil))
	assert.Equal(t, board.PhaseResolving, resp.View.Board.Phase)

	w := s.do(t, http.MethodPost, base+"/cards/nope/tap", g.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a second start while playing is ignored
	resp = decodeGame(t, s.do(t, http.MethodPost, base+"/play", g.Token, nil))
	assert.Equal(t, game.PhaseInLevel, resp.View.Phase)

	resp = decodeGame(t, s.do(t, http.MethodPost, base+"/quit", g.Token, nil))
	assert.Equal(t, game.PhaseSelectingOptions, resp.View.Phase)
	assert.Nil(t, resp.View.Board)
}

func TestSelectSummary(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	g := s.create(t, nil)
	base := "/api/games/" + g.ID.String()

	w := s.do(t, http.MethodPost, base+"/summary", g.Token, SummaryRequest{Choice: "again"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid choice")

	w = s.do(t, http.MethodPost, base+"/summary", g.Token, SummaryRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// no summary on screen: the choice is ignored
	resp := decodeGame(t, s.do(t, http.MethodPost, base+"/summary", g.Token, SummaryRequest{Choice: "retry"}))
	assert.Equal(t, game.PhaseSelectingOptions, resp.View.Phase)
}

func TestDeleteGame(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	g := s.create(t, nil)
	path := "/api/games/" + g.ID.String()

	w := s.do(t, http.MethodDelete, path, g.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, s.registry.Len())

	w = s.do(t, http.MethodGet, path, g.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, path, g.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorResponsesCarryTraceID(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	w := s.do(t, http.MethodGet, "/api/games/"+uuid.NewString(), "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.TraceID, 32)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHandlerRejectsContextForAnotherGame(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, 10)
	g := s.create(t, nil)
	handler := NewGameHandler(s.registry, s.tokens, discardLog())

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", uuid.NewString())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(shared.WithGameID(req.Context(), g.ID), chi.RouteCtxKey, rctx)

	w := httptest.NewRecorder()
	handler.GetGame(w, req.WithContext(ctx))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	handler.GetGame(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
